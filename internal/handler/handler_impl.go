// Package handler provides HTTP request handlers for the application.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/akhatri/coldcall/internal/api"
	"github.com/akhatri/coldcall/internal/middleware"
	"github.com/akhatri/coldcall/internal/service"
)

const (
	errorMessagePhoneRequired = "Phone number is required."
	errorMessageServerConfig  = "Server configuration error. Check Twilio credentials."
	errorMessageUnexpected    = "Unexpected error. Please try again."
)

const messageUsePost = "Use POST to make calls."

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

// NewHandler creates a new handler instance that implements api.ServerInterface.
func NewHandler(service *service.Service, logger *zap.Logger) api.ServerInterface {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// MakeCall implements api.ServerInterface. Every failure collapses to the
// uniform {success, message} envelope; nothing propagates unhandled.
func (h *Handler) MakeCall(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req api.CallRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.sendFailure(w, r, http.StatusBadRequest, errorMessagePhoneRequired)
		return
	}

	if req.PhoneNumber == "" {
		h.sendFailure(w, r, http.StatusBadRequest, errorMessagePhoneRequired)
		return
	}

	resp, err := h.service.Call.MakeCall(r.Context(), req.PhoneNumber)
	if err != nil {
		var validationErr *service.ValidationError
		var rejectedErr *service.ProviderRejectedError

		switch {
		case errors.Is(err, service.ErrCredentialsMissing):
			h.sendFailure(w, r, http.StatusInternalServerError, errorMessageServerConfig)
		case errors.As(err, &validationErr):
			h.sendFailure(w, r, http.StatusBadRequest, validationErr.Message)
		case errors.As(err, &rejectedErr):
			// Provider-side rejections are reported as client errors,
			// matching the behavior the demo has always had.
			h.sendFailure(w, r, http.StatusBadRequest, rejectedErr.UserMessage)
		default:
			h.logger.Error("Call placement failed unexpectedly",
				zap.String("request_id", requestID),
				zap.Error(err))
			h.sendFailure(w, r, http.StatusInternalServerError, errorMessageUnexpected)
		}
		return
	}

	render.JSON(w, r, resp)
}

// MakeCallNotAllowed implements api.ServerInterface.
func (h *Handler) MakeCallNotAllowed(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusMethodNotAllowed)
	render.JSON(w, r, api.MethodNotAllowedResponse{
		Message: messageUsePost,
	})
}

// HealthCheck implements api.ServerInterface.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	response := api.HealthResponse{
		Status:    health.Status,
		Timestamp: time.Now(),
	}

	if health.TwilioStatus != "" {
		status := health.TwilioStatus
		response.TwilioStatus = &status
	}

	if health.CircuitBreakerStatus != "" {
		response.CircuitBreakerStatus = &health.CircuitBreakerStatus
	}

	if health.CircuitBreakerState != "" {
		state := health.CircuitBreakerState
		response.CircuitBreakerState = &state
	}

	render.JSON(w, r, response)
}

func (h *Handler) sendFailure(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, api.CallResponse{
		Success: false,
		Message: message,
	})
}
