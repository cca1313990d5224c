package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/akhatri/coldcall/internal/api"
	"github.com/akhatri/coldcall/internal/handler"
	"github.com/akhatri/coldcall/internal/middleware"
	"github.com/akhatri/coldcall/internal/service"
	"github.com/akhatri/coldcall/internal/service/mocks"
)

func strPtr(s string) *string {
	return &s
}

func TestHandler_MakeCall(t *testing.T) {
	tests := []struct {
		name           string
		body           []byte
		setupMocks     func(*mocks.MockCallService)
		expectedStatus int
		expectedBody   func(*testing.T, []byte)
	}{
		{
			name: "success",
			body: []byte(`{"phoneNumber": "+15551234567"}`),
			setupMocks: func(m *mocks.MockCallService) {
				m.EXPECT().
					MakeCall(gomock.Any(), "+15551234567").
					Return(&api.CallResponse{
						Success: true,
						Message: "Call started successfully: +15551234567",
						CallSid: strPtr("CA123"),
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: func(t *testing.T, body []byte) {
				var resp api.CallResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.True(t, resp.Success)
				assert.Contains(t, resp.Message, "+15551234567")
				require.NotNil(t, resp.CallSid)
				assert.Equal(t, "CA123", *resp.CallSid)
			},
		},
		{
			name:           "empty body",
			body:           nil,
			setupMocks:     func(m *mocks.MockCallService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody: func(t *testing.T, body []byte) {
				var resp api.CallResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.False(t, resp.Success)
				assert.Equal(t, "Phone number is required.", resp.Message)
				assert.Nil(t, resp.CallSid)
			},
		},
		{
			name:           "phone number missing",
			body:           []byte(`{}`),
			setupMocks:     func(m *mocks.MockCallService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody: func(t *testing.T, body []byte) {
				var resp api.CallResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.False(t, resp.Success)
				assert.Equal(t, "Phone number is required.", resp.Message)
			},
		},
		{
			name:           "phone number wrong type",
			body:           []byte(`{"phoneNumber": 15551234567}`),
			setupMocks:     func(m *mocks.MockCallService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody: func(t *testing.T, body []byte) {
				var resp api.CallResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.False(t, resp.Success)
				assert.Equal(t, "Phone number is required.", resp.Message)
			},
		},
		{
			name: "validation error",
			body: []byte(`{"phoneNumber": "123"}`),
			setupMocks: func(m *mocks.MockCallService) {
				m.EXPECT().
					MakeCall(gomock.Any(), "123").
					Return(nil, &service.ValidationError{Message: "Enter a valid phone number (at least 10 digits)."})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody: func(t *testing.T, body []byte) {
				var resp api.CallResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.False(t, resp.Success)
				assert.Equal(t, "Enter a valid phone number (at least 10 digits).", resp.Message)
			},
		},
		{
			name: "credentials missing",
			body: []byte(`{"phoneNumber": "+15551234567"}`),
			setupMocks: func(m *mocks.MockCallService) {
				m.EXPECT().
					MakeCall(gomock.Any(), "+15551234567").
					Return(nil, service.ErrCredentialsMissing)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody: func(t *testing.T, body []byte) {
				var resp api.CallResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.False(t, resp.Success)
				assert.Equal(t, "Server configuration error. Check Twilio credentials.", resp.Message)
			},
		},
		{
			name: "provider rejected",
			body: []byte(`{"phoneNumber": "+15551234567"}`),
			setupMocks: func(m *mocks.MockCallService) {
				m.EXPECT().
					MakeCall(gomock.Any(), "+15551234567").
					Return(nil, &service.ProviderRejectedError{
						Code:        21211,
						UserMessage: "Phone number format is invalid.",
					})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody: func(t *testing.T, body []byte) {
				var resp api.CallResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.False(t, resp.Success)
				assert.Equal(t, "Phone number format is invalid.", resp.Message)
			},
		},
		{
			name: "unexpected error",
			body: []byte(`{"phoneNumber": "+15551234567"}`),
			setupMocks: func(m *mocks.MockCallService) {
				m.EXPECT().
					MakeCall(gomock.Any(), "+15551234567").
					Return(nil, errors.New("connection reset by peer"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody: func(t *testing.T, body []byte) {
				var resp api.CallResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.False(t, resp.Success)
				assert.Equal(t, "Unexpected error. Please try again.", resp.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCall := mocks.NewMockCallService(ctrl)
			tt.setupMocks(mockCall)

			svc := &service.Service{
				Call: mockCall,
			}

			h := handler.NewHandler(svc, zap.NewNop())

			var req *http.Request
			if tt.body != nil {
				req = httptest.NewRequest(http.MethodPost, "/makeCall", bytes.NewReader(tt.body))
			} else {
				req = httptest.NewRequest(http.MethodPost, "/makeCall", nil)
			}
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "test-request-id"))
			w := httptest.NewRecorder()

			h.MakeCall(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.expectedBody(t, w.Body.Bytes())
		})
	}
}

func TestHandler_MakeCallNotAllowed(t *testing.T) {
	h := handler.NewHandler(&service.Service{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/makeCall", nil)
	w := httptest.NewRecorder()

	h.MakeCallNotAllowed(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	var resp api.MethodNotAllowedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Use POST to make calls.", resp.Message)
}

func TestHandler_HealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHealth := mocks.NewMockHealthService(ctrl)
	mockHealth.EXPECT().GetHealth().Return(&service.HealthStatus{
		Status:               api.Healthy,
		TwilioStatus:         api.TwilioConfigured,
		CircuitBreakerStatus: "No requests yet",
		CircuitBreakerState:  api.Closed,
	})

	svc := &service.Service{
		Health: mockHealth,
	}

	h := handler.NewHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	h.HealthCheck(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp api.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, api.Healthy, resp.Status)
	require.NotNil(t, resp.TwilioStatus)
	assert.Equal(t, api.TwilioConfigured, *resp.TwilioStatus)
	require.NotNil(t, resp.CircuitBreakerState)
	assert.Equal(t, api.Closed, *resp.CircuitBreakerState)
}
