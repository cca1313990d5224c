// Package api defines the HTTP contract for the coldcall service.
package api

import "time"

// CallRequest is the body of POST /makeCall.
type CallRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

// CallResponse is the uniform result envelope for call placement. CallSid is
// only present on success.
type CallResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	CallSid *string `json:"callSid,omitempty"`
}

// MethodNotAllowedResponse is returned for any method other than POST on
// /makeCall.
type MethodNotAllowedResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status               HealthResponseStatus `json:"status"`
	Timestamp            time.Time            `json:"timestamp"`
	TwilioStatus         *TwilioStatus        `json:"twilio_status,omitempty"`
	CircuitBreakerStatus *string              `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  *CircuitBreakerState `json:"circuit_breaker_state,omitempty"`
}

type HealthResponseStatus string

const (
	Healthy  HealthResponseStatus = "healthy"
	Degraded HealthResponseStatus = "degraded"
)

type TwilioStatus string

const (
	TwilioConfigured   TwilioStatus = "configured"
	TwilioUnconfigured TwilioStatus = "unconfigured"
)

type CircuitBreakerState string

const (
	Closed   CircuitBreakerState = "closed"
	HalfOpen CircuitBreakerState = "half-open"
	Open     CircuitBreakerState = "open"
)
