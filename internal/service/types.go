package service

import "github.com/akhatri/coldcall/internal/api"

type HealthStatus struct {
	Status               api.HealthResponseStatus `json:"status"`
	TwilioStatus         api.TwilioStatus         `json:"twilio_status"`
	CircuitBreakerStatus string                   `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  api.CircuitBreakerState  `json:"circuit_breaker_state,omitempty"`
}
