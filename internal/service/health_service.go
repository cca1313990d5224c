package service

import (
	"fmt"

	"github.com/akhatri/coldcall/internal/api"
	"github.com/akhatri/coldcall/internal/config"
)

type healthService struct {
	cfg         *config.Config
	callService CallService
}

func NewHealthService(cfg *config.Config, callService CallService) HealthService {
	return &healthService{
		cfg:         cfg,
		callService: callService,
	}
}

// GetHealth reports whether the service can place calls: credential presence
// and circuit breaker state. It never talks to the provider.
func (s *healthService) GetHealth() *HealthStatus {
	status := &HealthStatus{
		Status: api.Healthy,
	}

	if s.cfg.Twilio.HasCredentials() {
		status.TwilioStatus = api.TwilioConfigured
	} else {
		status.TwilioStatus = api.TwilioUnconfigured
		status.Status = api.Degraded
	}

	state, requests, failures := s.callService.GetCircuitBreakerStatus()
	status.CircuitBreakerState = state
	if requests > 0 {
		failureRate := float64(failures) / float64(requests) * 100
		status.CircuitBreakerStatus = fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, failureRate)
	} else {
		status.CircuitBreakerStatus = "No requests yet"
	}

	if state == api.Open {
		status.Status = api.Degraded
	}

	return status
}
