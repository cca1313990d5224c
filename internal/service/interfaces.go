package service

import (
	"context"

	"github.com/akhatri/coldcall/internal/api"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

type CallService interface {
	MakeCall(ctx context.Context, phoneNumber string) (*api.CallResponse, error)
	GetCircuitBreakerStatus() (state api.CircuitBreakerState, requests uint32, failures uint32)
}

type HealthService interface {
	GetHealth() *HealthStatus
}
