package service

import (
	"go.uber.org/zap"

	"github.com/akhatri/coldcall/internal/config"
	"github.com/akhatri/coldcall/internal/voice"
)

type Service struct {
	Call   CallService
	Health HealthService
}

func NewService(
	cfg *config.Config,
	dialer voice.Dialer,
	logger *zap.Logger,
) *Service {
	callService := NewCallService(cfg, dialer, logger)
	healthService := NewHealthService(cfg, callService)

	return &Service{
		Call:   callService,
		Health: healthService,
	}
}
