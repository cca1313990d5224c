package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/akhatri/coldcall/internal/api"
	"github.com/akhatri/coldcall/internal/config"
	"github.com/akhatri/coldcall/internal/voice"
)

// minNumberLength is a length check only, not full phone-number validation.
const minNumberLength = 10

const errorMessageNumberTooShort = "Enter a valid phone number (at least 10 digits)."

type callService struct {
	cfg            *config.Config
	dialer         voice.Dialer
	logger         *zap.Logger
	circuitBreaker *CircuitBreaker
}

func NewCallService(
	cfg *config.Config,
	dialer voice.Dialer,
	logger *zap.Logger,
) CallService {
	cb := NewCircuitBreaker(&cfg.Twilio.CircuitBreaker, logger)

	return &callService{
		cfg:            cfg,
		dialer:         dialer,
		logger:         logger,
		circuitBreaker: cb,
	}
}

// MakeCall validates the destination number, builds the static spoken script
// and places a single call through the dialer. Exactly one attempt is made;
// a second submission is a brand-new call.
func (s *callService) MakeCall(ctx context.Context, phoneNumber string) (*api.CallResponse, error) {
	if !s.cfg.Twilio.HasCredentials() {
		s.logger.Error("Twilio credentials missing")
		return nil, ErrCredentialsMissing
	}

	number := normalizeNumber(phoneNumber)
	if len(number) < minNumberLength {
		return nil, &ValidationError{Message: errorMessageNumberTooShort}
	}

	script, err := voice.BuildScript()
	if err != nil {
		return nil, fmt.Errorf("failed to build call script: %w", err)
	}

	var result *voice.CallResult
	err = s.circuitBreaker.Execute(ctx, func() error {
		placed, placeErr := s.dialer.PlaceCall(ctx, voice.CallParams{
			TwiML:       script,
			To:          number,
			From:        s.cfg.Twilio.PhoneNumber,
			RingTimeout: s.cfg.Call.RingTimeout,
			Record:      s.cfg.Call.Record,
		})
		if placeErr != nil {
			return placeErr
		}
		result = placed
		return nil
	})

	if err != nil {
		var providerErr *voice.ProviderError
		if errors.As(err, &providerErr) {
			s.logger.Error("Twilio rejected call",
				zap.Int("code", providerErr.Code),
				zap.String("providerMessage", providerErr.Message),
				zap.String("to", number))
			return nil, &ProviderRejectedError{
				Code:        providerErr.Code,
				UserMessage: userMessageForRejection(providerErr),
			}
		}

		s.logger.Error("Failed to place call",
			zap.String("to", number),
			zap.Error(err),
			zap.String("circuitBreakerState", string(s.circuitBreaker.GetState())))
		return nil, err
	}

	s.logger.Info("Call placed successfully",
		zap.String("callSid", result.Sid),
		zap.String("to", number))

	return &api.CallResponse{
		Success: true,
		Message: fmt.Sprintf("Call started successfully: %s", number),
		CallSid: &result.Sid,
	}, nil
}

func (s *callService) GetCircuitBreakerStatus() (state api.CircuitBreakerState, requests uint32, failures uint32) {
	state = s.circuitBreaker.GetState()
	requests, failures = s.circuitBreaker.GetCounts()
	return
}

// normalizeNumber strips all whitespace from the number. Idempotent: a
// normalized number passes through unchanged.
func normalizeNumber(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
}
