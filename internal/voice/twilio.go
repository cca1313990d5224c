package voice

import (
	"context"
	"errors"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

type twilioDialer struct {
	client *twilio.RestClient
	logger *zap.Logger
}

// NewTwilioDialer returns a Dialer backed by the Twilio Programmable Voice
// REST API.
func NewTwilioDialer(accountSID, authToken string, logger *zap.Logger) Dialer {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &twilioDialer{
		client: client,
		logger: logger,
	}
}

// PlaceCall creates the call via Twilio. The REST call returns as soon as the
// call is queued; the provider owns the call lifecycle after that, so ctx is
// not threaded into the SDK (it exposes no context-aware variant) and no
// cancellation is attempted once the request is on the wire.
func (d *twilioDialer) PlaceCall(_ context.Context, p CallParams) (*CallResult, error) {
	params := &openapi.CreateCallParams{}
	params.SetTwiml(p.TwiML)
	params.SetTo(p.To)
	params.SetFrom(p.From)
	params.SetTimeout(p.RingTimeout)
	params.SetRecord(p.Record)

	call, err := d.client.Api.CreateCall(params)
	if err != nil {
		var restErr *twilioclient.TwilioRestError
		if errors.As(err, &restErr) {
			return nil, &ProviderError{
				Code:    restErr.Code,
				Message: restErr.Message,
			}
		}
		return nil, fmt.Errorf("failed to create call: %w", err)
	}

	if call.Sid == nil || *call.Sid == "" {
		return nil, fmt.Errorf("twilio returned a call without a sid")
	}

	d.logger.Debug("Twilio accepted call",
		zap.String("callSid", *call.Sid),
		zap.String("to", p.To))

	return &CallResult{Sid: *call.Sid}, nil
}
