// Package voice is the boundary to the outbound voice-call provider.
package voice

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=voice.go -destination=mocks/mock_dialer.go -package=mocks

// CallParams describes a single outbound call attempt.
type CallParams struct {
	// TwiML is the spoken-response document played to the recipient.
	TwiML string
	// To is the destination number, already normalized.
	To string
	// From is the provider-assigned caller-id number.
	From string
	// RingTimeout is how long the provider lets the destination ring, in seconds.
	RingTimeout int
	// Record enables call recording on the provider side.
	Record bool
}

// CallResult carries the provider-issued identifier of a placed call.
type CallResult struct {
	Sid string
}

// ProviderError is a structured rejection returned by the provider. Code is
// Twilio's numeric error code (e.g. 21211 for a malformed destination number).
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("twilio error %d: %s", e.Code, e.Message)
}

// Dialer places outbound voice calls. Implementations must return a
// *ProviderError when the provider rejected the call with a structured code,
// and a plain error for everything else (network failures, malformed
// responses). There is exactly one attempt per PlaceCall invocation.
type Dialer interface {
	PlaceCall(ctx context.Context, params CallParams) (*CallResult, error)
}
