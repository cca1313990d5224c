package service

import "errors"

// ErrCredentialsMissing is returned when any of the three required Twilio
// credentials is absent from configuration. The provider is never invoked in
// that case.
var ErrCredentialsMissing = errors.New("twilio credentials are not configured")

// ValidationError rejects a request before the provider is invoked. Message
// is safe to show to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ProviderRejectedError wraps a structured provider failure together with the
// user-facing message looked up from the error-code table.
type ProviderRejectedError struct {
	Code        int
	UserMessage string
}

func (e *ProviderRejectedError) Error() string {
	return e.UserMessage
}
