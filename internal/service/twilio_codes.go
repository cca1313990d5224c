package service

import (
	"fmt"

	"github.com/akhatri/coldcall/internal/voice"
)

// Twilio error codes that get a dedicated user-facing message. Initialized
// once at startup, read-only afterwards.
var twilioUserMessages = map[int]string{
	21211: "Phone number format is invalid.",
	21214: "Phone number or caller ID is invalid.",
	21217: "Phone number is not reachable.",
	21218: "Phone number format is invalid.",
	21401: "Twilio credentials are invalid.",
	21403: "Check Twilio account permissions.",
	21404: "Twilio phone number not found.",
}

// userMessageForRejection maps a structured provider failure to the message
// shown to the caller. Unknown codes fall back to the raw provider text.
func userMessageForRejection(err *voice.ProviderError) string {
	if msg, ok := twilioUserMessages[err.Code]; ok {
		return msg
	}
	return fmt.Sprintf("Twilio error: %s", err.Message)
}
