package voice

import "github.com/twilio/twilio-go/twiml"

const (
	scriptVoice    = "alice"
	scriptLanguage = "en-US"

	scriptGreeting = "Hello! This is a cold call demo. " +
		"This call was initiated using Twilio's Programmable Voice API. " +
		"Thank you for testing our system. Have a great day!"
	scriptGoodbye = "Goodbye!"
)

// BuildScript renders the spoken-response TwiML document: a greeting, a
// one-second pause and a goodbye. The content never varies by input.
func BuildScript() (string, error) {
	greeting := &twiml.VoiceSay{
		Message:  scriptGreeting,
		Voice:    scriptVoice,
		Language: scriptLanguage,
	}

	pause := &twiml.VoicePause{
		Length: "1",
	}

	goodbye := &twiml.VoiceSay{
		Message:  scriptGoodbye,
		Voice:    scriptVoice,
		Language: scriptLanguage,
	}

	return twiml.Voice([]twiml.Element{greeting, pause, goodbye})
}
