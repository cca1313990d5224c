package voice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhatri/coldcall/internal/voice"
)

func TestBuildScript(t *testing.T) {
	script, err := voice.BuildScript()
	require.NoError(t, err)

	assert.Contains(t, script, "<Response>")
	assert.Contains(t, script, "<Say")
	assert.Contains(t, script, "<Pause")
	assert.Contains(t, script, `length="1"`)
	assert.Contains(t, script, `voice="alice"`)
	assert.Contains(t, script, `language="en-US"`)
	assert.Contains(t, script, "Goodbye!")
}

func TestBuildScript_Deterministic(t *testing.T) {
	first, err := voice.BuildScript()
	require.NoError(t, err)

	second, err := voice.BuildScript()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestProviderError_Error(t *testing.T) {
	err := &voice.ProviderError{Code: 21211, Message: "invalid 'To' phone number"}
	assert.Equal(t, "twilio error 21211: invalid 'To' phone number", err.Error())
}
