package service

import "testing"

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "strips inner and outer whitespace", input: "  +1 555 123 4567 ", expected: "+15551234567"},
		{name: "tabs and newlines", input: "\t+1555\n1234567", expected: "+15551234567"},
		{name: "already normalized", input: "+15551234567", expected: "+15551234567"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeNumber(tt.input)
			if got != tt.expected {
				t.Errorf("normalizeNumber(%q) = %q, want %q", tt.input, got, tt.expected)
			}

			// Normalization is idempotent.
			if again := normalizeNumber(got); again != got {
				t.Errorf("normalizeNumber(%q) = %q, want unchanged", got, again)
			}
		})
	}
}
