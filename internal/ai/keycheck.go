package ai

import (
	"errors"
	"regexp"
	"strings"
)

// Gemini API keys start with "AIza" followed by 35-41 url-safe characters.
var keyPattern = regexp.MustCompile(`^AIza[0-9A-Za-z_\-]{35,41}$`)

// ValidateKey checks the Gemini API key format before any network call is
// made, so obviously broken keys fail fast with a readable message.
func ValidateKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("gemini: no api key provided")
	}
	if !strings.HasPrefix(key, "AIza") {
		return errors.New("gemini: invalid api key format: keys start with 'AIza'")
	}
	if len(key) < 34 {
		return errors.New("gemini: api key appears too short")
	}
	if !keyPattern.MatchString(key) {
		return errors.New("gemini: invalid api key format: expected 'AIza' followed by 35-41 characters")
	}
	return nil
}
