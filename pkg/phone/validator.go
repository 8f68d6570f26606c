package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// Normalize parses a phone number and returns it in E.164 format.
// defaultRegion is used when the number has no country prefix (e.g. "US").
func Normalize(number, defaultRegion string) (string, error) {
	parsed, err := phonenumbers.Parse(number, defaultRegion)
	if err != nil {
		return "", fmt.Errorf("failed to parse phone number: %w", err)
	}

	if !phonenumbers.IsValidNumber(parsed) {
		return "", fmt.Errorf("invalid phone number: %s", number)
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}
