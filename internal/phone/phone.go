// Package phone validates and canonicalizes phone numbers.
package phone

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Numbers without an explicit +country prefix are parsed against this region.
const defaultRegion = "US"

var ErrInvalid = errors.New("invalid phone number")

// Normalize parses raw input against the number plan and returns the E.164
// form. An empty string is treated as absent and returns "" with no error;
// a validated E.164 string round-trips to itself.
func Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return "", ErrInvalid
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalid
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
