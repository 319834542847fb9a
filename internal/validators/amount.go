package validators

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// MinTransactionAmount is the smallest amount a ledger entry may carry.
var MinTransactionAmount = decimal.NewFromFloat(0.01)

// Amount accepts either a JSON number or a numeric string, so form input
// like "12.50" and numeric payloads both parse.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = Amount(s)
		return nil
	}
	*a = Amount(strings.TrimSpace(string(b)))
	return nil
}

// parseAmount returns the parsed value or a violation message. min is
// inclusive; pass decimal.Zero for "non-negative".
func parseAmount(raw Amount, min decimal.Decimal) (decimal.Decimal, string) {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return decimal.Zero, "amount is required"
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, "amount must be a number"
	}
	if d.LessThan(min) {
		return decimal.Zero, "amount must be at least " + min.String()
	}
	return d, ""
}
