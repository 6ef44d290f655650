package recharge

import (
	"strings"

	"minutes-recharge/internal/pkg/errs"
)

type Currency string

const (
	CurrencyCOP Currency = "COP"
	CurrencyUSD Currency = "USD"

	DefaultCurrency = CurrencyCOP
)

func (c Currency) String() string {
	return string(c)
}

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyCOP, CurrencyUSD:
		return true
	default:
		return false
	}
}

// NewCurrency trims the code and falls back to COP when it is blank.
// Codes are case sensitive.
func NewCurrency(s string) (Currency, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultCurrency, nil
	}
	c := Currency(s)
	if !c.IsValid() {
		return "", errs.Wrap(ErrInvalidCurrency, "unsupported currency "+s)
	}
	return c, nil
}
