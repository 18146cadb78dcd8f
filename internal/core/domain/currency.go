package domain

import "fmt"

// Currency is the closed set of currencies an item price may be declared in.
// New currencies are added as new constants, never by passing arbitrary codes.
type Currency string

const (
	// CurrencyUSD is the US dollar, the default reference currency.
	CurrencyUSD Currency = "USD"
	// CurrencyCNY is the Chinese yuan.
	CurrencyCNY Currency = "CNY"
)

// SupportedCurrencies returns all currencies accepted for item prices.
func SupportedCurrencies() []Currency {
	return []Currency{CurrencyUSD, CurrencyCNY}
}

// IsValid reports whether c is one of the supported currencies.
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUSD, CurrencyCNY:
		return true
	}
	return false
}

// String returns the 3-letter currency code.
func (c Currency) String() string {
	return string(c)
}

// ParseCurrency converts a 3-letter code into a Currency.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(code)
	if !c.IsValid() {
		return "", fmt.Errorf("unsupported currency code %q", code)
	}
	return c, nil
}
