package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatAmount renders a decimal amount in the given ISO currency, using
// the currency's display conventions (symbol, grouping, fraction digits).
// Example: 1234.5 with "USD" returns "$1,234.50".
func FormatAmount(amount decimal.Decimal, currencyCode string) string {
	cur := money.GetCurrency(currencyCode)
	if cur == nil {
		return amount.StringFixed(2)
	}
	scaled := amount.Shift(int32(cur.Fraction)).Round(0)
	return money.New(scaled.IntPart(), currencyCode).Display()
}

// FormatWithPrecision renders an amount rounded to the given number of
// fraction digits, without any currency symbol.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
