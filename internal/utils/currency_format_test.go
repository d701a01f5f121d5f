package utils_test

import (
	"testing"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$1,234.50", utils.FormatAmount(decimal.NewFromFloat(1234.5), "USD"))
	assert.Equal(t, "$0.00", utils.FormatAmount(decimal.Zero, "USD"))
	// Zero-fraction currency keeps whole units.
	assert.Equal(t, "¥500", utils.FormatAmount(decimal.NewFromInt(500), "JPY"))
	// Unknown code falls back to a plain fixed-point string.
	assert.Equal(t, "12.35", utils.FormatAmount(decimal.NewFromFloat(12.345), "ZZZ"))
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", utils.FormatWithPrecision(decimal.NewFromFloat(12.345), 2))
	assert.Equal(t, "12", utils.FormatWithPrecision(decimal.NewFromFloat(12.345), 0))
}
