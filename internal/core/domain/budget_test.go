package domain_test

import (
	"testing"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsValidMonth(t *testing.T) {
	assert.True(t, domain.IsValidMonth("2024-01"))
	assert.True(t, domain.IsValidMonth("2024-12"))

	assert.False(t, domain.IsValidMonth("2024-00"))
	assert.False(t, domain.IsValidMonth("2024-13"))
	assert.False(t, domain.IsValidMonth("2024-1"))
	assert.False(t, domain.IsValidMonth("202403"))
	assert.False(t, domain.IsValidMonth("2024-03-05"))
	assert.False(t, domain.IsValidMonth(""))
}
