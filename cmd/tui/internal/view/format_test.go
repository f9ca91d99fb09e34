package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onion2907/nivesh/cmd/tui/internal/view"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "₹0.00"},
		{999, "₹999.00"},
		{1000, "₹1,000.00"},
		{100000, "₹1,00,000.00"},
		{1234567.89, "₹12,34,567.89"},
		{-45000, "-₹45,000.00"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, view.FormatINR(tc.in))
	}
}
