package services

import (
	"math"
	"testing"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "Zero Rupees Only"},
		{"one", 1, "One Rupee Only"},
		{"teens", 15, "Fifteen Rupees Only"},
		{"reference_final", 550, "Five Hundred and Fifty Rupees Only"},
		{"rounds", 549.6, "Five Hundred and Fifty Rupees Only"},
		{"thousands", 5000, "Five Thousand Rupees Only"},
		{"lakhs", 913183, "Nine Lakh Thirteen Thousand One Hundred and Eighty Three Rupees Only"},
		{"crores", 12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred and Seventy Eight Rupees Only"},
		{"hundreds_of_crores", 1500000000, "One Hundred and Fifty Crore Rupees Only"},
		{"negative", -20, "Minus Twenty Rupees Only"},
		{"infinite", math.Inf(1), "Amount out of range"},
		{"NaN", math.NaN(), "Amount out of range"},
		{"beyond int64", 1e19, "Amount out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AmountInWords(tt.amount); got != tt.want {
				t.Errorf("AmountInWords(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
