package services

import (
	"math"
	"strings"
)

// AmountInWords spells a rupee amount in the Indian numbering system,
// rounded to the nearest rupee.
// Example: 913183 → "Nine Lakh Thirteen Thousand One Hundred and Eighty Three Rupees Only"
func AmountInWords(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || math.Abs(amount) >= maxWordsAmount {
		return "Amount out of range"
	}
	if amount < 0 {
		return "Minus " + AmountInWords(-amount)
	}

	rupees := int64(math.Round(amount))
	if rupees == 0 {
		return "Zero Rupees Only"
	}
	if rupees == 1 {
		return "One Rupee Only"
	}
	return indianWords(rupees) + " Rupees Only"
}

// maxWordsAmount keeps the rounded rupee count well inside int64.
const maxWordsAmount = 1e18

var indianScales = []struct {
	size int64
	name string
}{
	{10000000, "Crore"},
	{100000, "Lakh"},
	{1000, "Thousand"},
	{100, "Hundred"},
}

func indianWords(n int64) string {
	var parts []string
	for _, s := range indianScales {
		if n < s.size {
			continue
		}
		count := n / s.size
		n %= s.size
		if count >= 100 {
			parts = append(parts, indianWords(count)+" "+s.name)
		} else {
			parts = append(parts, wordsUnder100(count)+" "+s.name)
		}
	}
	if n > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and")
		}
		parts = append(parts, wordsUnder100(n))
	}
	return strings.Join(parts, " ")
}

func wordsUnder100(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	w := tensWords[n/10]
	if n%10 != 0 {
		w += " " + onesWords[n%10]
	}
	return w
}

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}
