package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Currency-marked numbers: ₹/Rs./INR before or after the value, optional
// thousands separators, up to two decimals.
var (
	amountPrefixedPattern = regexp.MustCompile(`(?i)(?:₹|\brs\.?|\binr)\s*([0-9][\d,]*(?:\.\d{1,2})?)`)
	amountSuffixedPattern = regexp.MustCompile(`(?i)\b([0-9][\d,]*(?:\.\d{1,2})?)\s*(?:₹|rs\b|inr\b)`)
)

// Balance labels, in either order relative to the number.
var (
	balanceAfterLabelPattern = regexp.MustCompile(`(?i)\b(?:avl\.?\s*bal(?:ance)?|available\s*bal(?:ance)?|bal(?:ance)?)\s*[:\-]?\s*(?:₹|\brs\.?|\binr)?\s*([0-9][\d,]*(?:\.\d{1,2})?)`)
	balanceBeforeLabelPattern = regexp.MustCompile(`(?i)(?:₹|rs\.?|inr)?\s*([0-9][\d,]*(?:\.\d{1,2})?)\s+(?:is\s+(?:your|the)\s+)?(?:avl\.?\s*|available\s*)?bal(?:ance)?\b`)
)

// Amount returns the transaction amount from text. All currency-marked
// numbers are candidates; anything within 1 unit of the separately-detected
// balance is excluded so a running balance is never misread as the amount.
// When several candidates remain the smallest non-zero one wins — statements
// list the transaction amount before the (larger) running balance. That
// tie-break misfires when an amount exceeds the displayed balance (e.g. an
// overdraft); known limitation, kept as-is.
func Amount(text string, balance float64) (float64, bool) {
	var candidates []float64
	for _, pat := range []*regexp.Regexp{amountPrefixedPattern, amountSuffixedPattern} {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			v, err := parseNumber(m[1])
			if err != nil {
				continue
			}
			candidates = append(candidates, v)
		}
	}

	best := 0.0
	for _, v := range candidates {
		if v == 0 {
			continue
		}
		if balance > 0 && math.Abs(v-balance) <= 1.0 {
			continue
		}
		if best == 0 || v < best {
			best = v
		}
	}
	if best == 0 {
		return 0, false
	}
	return best, true
}

// Balance returns the number adjacent to a balance label, accepting both
// "Avl Bal Rs.12,340.50" and "12,340.50 is your balance" orderings.
func Balance(text string) (float64, bool) {
	if m := balanceAfterLabelPattern.FindStringSubmatch(text); m != nil {
		if v, err := parseNumber(m[1]); err == nil && v > 0 {
			return v, true
		}
	}
	if m := balanceBeforeLabelPattern.FindStringSubmatch(text); m != nil {
		if v, err := parseNumber(m[1]); err == nil && v > 0 {
			return v, true
		}
	}
	return 0, false
}

// parseNumber converts "12,340.50" to a float64.
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	return strconv.ParseFloat(s, 64)
}
