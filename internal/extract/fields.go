package extract

import (
	"regexp"
	"strings"
)

// 4-digit suffix after an account/card label, skipping masking characters.
var accountLast4Pattern = regexp.MustCompile(`(?i)\b(?:a/c|acct|account|card)\s*(?:no\.?|number|ending)?\s*[:\-]?\s*[xX*]*(\d{4})\b`)

// VPA-shaped token: local-part@handle.
var (
	upiLabeledPattern     = regexp.MustCompile(`(?i)\b(?:vpa|upi\s*id)\s*[:\-]?\s*([a-zA-Z0-9._\-]+@[a-zA-Z][a-zA-Z0-9]*)`)
	upiDirectionalPattern = regexp.MustCompile(`(?i)\b(?:to|from)\s+([a-zA-Z0-9._\-]+@[a-zA-Z][a-zA-Z0-9]*)`)
	upiGenericPattern     = regexp.MustCompile(`\b([a-zA-Z0-9._\-]+@[a-zA-Z][a-zA-Z0-9]*)\b`)
)

// Indian mobile numbers are 10 digits starting 6-9.
var (
	mobilePattern      = regexp.MustCompile(`\b([6-9]\d{9})\b`)
	mobileLocalPattern = regexp.MustCompile(`^[6-9]\d{9}$`)
	allDigitsPattern   = regexp.MustCompile(`^\d+$`)
)

// AccountLast4 returns the masked account or card suffix, e.g. "1234" from
// "A/c XX1234".
func AccountLast4(text string) (string, bool) {
	m := accountLast4Pattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// UPIID returns the first VPA found near a "UPI ID"/"VPA" label or a
// to/from preposition, falling back to any VPA-shaped token. Trailing
// punctuation is stripped and the result lowercased.
func UPIID(text string) (string, bool) {
	for _, pat := range []*regexp.Regexp{upiLabeledPattern, upiDirectionalPattern, upiGenericPattern} {
		if m := pat.FindStringSubmatch(text); m != nil {
			id := strings.ToLower(strings.TrimRight(m[1], ".,;:!-"))
			if id != "" {
				return id, true
			}
		}
	}
	return "", false
}

// MobileNumber returns a 10-digit mobile number, preferring the UPI ID's
// local part when that is itself a mobile number (e.g. "9876543210@ybl"),
// otherwise scanning the free text.
func MobileNumber(text, upiID string) (string, bool) {
	if at := strings.Index(upiID, "@"); at > 0 {
		local := upiID[:at]
		if mobileLocalPattern.MatchString(local) {
			return local, true
		}
	}
	if m := mobilePattern.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return "", false
}

// MerchantFromUPI derives a readable merchant name from a VPA local part:
// "bigbasket.payu@hdfcbank" → "Bigbasket Payu". Numeric local parts (mobile
// VPAs) yield nothing.
func MerchantFromUPI(upiID string) string {
	at := strings.Index(upiID, "@")
	if at <= 0 {
		return ""
	}
	local := upiID[:at]
	if allDigitsPattern.MatchString(local) {
		return ""
	}

	local = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)
	var words []string
	for _, w := range strings.Fields(local) {
		if allDigitsPattern.MatchString(w) {
			continue
		}
		words = append(words, titleCase(w))
	}
	return strings.Join(words, " ")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	b := []byte(strings.ToLower(s))
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
