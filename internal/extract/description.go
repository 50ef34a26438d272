package extract

import (
	"regexp"
	"strings"
)

// FallbackDescription is used when no template matches and no merchant is
// known. Records carrying it score lower on confidence.
const FallbackDescription = "Transaction"

// nameBody matches merchant-name text; it excludes newlines so a template
// never swallows the next line of a block.
const nameBody = `([A-Za-z][A-Za-z0-9 .&'\-]*?)`

// nameEnd terminates a merchant name at a connective keyword, punctuation,
// or end of line.
const nameEnd = `(?:\s+(?:on|ref|upi|txn|vide|via|using|info|avl|bal|dt)\b|\s*[.,;\n]|\s*$)`

// descriptionTemplates is an ordered first-match-wins list. Specific
// phrasings come before bare prepositions so "paid to X" never loses to a
// stray "at".
var descriptionTemplates = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:paid\s+to|sent\s+to|transferred\s+to|spent\s+at)\s+` + nameBody + nameEnd),
	regexp.MustCompile(`(?i)\b(?:received\s+from|credited\s+(?:by|from))\s+` + nameBody + nameEnd),
	regexp.MustCompile(`(?i)\bto\s+` + nameBody + nameEnd),
	regexp.MustCompile(`(?i)\bat\s+` + nameBody + nameEnd),
	regexp.MustCompile(`(?i)\bfor\s+` + nameBody + nameEnd),
	regexp.MustCompile(`(?i)\bfrom\s+` + nameBody + nameEnd),
	regexp.MustCompile(`(?i)\bvpa[:\s]+[a-zA-Z0-9._\-]+@[a-zA-Z0-9]+\s+([A-Za-z][A-Za-z ]*)`),
	regexp.MustCompile(`(?i)\bupi/(?:p2[pma]/)?\d*/?([A-Za-z][A-Za-z ]*)`),
}

// Captures that are label text rather than a merchant name.
var noiseCaptures = map[string]bool{
	"you":          true,
	"your":         true,
	"account":      true,
	"your account": true,
	"my account":   true,
	"your a":       true,
	"bank":         true,
	"a":            true,
	"info":         true,
}

var referenceNumberPattern = regexp.MustCompile(`\b\d{12,}\b`)

// Description extracts a cleaned free-text description from text. Templates
// are tried in order; the first usable capture wins. When none match, the
// merchant name (if any) is used, then the generic fallback literal.
func Description(text, merchant string) string {
	for _, pat := range descriptionTemplates {
		m := pat.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		cand := cleanDescription(m[1])
		if cand != "" && !noiseCaptures[strings.ToLower(cand)] {
			return cand
		}
	}
	if merchant != "" {
		return merchant
	}
	return FallbackDescription
}

// cleanDescription strips reference numbers (12+ digits), collapses
// whitespace and trims stray punctuation.
func cleanDescription(s string) string {
	s = referenceNumberPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\n", " ")
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.Trim(s, " .,-")
}
