package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date patterns common in Indian bank SMS and statement text.
var (
	// DD/MM/YYYY, DD-MM-YYYY, DD/MM/YY
	dateNumericPattern = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})\b`)
	// DD Mon YYYY (e.g., 15 Jan 2024, 3rd Mar 2025)
	dateDayMonPattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*,?\s+(\d{2,4})\b`)
	// Mon DD, YYYY (e.g., Jan 29, 2026) — used by UPI-app statements
	dateMonDayPattern = regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`)
	// DD-Mon-YY or DD-Mon-YYYY (e.g., 15-Jan-24)
	dateDashMonPattern = regexp.MustCompile(`(?i)\b(\d{1,2})-(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*-(\d{2,4})\b`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// Date finds the first date in text, trying relative-day keywords, then
// numeric DD/MM/YYYY and DD-MM-YYYY, then DD Mon YYYY, then Mon DD YYYY,
// then DD-Mon-YY. The reference time ref resolves relative keywords.
// Returns false when no pattern matches; the caller decides the fallback.
func Date(text string, ref time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "today") {
		return midnight(ref), true
	}
	if strings.Contains(lower, "yesterday") {
		return midnight(ref.AddDate(0, 0, -1)), true
	}

	if m := dateNumericPattern.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if d, ok := buildDate(year, time.Month(month), day); ok {
			return d, true
		}
	}
	if m := dateDayMonPattern.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		if d, ok := buildDate(year, monthFromName(m[2]), day); ok {
			return d, true
		}
	}
	if m := dateMonDayPattern.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if d, ok := buildDate(year, monthFromName(m[1]), day); ok {
			return d, true
		}
	}
	if m := dateDashMonPattern.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		if d, ok := buildDate(year, monthFromName(m[2]), day); ok {
			return d, true
		}
	}

	return time.Time{}, false
}

// HasDate reports whether text contains any recognizable date. Relative-day
// keywords do not count; this is used to find date anchors in documents.
func HasDate(text string) bool {
	return dateNumericPattern.MatchString(text) ||
		dateDayMonPattern.MatchString(text) ||
		dateMonDayPattern.MatchString(text) ||
		dateDashMonPattern.MatchString(text)
}

func monthFromName(name string) time.Month {
	return monthsByPrefix[strings.ToLower(name)[:3]]
}

// buildDate validates the components and maps two-digit years:
// 00-50 → 2000s, 51-99 → 1900s.
func buildDate(year int, month time.Month, day int) (time.Time, bool) {
	if year < 100 {
		if year <= 50 {
			year += 2000
		} else {
			year += 1900
		}
	}
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (31 Feb → 3 Mar); reject those
	if d.Day() != day || d.Month() != month {
		return time.Time{}, false
	}
	return d, true
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
