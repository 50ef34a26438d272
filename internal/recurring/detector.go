// Package recurring finds periodic transaction groups — subscriptions,
// EMIs, salary credits — in an already-parsed transaction history and
// forecasts their next occurrence. Patterns are recomputed on demand and
// never persisted.
package recurring

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/insightdelivered/transaction-engine/internal/models"
)

// reportThreshold: groups at or below this confidence are not reported.
const reportThreshold = 0.5

// Detector groups a history by normalized merchant and direction and
// classifies the interval pattern of each group.
type Detector struct {
	// MinOccurrences is the smallest group considered; below 2 there is
	// no interval to measure.
	MinOccurrences int
}

func NewDetector() *Detector {
	return &Detector{MinOccurrences: 2}
}

type frequencyBand struct {
	freq models.Frequency
	// min/max bound the average interval in days
	min, max float64
	// nominal and tolerance define the per-interval window for the
	// strong-confidence check
	nominal, tolerance float64
}

var frequencyBands = []frequencyBand{
	{models.FrequencyWeekly, 6, 8, 7, 2},
	{models.FrequencyBiWeekly, 13, 16, 14, 3},
	{models.FrequencyMonthly, 25, 35, 30, 5},
	{models.FrequencyYearly, 350, 380, 365, 15},
}

// connectorPhrases are transactional filler stripped before grouping so
// "Payment to Netflix" and "NETFLIX" land in the same group.
var connectorPhrases = []string{
	"payment to", "paid to", "sent to", "received from", "transfer to",
	"purchase at", "pvt ltd", "private limited", "upi",
}

// Detect returns the recurring patterns in txns: groups with a resolved
// frequency and confidence above 0.5, ordered by predicted next date.
func (d *Detector) Detect(txns []models.Transaction) []models.RecurringPattern {
	minOcc := d.MinOccurrences
	if minOcc < 2 {
		minOcc = 2
	}

	groups := make(map[string][]models.Transaction)
	for _, t := range txns {
		name := t.Merchant
		if name == "" {
			name = t.Description
		}
		norm := NormalizeMerchant(name)
		if norm == "" {
			continue
		}
		key := norm + "|" + string(t.Direction)
		groups[key] = append(groups[key], t)
	}

	var patterns []models.RecurringPattern
	for key, group := range groups {
		if len(group) < minOcc {
			continue
		}
		sort.Slice(group, func(i, j int) bool {
			return group[i].Date.Before(group[j].Date)
		})

		intervals := make([]float64, 0, len(group)-1)
		for i := 1; i < len(group); i++ {
			intervals = append(intervals, group[i].Date.Sub(group[i-1].Date).Hours()/24)
		}
		avgInterval := mean(intervals)

		freq, confidence := classifyIntervals(avgInterval, intervals)
		if freq == models.FrequencyVariable || confidence <= reportThreshold {
			continue
		}

		amounts := make([]float64, len(group))
		for i, t := range group {
			amounts[i] = t.Amount
		}
		avgAmount := mean(amounts)
		stdDev := stddev(amounts, avgAmount)

		sep := strings.LastIndex(key, "|")
		last := group[len(group)-1].Date
		patterns = append(patterns, models.RecurringPattern{
			Merchant:            key[:sep],
			Direction:           models.Direction(key[sep+1:]),
			Occurrences:         len(group),
			AverageAmount:       avgAmount,
			AmountStdDev:        stdDev,
			IsFixedAmount:       avgAmount > 0 && stdDev < 0.10*avgAmount,
			AverageIntervalDays: avgInterval,
			Frequency:           freq,
			Confidence:          confidence,
			LastDate:            last,
			NextDate:            last.Add(time.Duration(avgInterval * 24 * float64(time.Hour))),
		})
	}

	sort.Slice(patterns, func(i, j int) bool {
		return patterns[i].NextDate.Before(patterns[j].NextDate)
	})
	return patterns
}

// classifyIntervals maps the average interval onto a frequency band.
// Confidence is 0.95 when every individual interval also sits inside the
// band's tolerance window, 0.7 when only the average does.
func classifyIntervals(avg float64, intervals []float64) (models.Frequency, float64) {
	for _, band := range frequencyBands {
		if avg < band.min || avg > band.max {
			continue
		}
		allWithin := true
		for _, iv := range intervals {
			if math.Abs(iv-band.nominal) > band.tolerance {
				allWithin = false
				break
			}
		}
		if allWithin {
			return band.freq, 0.95
		}
		return band.freq, 0.7
	}
	return models.FrequencyVariable, 0.3
}

// NormalizeMerchant canonicalizes a merchant/description for grouping:
// lowercase, connector phrases removed, whitespace collapsed, title-cased.
func NormalizeMerchant(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	for _, phrase := range connectorPhrases {
		s = strings.ReplaceAll(s, phrase, " ")
	}
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func stddev(xs []float64, avg float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sumSq := 0.0
	for _, x := range xs {
		sumSq += (x - avg) * (x - avg)
	}
	return math.Sqrt(sumSq / float64(len(xs)))
}
