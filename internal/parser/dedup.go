package parser

import (
	"fmt"

	"github.com/insightdelivered/transaction-engine/internal/models"
)

// dedupDescPrefix is how much of the description participates in the
// identity key; statements re-word trailing reference text between pages
// but keep the merchant at the front.
const dedupDescPrefix = 20

// Deduplicate collapses records sharing (date, amount, description prefix)
// to the first occurrence, preserving order. Re-extraction across
// overlapping scan windows and repeated SMS deliveries produce such
// duplicates. Zero-amount records are dropped unconditionally.
// Idempotent: running it on its own output changes nothing.
func Deduplicate(txns []models.Transaction) []models.Transaction {
	seen := make(map[string]bool, len(txns))
	out := txns[:0:0]
	for _, t := range txns {
		if t.Amount == 0 {
			continue
		}
		key := dedupKey(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}

func dedupKey(t models.Transaction) string {
	desc := t.Description
	if len(desc) > dedupDescPrefix {
		desc = desc[:dedupDescPrefix]
	}
	return fmt.Sprintf("%s|%.2f|%s", t.Date.Format("2006-01-02"), t.Amount, desc)
}
