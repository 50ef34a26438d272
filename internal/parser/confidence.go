package parser

import (
	"github.com/insightdelivered/transaction-engine/internal/extract"
	"github.com/insightdelivered/transaction-engine/internal/models"
)

// Score computes the overall extraction confidence for a record as a
// weighted sum of per-field successes, capped at 1.0. Downstream consumers
// threshold on this to route low-confidence records to manual review.
//
//	amount present            +0.30
//	direction keyword matched +0.20
//	meaningful description    +0.20
//	date read from text       +0.15 (fallback timestamp: +0.05)
//	balance present           +0.10
//	category is not Other     +0.05
func Score(t models.Transaction) float64 {
	s := 0.0
	if t.Amount > 0 {
		s += 0.30
	}
	if t.DirectionResolved {
		s += 0.20
	}
	if t.Description != extract.FallbackDescription && len(t.Description) > 3 {
		s += 0.20
	}
	if t.DateFromText {
		s += 0.15
	} else {
		s += 0.05
	}
	if t.Balance > 0 {
		s += 0.10
	}
	if t.Category != models.CategoryOther {
		s += 0.05
	}
	if s > 1.0 {
		s = 1.0
	}
	return s
}
