package parser

import (
	"math"
	"testing"

	"github.com/insightdelivered/transaction-engine/internal/models"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		txn      models.Transaction
		expected float64
	}{
		{
			"all fields resolved",
			models.Transaction{
				Amount:            450,
				DirectionResolved: true,
				Description:       "SWIGGY",
				DateFromText:      true,
				Balance:           12340.50,
				Category:          models.CategoryFood,
			},
			1.0,
		},
		{
			"no balance, other category",
			models.Transaction{
				Amount:            450,
				DirectionResolved: true,
				Description:       "SWIGGY",
				DateFromText:      true,
				Category:          models.CategoryOther,
			},
			0.85,
		},
		{
			"fallback description scores nothing",
			models.Transaction{
				Amount:            450,
				DirectionResolved: true,
				Description:       "Transaction",
				DateFromText:      true,
				Category:          models.CategoryOther,
			},
			0.65,
		},
		{
			"short description scores nothing",
			models.Transaction{
				Amount:       450,
				Description:  "At",
				DateFromText: true,
				Category:     models.CategoryOther,
			},
			0.45,
		},
		{
			"fallback timestamp",
			models.Transaction{
				Amount:            450,
				DirectionResolved: true,
				Description:       "SWIGGY",
				DateFromText:      false,
				Category:          models.CategoryFood,
			},
			0.80,
		},
		{
			"bare minimum",
			models.Transaction{
				Amount:      450,
				Description: "Transaction",
				Category:    models.CategoryOther,
			},
			0.35,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.txn); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Score(): got %f, want %f", got, tt.expected)
			}
		})
	}
}

func TestScore_Capped(t *testing.T) {
	full := models.Transaction{
		Amount:            450,
		DirectionResolved: true,
		Description:       "SWIGGY",
		DateFromText:      true,
		Balance:           12340.50,
		Category:          models.CategoryFood,
	}
	if got := Score(full); got > 1.0 {
		t.Errorf("score exceeds cap: %f", got)
	}
}
