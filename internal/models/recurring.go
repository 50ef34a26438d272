package models

import "time"

// Frequency is the inferred period of a recurring transaction group.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiWeekly Frequency = "bi-weekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyYearly   Frequency = "yearly"
	FrequencyVariable Frequency = "variable"
)

// RecurringPattern summarizes a group of periodic transactions to the same
// merchant: subscriptions, EMIs, salary credits. Derived on demand from a
// transaction history, never persisted.
type RecurringPattern struct {
	Merchant            string    `json:"merchant"`
	Direction           Direction `json:"direction"`
	Occurrences         int       `json:"occurrences"`
	AverageAmount       float64   `json:"averageAmount"`
	AmountStdDev        float64   `json:"amountStdDev"`
	IsFixedAmount       bool      `json:"isFixedAmount"`
	AverageIntervalDays float64   `json:"averageIntervalDays"`
	Frequency           Frequency `json:"frequency"`
	Confidence          float64   `json:"confidence"`
	LastDate            time.Time `json:"lastDate"`
	NextDate            time.Time `json:"nextDate"`
}
