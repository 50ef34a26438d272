package classify

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/transaction-engine/internal/models"
)

// Credit keywords are checked before debit keywords: they are the more
// specific set and several debit words ("paid") appear in credit messages
// ("refund paid back").
var creditKeywords = []string{
	"credited", "received from", "deposited", "salary", "refund",
	"cashback", "reversal", "interest paid", "credit alert", "received",
}

var debitKeywords = []string{
	"debited", "paid", "sent to", "withdrawn", "spent", "purchase",
	"payment of", "upi txn", "deducted", "transferred", "debit",
	"payment", "sent",
}

var (
	crTokenPattern = regexp.MustCompile(`(?i)\bcr\b`)
	drTokenPattern = regexp.MustCompile(`(?i)\bdr\b`)
)

// Direction classifies text as expense or income. The second return value
// reports whether a keyword actually matched; with no signal at all the
// default is expense.
func Direction(text string) (models.Direction, bool) {
	lower := strings.ToLower(text)

	for _, kw := range creditKeywords {
		if strings.Contains(lower, kw) {
			return models.DirectionIncome, true
		}
	}
	for _, kw := range debitKeywords {
		if strings.Contains(lower, kw) {
			return models.DirectionExpense, true
		}
	}

	// Isolated ledger tokens, e.g. "Salary Cr." or "POS 4521 Dr"
	if crTokenPattern.MatchString(text) {
		return models.DirectionIncome, true
	}
	if drTokenPattern.MatchString(text) {
		return models.DirectionExpense, true
	}

	return models.DirectionExpense, false
}
