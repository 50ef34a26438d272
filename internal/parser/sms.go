package parser

import (
	"regexp"
	"time"

	"github.com/insightdelivered/transaction-engine/internal/classify"
	"github.com/insightdelivered/transaction-engine/internal/models"
)

// OTP messages quote the amount of a pending transaction that has not
// happened yet; they must never become records.
var otpPattern = regexp.MustCompile(`(?i)\botp\b|one[\s-]?time\s+password`)

// SMSParser extracts a transaction from a single bank/UPI SMS. All fields
// are co-located in the one message, so this is the single-pass variant of
// the pipeline: no lookahead window.
type SMSParser struct {
	classifier *classify.Classifier
}

// Parse returns the transaction in the message, or false when the message
// is not transactional. The reference time resolves relative dates
// ("today") and stands in for the date when the text carries none.
func (p *SMSParser) Parse(sender, message string, ref time.Time) (models.Transaction, bool) {
	if otpPattern.MatchString(message) {
		return models.Transaction{}, false
	}

	bank := DetectBank(sender)

	date, fromText := dateOrFallback(message, ref)
	return buildTransaction(message, models.SourceSMS, bank, date, fromText, p.classifier)
}
