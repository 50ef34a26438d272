package parser

import (
	"time"

	"github.com/google/uuid"

	"github.com/insightdelivered/transaction-engine/internal/classify"
	"github.com/insightdelivered/transaction-engine/internal/extract"
	"github.com/insightdelivered/transaction-engine/internal/models"
)

// buildTransaction runs every field extractor over one text unit and
// assembles the record. The date has already been resolved by the caller
// (from the text or from a reference timestamp); a unit with no usable
// amount yields (zero, false) — normal for non-transactional text, never
// an error.
func buildTransaction(text string, source models.Source, bank models.Bank, date time.Time, dateFromText bool, c *classify.Classifier) (models.Transaction, bool) {
	balance, _ := extract.Balance(text)
	amount, ok := extract.Amount(text, balance)
	if !ok || amount <= 0 {
		return models.Transaction{}, false
	}

	direction, directionResolved := classify.Direction(text)

	upiID, _ := extract.UPIID(text)
	merchant := extract.MerchantFromUPI(upiID)
	description := extract.Description(text, merchant)
	if merchant == "" && description != extract.FallbackDescription {
		merchant = description
	}

	mobile, _ := extract.MobileNumber(text, upiID)
	accountLast4, _ := extract.AccountLast4(text)
	category, categoryConfidence := c.Categorize(merchant, text)

	t := models.Transaction{
		ID:                 uuid.NewString(),
		Date:               date,
		Amount:             amount,
		Direction:          direction,
		Description:        description,
		Merchant:           merchant,
		Category:           category,
		CategoryConfidence: categoryConfidence,
		AccountLast4:       accountLast4,
		Balance:            balance,
		UPIID:              upiID,
		MobileNumber:       mobile,
		Bank:               bank.DisplayName(),
		Source:             source,
		RawText:            text,
		DateFromText:       dateFromText,
		DirectionResolved:  directionResolved,
	}
	t.Confidence = Score(t)
	return t, true
}
