package parser

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/insightdelivered/transaction-engine/internal/classify"
	"github.com/insightdelivered/transaction-engine/internal/models"
)

// SMSMessage is one inbox entry handed to the engine by the caller that
// performed the I/O. Timestamp may be zero; it then defaults to now.
type SMSMessage struct {
	Sender    string
	Body      string
	Timestamp time.Time
}

// Engine is the extraction pipeline facade: source classification, field
// extraction, deduplication and confidence scoring behind three calls.
// Construct once and share; all parsing is stateless.
type Engine struct {
	classifier *classify.Classifier
	log        *logrus.Logger
	sms        *SMSParser
	line       *LineParser
	block      *BlockParser
}

// NewEngine returns an engine with the built-in category rules. A nil
// logger disables logging.
func NewEngine(log *logrus.Logger) *Engine {
	return NewEngineWithClassifier(classify.NewClassifier(), log)
}

// NewEngineWithClassifier returns an engine using a custom category
// classifier, e.g. one built from a YAML rule file.
func NewEngineWithClassifier(c *classify.Classifier, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Engine{
		classifier: c,
		log:        log,
		sms:        &SMSParser{classifier: c},
		line:       &LineParser{classifier: c},
		block:      &BlockParser{classifier: c},
	}
}

// ParseSMS extracts the transaction from a single SMS. A non-transactional
// message returns (nil, nil); errors are reserved for violated caller
// contracts.
func (e *Engine) ParseSMS(sender, message string, ts time.Time) (*models.Transaction, error) {
	if strings.TrimSpace(sender) == "" {
		return nil, fmt.Errorf("sender is required")
	}
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("message is required")
	}
	if ts.IsZero() {
		ts = time.Now()
	}

	t, ok := e.sms.Parse(sender, message, ts)
	if !ok {
		e.log.WithField("sender", sender).Debug("message yielded no transaction")
		return nil, nil
	}
	return &t, nil
}

// ParseSMSBatch parses a batch of messages, deduplicates the results and
// returns them date-sorted with per-record confidences. Zero transactions
// is an empty result, not an error; the detected bank tag is still
// reported for diagnostics.
func (e *Engine) ParseSMSBatch(msgs []SMSMessage) (models.ParseResult, error) {
	var txns []models.Transaction
	bank := models.BankUnknown
	skipped := 0

	for _, m := range msgs {
		if strings.TrimSpace(m.Sender) == "" || strings.TrimSpace(m.Body) == "" {
			return models.ParseResult{}, fmt.Errorf("batch message missing sender or body")
		}
		if b := DetectBank(m.Sender); bank == models.BankUnknown && b != models.BankUnknown {
			bank = b
		}
		ts := m.Timestamp
		if ts.IsZero() {
			ts = time.Now()
		}
		t, ok := e.sms.Parse(m.Sender, m.Body, ts)
		if !ok {
			skipped++
			continue
		}
		txns = append(txns, t)
	}

	e.log.WithFields(logrus.Fields{
		"messages": len(msgs),
		"skipped":  skipped,
		"bank":     bank,
	}).Debug("sms batch parsed")

	return e.finalize(txns, bank), nil
}

// ParseDocument parses the full text of one statement document. Sources
// recognized as UPI payment apps go through the multi-line block parser;
// bank statements go through the single-line parser. An unknown source
// tries lines first, then blocks.
func (e *Engine) ParseDocument(text string) (models.ParseResult, error) {
	if strings.TrimSpace(text) == "" {
		return models.ParseResult{}, fmt.Errorf("document text is empty")
	}

	bank := DetectBankFromText(text)
	lines := strings.Split(text, "\n")

	var txns []models.Transaction
	switch {
	case bank.IsPaymentApp():
		txns = e.block.Parse(lines, bank)
	default:
		txns = e.line.Parse(lines, bank)
		if len(txns) == 0 {
			// Unrecognized layout may still be block-structured
			txns = e.block.Parse(lines, bank)
		}
	}

	e.log.WithFields(logrus.Fields{
		"bank":         bank,
		"lines":        len(lines),
		"transactions": len(txns),
	}).Debug("document parsed")

	return e.finalize(txns, bank), nil
}

// finalize applies the batch stages: dedup, date sort, aggregates.
func (e *Engine) finalize(txns []models.Transaction, bank models.Bank) models.ParseResult {
	txns = Deduplicate(txns)
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.Before(txns[j].Date)
	})
	if txns == nil {
		txns = []models.Transaction{}
	}

	res := models.ParseResult{
		Transactions: txns,
		Count:        len(txns),
		Bank:         bank,
	}
	for _, t := range txns {
		res.Confidences = append(res.Confidences, t.Confidence)
		if t.Direction == models.DirectionIncome {
			res.TotalCredit += t.Amount
		} else {
			res.TotalDebit += t.Amount
		}
	}
	return res
}
