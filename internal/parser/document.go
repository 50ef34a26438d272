package parser

import (
	"strings"
	"time"

	"github.com/insightdelivered/transaction-engine/internal/classify"
	"github.com/insightdelivered/transaction-engine/internal/extract"
	"github.com/insightdelivered/transaction-engine/internal/models"
)

// defaultLookahead bounds how many lines after a date anchor the block
// parser will scan for the remaining fields.
const defaultLookahead = 7

// dateOrFallback resolves a unit's date from its text, degrading to the
// reference timestamp.
func dateOrFallback(text string, ref time.Time) (time.Time, bool) {
	if d, ok := extract.Date(text, ref); ok {
		return d, true
	}
	return ref, false
}

// LineParser handles statement text whose lines are self-contained: date,
// amount and description all on one line. Lines without an explicit date
// are skipped — in a document there is no per-unit timestamp to fall back
// on, and most such lines are headers or disclaimers.
type LineParser struct {
	classifier *classify.Classifier
}

func (p *LineParser) Parse(lines []string, bank models.Bank) []models.Transaction {
	var out []models.Transaction
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || !extract.HasDate(line) {
			continue
		}
		date, _ := extract.Date(line, time.Now())
		if t, ok := buildTransaction(line, models.SourcePDF, bank, date, true, p.classifier); ok {
			out = append(out, t)
		}
	}
	return out
}

// BlockParser handles block-structured documents (UPI-app statements)
// where one transaction's fields are scattered over consecutive lines
// after a date header:
//
//	Jan 29, 2026
//	Paid to Big Bazaar
//	DEBIT
//	₹1,250
//
// It is a small state machine: scan for a date anchor, then grow a window
// line by line (bounded by Lookahead) until both a direction keyword and
// an amount have been seen, then emit. A window that exhausts the bound
// without resolving both is silently dropped — normal for headers and
// footer boilerplate. The window never crosses the next date anchor.
type BlockParser struct {
	classifier *classify.Classifier
	Lookahead  int
}

func (p *BlockParser) Parse(lines []string, bank models.Bank) []models.Transaction {
	lookahead := p.Lookahead
	if lookahead <= 0 {
		lookahead = defaultLookahead
	}

	var out []models.Transaction
	i := 0
	for i < len(lines) {
		anchor := strings.TrimSpace(lines[i])
		if anchor == "" || !extract.HasDate(anchor) {
			i++
			continue
		}
		date, _ := extract.Date(anchor, time.Now())

		block := []string{anchor}
		consumed := 0
		emitted := false
		for j := i + 1; j < len(lines) && j-i <= lookahead; j++ {
			next := strings.TrimSpace(lines[j])
			if extract.HasDate(next) {
				break
			}
			consumed = j - i
			if next == "" {
				continue
			}
			block = append(block, next)

			joined := strings.Join(block, "\n")
			_, directionResolved := classify.Direction(joined)
			if !directionResolved {
				continue
			}
			balance, _ := extract.Balance(joined)
			amount, ok := extract.Amount(joined, balance)
			if !ok || amount <= 0 {
				continue
			}

			if t, built := buildTransaction(joined, models.SourcePDF, bank, date, true, p.classifier); built {
				out = append(out, t)
				emitted = true
			}
			break
		}

		if emitted {
			i += consumed + 1
		} else {
			i++
		}
	}
	return out
}
