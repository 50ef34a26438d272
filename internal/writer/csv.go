package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/insightdelivered/transaction-engine/internal/models"
)

// CSVWriter writes parsed transactions to CSV format.
type CSVWriter struct {
	IncludeHeader bool
}

// WriteToFile writes the result to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, result *models.ParseResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, result)
}

// Write writes the result in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, result *models.ParseResult) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeHeader {
		if result.Bank != "" {
			writer.Write([]string{"# Bank", result.Bank.DisplayName()})
		}
		writer.Write([]string{"# Transactions", strconv.Itoa(result.Count)})
	}

	header := []string{"Date", "Description", "Merchant", "Direction", "Category", "Amount", "Balance", "Bank", "Confidence"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range result.Transactions {
		row := []string{
			txn.Date.Format("2006-01-02"),
			txn.Description,
			txn.Merchant,
			string(txn.Direction),
			string(txn.Category),
			formatAmount(txn.Amount),
			formatAmount(txn.Balance),
			txn.Bank,
			strconv.FormatFloat(txn.Confidence, 'f', 2, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

func formatAmount(amount float64) string {
	if amount == 0 {
		return ""
	}
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
