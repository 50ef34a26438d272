package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/insightdelivered/transaction-engine/internal/models"
)

// JSONWriter writes a full parse result, including confidences and
// aggregate totals, as JSON.
type JSONWriter struct {
	Indent bool
}

// WriteToFile writes the result to a JSON file at the given path.
func (w *JSONWriter) WriteToFile(path string, result *models.ParseResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, result)
}

// Write encodes the result to the given writer.
func (w *JSONWriter) Write(out io.Writer, result *models.ParseResult) error {
	enc := json.NewEncoder(out)
	if w.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
