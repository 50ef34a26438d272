package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/insightdelivered/transaction-engine/internal/classify"
	"github.com/insightdelivered/transaction-engine/internal/extractor"
	"github.com/insightdelivered/transaction-engine/internal/models"
	"github.com/insightdelivered/transaction-engine/internal/parser"
	"github.com/insightdelivered/transaction-engine/internal/writer"
)

const version = "1.0.0"

func main() {
	formatFlag := flag.String("format", "csv", "Output format: csv or json")
	outputFlag := flag.String("output", "", "Output file path (defaults to input filename with new extension)")
	rulesFlag := flag.String("rules", "", "Optional YAML file overriding the category keyword rules")
	headerFlag := flag.Bool("header", true, "Include summary header rows in CSV output")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Transaction Extraction Engine
by Insight Delivered

Converts bank statement PDFs and SMS dump files into structured,
categorized transaction records.

Usage:
  transaction-engine [flags] <input.pdf | input.tsv> [more inputs ...]

SMS dump files are tab-separated, one message per line:
  SENDER<TAB>message text

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Convert a PhonePe statement PDF to CSV
  transaction-engine statement.pdf

  # Parse an SMS dump to JSON with custom category rules
  transaction-engine --format=json --rules=rules.yaml inbox.tsv
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("transaction-engine v%s\n", version)
		os.Exit(0)
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	log := logrus.New()
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	engine, err := newEngine(*rulesFlag, log)
	if err != nil {
		log.Fatalf("setup failed: %v", err)
	}

	for _, inputPath := range flag.Args() {
		if err := processFile(engine, inputPath, *formatFlag, *outputFlag, *headerFlag); err != nil {
			log.Fatalf("processing %s: %v", inputPath, err)
		}
	}
}

func newEngine(rulesPath string, log *logrus.Logger) (*parser.Engine, error) {
	if rulesPath == "" {
		return parser.NewEngine(log), nil
	}
	rules, err := classify.LoadRules(rulesPath)
	if err != nil {
		return nil, err
	}
	return parser.NewEngineWithClassifier(classify.NewClassifierWithRules(rules), log), nil
}

func processFile(engine *parser.Engine, inputPath, format, outputPath string, includeHeader bool) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	var result models.ParseResult
	var err error
	switch strings.ToLower(filepath.Ext(inputPath)) {
	case ".pdf":
		result, err = parsePDF(engine, inputPath)
	case ".tsv", ".txt":
		result, err = parseSMSDump(engine, inputPath)
	default:
		return fmt.Errorf("unsupported input type %q; expected .pdf, .tsv or .txt", filepath.Ext(inputPath))
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d transaction(s), bank: %s\n", inputPath, result.Count, result.Bank.DisplayName())
	if result.Count == 0 {
		fmt.Println("  Warning: no transactions found. The input may not contain transactional text.")
	}

	outPath := outputPath
	if outPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outPath = base + "." + format
	}

	switch format {
	case "csv":
		w := &writer.CSVWriter{IncludeHeader: includeHeader}
		err = w.WriteToFile(outPath, &result)
	case "json":
		w := &writer.JSONWriter{Indent: true}
		err = w.WriteToFile(outPath, &result)
	default:
		return fmt.Errorf("unknown format %q; use csv or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("  Output: %s\n", outPath)
	return nil
}

func parsePDF(engine *parser.Engine, path string) (models.ParseResult, error) {
	text, err := extractor.ExtractTextCombined(path)
	if err != nil {
		return models.ParseResult{}, fmt.Errorf("pdf extraction failed: %w", err)
	}
	return engine.ParseDocument(text)
}

// parseSMSDump reads a tab-separated SENDER<TAB>message file.
func parseSMSDump(engine *parser.Engine, path string) (models.ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.ParseResult{}, err
	}
	defer f.Close()

	var msgs []parser.SMSMessage
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sender, body, found := strings.Cut(line, "\t")
		if !found {
			continue
		}
		msgs = append(msgs, parser.SMSMessage{Sender: strings.TrimSpace(sender), Body: strings.TrimSpace(body)})
	}
	if err := scanner.Err(); err != nil {
		return models.ParseResult{}, err
	}

	return engine.ParseSMSBatch(msgs)
}
