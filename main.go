package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/insightdelivered/credit-report-extractor/internal/api"
	"github.com/insightdelivered/credit-report-extractor/internal/extractor"
	"github.com/insightdelivered/credit-report-extractor/internal/parser"
	"github.com/insightdelivered/credit-report-extractor/internal/writer"
)

const version = "1.0.0"

func main() {
	formatFlag := flag.String("format", "json", "Output format: json or csv")
	outputFlag := flag.String("output", "", "Output file path (defaults to stdout for json, input name with .csv for csv)")
	passwordFlag := flag.String("password", "", "PDF password (bureaus often protect reports with PAN/DOB-derived passwords)")
	textFlag := flag.Bool("text", false, "Treat input files as already-extracted text rather than PDF")
	serveFlag := flag.String("serve", "", "Run the HTTP API on this address (e.g. :8080) instead of converting files")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Credit Report Extractor
by Insight Delivered (QEA AutoLens)

Extracts structured credit-account records from CIBIL, Experian, Equifax
and CRIF report PDFs.

Usage:
  credit-report-extractor [flags] <report.pdf> [report2.pdf ...]
  credit-report-extractor -serve :8080

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Parse a report and print the JSON result
  credit-report-extractor report.pdf

  # Password-protected report, CSV output
  credit-report-extractor -password=ABCDE1234F -format=csv report.pdf

  # Already-extracted text
  credit-report-extractor -text report.txt

  # Run the upload API
  credit-report-extractor -serve :8080
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("credit-report-extractor v%s\n", version)
		os.Exit(0)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	registry := parser.NewRegistry()

	if *serveFlag != "" {
		app := fiber.New(fiber.Config{BodyLimit: 32 << 20})
		api.NewHandler(registry, log).RegisterRoutes(app)
		log.Info("listening", "addr", *serveFlag)
		if err := app.Listen(*serveFlag); err != nil {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	for _, inputPath := range flag.Args() {
		if err := processFile(registry, inputPath, *formatFlag, *outputFlag, *passwordFlag, *textFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

func processFile(registry *parser.Registry, inputPath, format, outputPath, password string, isText bool) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	var text string
	if isText || strings.ToLower(filepath.Ext(inputPath)) == ".txt" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return err
		}
		text = string(data)
	} else {
		var err error
		text, err = extractor.ExtractTextFile(inputPath, password)
		if err != nil {
			return fmt.Errorf("PDF extraction failed: %w", err)
		}
	}

	fmt.Printf("Processing: %s\n", inputPath)

	result := registry.ParseReport(text)

	fmt.Printf("  Bureau: %s\n", result.Bureau)
	fmt.Printf("  Found %d account(s)\n", result.Summary.TotalAccounts)
	if result.Summary.CreditScore != 0 {
		fmt.Printf("  Credit score: %d (%s)\n", result.Summary.CreditScore, result.Summary.ScoreProvider)
	}
	for _, e := range result.Summary.Errors {
		fmt.Printf("  Note: %s\n", e)
	}
	if result.Summary.TotalAccounts == 0 {
		fmt.Println("  Warning: no accounts extracted. The report layout may not match known patterns; the result needs manual review.")
	}

	switch strings.ToLower(format) {
	case "json":
		out := os.Stdout
		if outputPath != "" {
			f, err := os.Create(outputPath)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("JSON write failed: %w", err)
		}
	case "csv":
		outPath := outputPath
		if outPath == "" {
			outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".csv"
		}
		w := &writer.CSVWriter{IncludeHeader: true}
		if err := w.WriteToFile(outPath, result); err != nil {
			return fmt.Errorf("CSV write failed: %w", err)
		}
		fmt.Printf("  Output: %s\n", outPath)
	default:
		return fmt.Errorf("unknown format %q. Supported: json, csv", format)
	}

	fmt.Println("  Done.")
	return nil
}
