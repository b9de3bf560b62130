package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/insightdelivered/credit-report-extractor/internal/models"
)

// CSVWriter writes extracted accounts to CSV format.
type CSVWriter struct {
	IncludeHeader bool // emit report metadata rows above the account table
}

// WriteToFile writes the parse result to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, result *models.ParseResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, result)
}

// Write writes the parse result in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, result *models.ParseResult) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeHeader {
		writer.Write([]string{"# Bureau", string(result.Bureau)})
		if result.Summary.ReportDate != "" {
			writer.Write([]string{"# Report Date", result.Summary.ReportDate})
		}
		if result.Summary.CreditScore != 0 {
			writer.Write([]string{"# Credit Score", strconv.Itoa(result.Summary.CreditScore)})
		}
		writer.Write([]string{"# Total Accounts", strconv.Itoa(result.Summary.TotalAccounts)})
	}

	header := []string{
		"AccountID", "Bank", "Type", "SubType", "AccountNumber", "Status",
		"CreditLimit", "CurrentBalance", "Outstanding", "EMI",
		"OpenDate", "Confidence",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, a := range result.Accounts {
		row := []string{
			a.AccountID,
			a.BankName,
			string(a.AccountType),
			string(a.AccountSubType),
			a.AccountNumber,
			string(a.AccountStatus),
			formatAmount(a.CreditLimit),
			formatAmount(a.CurrentBalance),
			formatAmount(a.OutstandingAmount),
			formatAmount(a.EMIAmount),
			a.AccountOpenDate,
			strconv.FormatFloat(a.ConfidenceScore, 'f', 2, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

func formatAmount(amount *float64) string {
	if amount == nil {
		return ""
	}
	return strconv.FormatFloat(*amount, 'f', 2, 64)
}
