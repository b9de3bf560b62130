package parser

import (
	"regexp"

	"github.com/insightdelivered/credit-report-extractor/internal/models"
)

// CIBILParser handles TransUnion CIBIL consumer reports.
//
// CIBIL renders accounts as labelled blocks under "ACCOUNT INFORMATION",
// one "MEMBER NAME" heading per lender. There is no usable summary table,
// so extraction is section splitting plus the shared field extractors.
type CIBILParser struct{}

func (p *CIBILParser) Bureau() models.Bureau {
	return models.BureauCIBIL
}

var cibilIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bCIBIL\b`),
	regexp.MustCompile(`(?i)TransUnion\s+CIBIL`),
	regexp.MustCompile(`(?i)Credit\s+Information\s+Bureau\s+\(India\)`),
	regexp.MustCompile(`(?i)\bConsumer\s+CIR\b`),
}

func (p *CIBILParser) CanParse(text string) bool {
	return matchesAny(text, cibilIndicators)
}

var cibilReportDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)date\s*of\s*report\s*[:\-]?\s*([\d]{1,4}[-/][\d]{1,2}[-/][\d]{1,4})`),
	regexp.MustCompile(`(?i)report\s*(?:generated|order)\s*date\s*[:\-]?\s*([\d]{1,4}[-/][\d]{1,2}[-/][\d]{1,4})`),
	regexp.MustCompile(`(?i)control\s*number\s*date\s*[:\-]?\s*([\d]{1,4}[-/][\d]{1,2}[-/][\d]{1,4})`),
}

var cibilSplitStrategies = []splitStrategy{
	{
		name:      "member-name",
		delimiter: regexp.MustCompile(`(?i)member\s*name\s*[:\-]`),
	},
	{
		name:      "account-block",
		delimiter: regexp.MustCompile(`(?i)(?:account\s*(?:information|details)|account\s*#?\s*\d+)`),
	},
	{
		name:      "account-number-label",
		delimiter: regexp.MustCompile(`(?i)(?:account\s*(?:number|no\.?)|a/c\s*no\.?)\s*[:\-]`),
	},
}

func (p *CIBILParser) ParseReport(text string) (*models.ParseResult, error) {
	summary := extractCommonSummary(text, "CIBIL", cibilReportDatePatterns)

	var raw []models.CreditAccount
	for _, section := range SplitSections(text, cibilSplitStrategies) {
		raw = append(raw, extractAccountFromSection(section, models.StatusUnknown))
	}

	accounts := filterValid(raw)
	return assembleResult(models.BureauCIBIL, summary, accounts), nil
}
