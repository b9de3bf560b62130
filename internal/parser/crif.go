package parser

import (
	"regexp"

	"github.com/insightdelivered/credit-report-extractor/internal/models"
)

// CRIFParser handles CRIF High Mark reports. CRIF uses "credit facility"
// vocabulary for what the other bureaus call accounts.
type CRIFParser struct{}

func (p *CRIFParser) Bureau() models.Bureau {
	return models.BureauCRIF
}

var crifIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bCRIF\b`),
	regexp.MustCompile(`(?i)CRIF\s+High\s*Mark`),
	regexp.MustCompile(`(?i)High\s*Mark\s+Credit\s+Information`),
	regexp.MustCompile(`(?i)crifhighmark`),
}

func (p *CRIFParser) CanParse(text string) bool {
	return matchesAny(text, crifIndicators)
}

var crifReportDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)report\s*(?:date|generated)\s*(?:on)?\s*[:\-]?\s*([\d]{1,4}[-/][\d]{1,2}[-/][\d]{1,4})`),
	regexp.MustCompile(`(?i)date\s*of\s*issue\s*[:\-]?\s*([\d]{1,4}[-/][\d]{1,2}[-/][\d]{1,4})`),
}

var crifSplitStrategies = []splitStrategy{
	{
		name:      "credit-facility",
		delimiter: regexp.MustCompile(`(?i)credit\s*facilit(?:y|ies)`),
	},
	{
		name:      "loan-account",
		delimiter: regexp.MustCompile(`(?i)(?:loan\s*account|account\s*details)`),
	},
	{
		name:      "account-number-label",
		delimiter: regexp.MustCompile(`(?i)(?:account\s*(?:number|no\.?)|a/c\s*no\.?)\s*[:\-]`),
	},
}

func (p *CRIFParser) ParseReport(text string) (*models.ParseResult, error) {
	summary := extractCommonSummary(text, "CRIF", crifReportDatePatterns)

	var raw []models.CreditAccount
	for _, section := range SplitSections(text, crifSplitStrategies) {
		raw = append(raw, extractAccountFromSection(section, models.StatusUnknown))
	}

	accounts := filterValid(raw)
	return assembleResult(models.BureauCRIF, summary, accounts), nil
}
