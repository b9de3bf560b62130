package parser

import (
	"fmt"
	"regexp"

	"github.com/insightdelivered/credit-report-extractor/internal/models"
)

// ExperianParser handles Experian credit information reports.
//
// Experian prints a semi-tabular "Credit Account Summary" block ahead of
// the detailed sections; the table parser is attempted first and section
// splitting is only the fallback when the table anchors are absent or the
// table yields no usable rows.
type ExperianParser struct{}

func (p *ExperianParser) Bureau() models.Bureau {
	return models.BureauExperian
}

var experianIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bExperian\b`),
	regexp.MustCompile(`(?i)Experian\s+Credit\s+Information\s+Report`),
	regexp.MustCompile(`(?i)experian\.in`),
	regexp.MustCompile(`(?i)\bECIR\b`),
}

func (p *ExperianParser) CanParse(text string) bool {
	return matchesAny(text, experianIndicators)
}

var experianReportDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)report\s*date\s*[:\-]?\s*([\d]{1,4}[-/][\d]{1,2}[-/][\d]{1,4})`),
	regexp.MustCompile(`(?i)date\s*of\s*(?:report|request)\s*[:\-]?\s*([\d]{1,4}[-/][\d]{1,2}[-/][\d]{1,4})`),
}

// Experian is the only bureau that prints a report/reference number worth
// carrying.
var experianReportNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)report\s*number\s*[:\-]?\s*([A-Z0-9\-]{6,20})`),
	regexp.MustCompile(`(?i)(?:ECIR|reference)\s*(?:number|no\.?)\s*[:\-]?\s*([A-Z0-9\-]{6,20})`),
}

var experianSplitStrategies = []splitStrategy{
	{
		name:      "account-detail-block",
		delimiter: regexp.MustCompile(`(?i)(?:credit\s*account\s*details|account\s*#?\s*\d+|acct\s*\d+)`),
	},
	{
		name:      "lender-label",
		delimiter: regexp.MustCompile(`(?i)(?:lender\s*[:\-]|bank\s*name\s*[:\-]|member\s*name)`),
	},
	{
		name:      "account-number-label",
		delimiter: regexp.MustCompile(`(?i)(?:account\s*(?:number|no\.?)|a/c\s*no\.?)\s*[:\-]`),
	},
}

func (p *ExperianParser) ParseReport(text string) (*models.ParseResult, error) {
	summary := extractCommonSummary(text, "Experian", experianReportDatePatterns)
	summary.ReportNumber = firstMatch(text, experianReportNumberPatterns)

	tableAccounts, droppedInactive := ParseExperianTable(text)
	if droppedInactive > 0 {
		// The table path only keeps active rows, so the reported totals
		// cover the active subset. Surface that instead of hiding it.
		summary.Errors = append(summary.Errors, fmt.Sprintf(
			"experian summary table: %d non-active row(s) omitted from account totals", droppedInactive))
	}

	accounts := filterValid(tableAccounts)
	if len(accounts) == 0 {
		var raw []models.CreditAccount
		for _, section := range SplitSections(text, experianSplitStrategies) {
			raw = append(raw, extractAccountFromSection(section, models.StatusUnknown))
		}
		accounts = filterValid(raw)
	}

	return assembleResult(models.BureauExperian, summary, accounts), nil
}
