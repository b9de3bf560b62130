package parser

import (
	"regexp"

	"github.com/insightdelivered/credit-report-extractor/internal/models"
)

// EquifaxParser currently only detects Equifax reports; no Equifax sample
// layout has been mapped yet, so account extraction is left to the generic
// fallback the orchestrator runs when a matched parser yields nothing.
//
// TODO: map the Equifax account block layout once sample reports are
// available and replace the generic fallback with a real strategy.
type EquifaxParser struct{}

func (p *EquifaxParser) Bureau() models.Bureau {
	return models.BureauEquifax
}

var equifaxIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bEquifax\b`),
	regexp.MustCompile(`(?i)equifax\.co\.in`),
	regexp.MustCompile(`(?i)Equifax\s+Credit\s+Information\s+Services`),
}

func (p *EquifaxParser) CanParse(text string) bool {
	return matchesAny(text, equifaxIndicators)
}

var equifaxReportDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)report\s*(?:order\s*)?date\s*[:\-]?\s*([\d]{1,4}[-/][\d]{1,2}[-/][\d]{1,4})`),
	regexp.MustCompile(`(?i)date\s*of\s*report\s*[:\-]?\s*([\d]{1,4}[-/][\d]{1,2}[-/][\d]{1,4})`),
}

func (p *EquifaxParser) ParseReport(text string) (*models.ParseResult, error) {
	summary := extractCommonSummary(text, "Equifax", equifaxReportDatePatterns)
	return assembleResult(models.BureauEquifax, summary, nil), nil
}
