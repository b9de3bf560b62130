package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/insightdelivered/credit-report-extractor/internal/models"
)

// Bureau score labels. The provider capture lets "CIBIL Score: 750" set
// both the score and its provider in one pass.
var creditScorePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(CIBIL|Experian|Equifax|CRIF)\s*(?:credit\s*)?score\s*[:\-]?\s*(\d{3})\b`),
	regexp.MustCompile(`(?i)\bcredit\s*score\s*[:\-]?\s*(\d{3})\b`),
	regexp.MustCompile(`(?i)\bscore\s*[:\-]\s*(\d{3})\b`),
}

var inquiryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:recent\s*)?(?:credit\s*)?enquir(?:ies|y)(?:\s*\(last\s*\d+\s*months?\))?\s*[:\-]?\s*(\d{1,3})\b`),
	regexp.MustCompile(`(?i)(?:recent\s*)?inquir(?:ies|y)\s*[:\-]?\s*(\d{1,3})\b`),
}

// extractCreditScore pulls a bureau score and its provider from report
// text. Only values inside the 300-900 bureau range are accepted;
// anything else is treated as not found.
func extractCreditScore(text string, defaultProvider string) (score int, provider string) {
	for _, re := range creditScorePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := m[len(m)-1]
		n, err := strconv.Atoi(raw)
		if err != nil || n < 300 || n > 900 {
			continue
		}
		if len(m) > 2 && m[1] != "" {
			return n, canonicalBureauName(m[1])
		}
		return n, defaultProvider
	}
	return 0, ""
}

func canonicalBureauName(s string) string {
	switch {
	case strings.EqualFold(s, "cibil"):
		return "CIBIL"
	case strings.EqualFold(s, "experian"):
		return "Experian"
	case strings.EqualFold(s, "equifax"):
		return "Equifax"
	case strings.EqualFold(s, "crif"):
		return "CRIF"
	}
	return s
}

// extractCommonSummary fills the report-level fields every bureau shares:
// report date, score, recent inquiries.
func extractCommonSummary(text string, defaultProvider string, reportDatePatterns []*regexp.Regexp) models.ReportSummary {
	var s models.ReportSummary
	s.ReportDate = firstDate(text, reportDatePatterns)
	s.CreditScore, s.ScoreProvider = extractCreditScore(text, defaultProvider)
	if raw := firstMatch(text, inquiryPatterns); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			s.RecentInquiries = n
		}
	}
	return s
}
