package parser

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/credit-report-extractor/internal/models"
)

// GenericExtractor is the last-resort strategy: no bureau layout assumed,
// just a line scan for anything that looks like the start of an account
// description. Used when no bureau matched or a matched bureau parser
// produced nothing.
type GenericExtractor struct{}

// Context window around a seed line: account descriptions spill a couple
// of lines above the identifier and several below it.
const (
	windowBefore = 2
	windowAfter  = 5
)

var accountNumberHintPattern = regexp.MustCompile(`(?i)(?:[Xx*]{4,}\d{4,}|account\s*(?:number|no\.?)|a/c\s*no\.?)`)

// Extract scans text line by line. A line mentioning a known lender or an
// account-number-like substring seeds a context window; the shared field
// extractors run over each window and results are deduplicated by account
// number. Only active accounts are retained (active is also the default
// when a window carries no status keyword). Never fails; worst case an
// empty slice.
func (g *GenericExtractor) Extract(text string) []models.CreditAccount {
	lines := strings.Split(text, "\n")

	var accounts []models.CreditAccount
	seen := make(map[string]bool)

	for i, line := range lines {
		if !g.isSeedLine(line) {
			continue
		}

		start := i - windowBefore
		if start < 0 {
			start = 0
		}
		end := i + windowAfter + 1
		if end > len(lines) {
			end = len(lines)
		}
		window := strings.Join(lines[start:end], "\n")

		acct := extractAccountFromSection(window, models.StatusActive)
		if acct.AccountNumber == "" || seen[acct.AccountNumber] {
			continue
		}
		if acct.AccountStatus != models.StatusActive {
			continue
		}
		seen[acct.AccountNumber] = true
		accounts = append(accounts, acct)
	}

	return accounts
}

// isSeedLine reports whether a line plausibly starts an account
// description: a known lender fragment or an account-number shape.
func (g *GenericExtractor) isSeedLine(line string) bool {
	if findKnownBank(line) != "" {
		return true
	}
	return accountNumberHintPattern.MatchString(line)
}
