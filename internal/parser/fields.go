package parser

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/credit-report-extractor/internal/models"
)

// Labelled-field patterns tried before any substring heuristics.
var (
	bankLabelPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:lender|bank|member\s*name|institution)\s*[:\-]\s*([A-Za-z][A-Za-z .&]{2,60})`),
		regexp.MustCompile(`(?i)(?:financed\s*by|issued\s*by)\s*[:\-]?\s*([A-Za-z][A-Za-z .&]{2,60})`),
	}

	accountNumberLabelPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:account\s*(?:number|no\.?)|a/c\s*no\.?)\s*[:\-]?\s*([A-Za-z0-9Xx*]{4,25})`),
		regexp.MustCompile(`(?i)card\s*(?:number|no\.?)\s*[:\-]?\s*([0-9Xx*\s]{4,25}[0-9Xx*])`),
	}

	// Partially redacted numbers as bureaus print them: at least 4 mask
	// characters followed by at least 4 digits (XXXXXXXX1234, ****5678).
	// No leading \b: word boundaries never fire before a "*" mask.
	maskedNumberPattern = regexp.MustCompile(`([Xx*]{4,}\d{4,})\b`)
)

// ExtractBankName pulls a lender name from a section of report text.
// Labelled fields win over fragment matching; either way the result is
// normalized to a display name.
func ExtractBankName(section string) string {
	if m := firstMatch(section, bankLabelPatterns); m != "" {
		return NormalizeBankName(m)
	}
	if frag := findKnownBank(section); frag != "" {
		return NormalizeBankName(frag)
	}
	return ""
}

// ExtractAccountNumber pulls a (usually masked) account identifier.
func ExtractAccountNumber(section string) string {
	if m := firstMatch(section, accountNumberLabelPatterns); m != "" {
		return strings.ToUpper(strings.ReplaceAll(m, " ", ""))
	}
	if m := maskedNumberPattern.FindString(section); m != "" {
		return strings.ToUpper(m)
	}
	return ""
}

// Loan sub-type keyword groups, checked in order. Mutually exclusive by
// first-hit-wins.
var loanSubTypes = []struct {
	subType  models.AccountSubType
	keywords []string
}{
	{models.SubTypeHome, []string{"home loan", "housing loan", "mortgage"}},
	{models.SubTypeAuto, []string{"auto loan", "car loan", "vehicle loan", "two wheeler"}},
	{models.SubTypeBusiness, []string{"business loan", "commercial loan", "msme"}},
	{models.SubTypeEducation, []string{"education loan", "student loan", "study loan"}},
	{models.SubTypeGold, []string{"gold loan", "loan against gold"}},
	{models.SubTypePersonal, []string{"personal loan", "consumer loan", "consumer durable"}},
}

// DetermineAccountType classifies a section by ordered substring checks:
// credit card beats loan beats deposit accounts beats investment.
func DetermineAccountType(section string) (models.AccountType, models.AccountSubType) {
	lower := strings.ToLower(section)

	if strings.Contains(lower, "credit card") || strings.Contains(lower, "creditcard") {
		if strings.Contains(lower, "secured card") || strings.Contains(lower, "secured credit card") {
			return models.TypeCreditCard, models.SubTypeSecured
		}
		return models.TypeCreditCard, models.SubTypeUnsecured
	}

	for _, st := range loanSubTypes {
		for _, kw := range st.keywords {
			if strings.Contains(lower, kw) {
				return models.TypeLoan, st.subType
			}
		}
	}
	if strings.Contains(lower, "loan") || strings.Contains(lower, "emi") {
		// Bare "loan"/"EMI" with no sub-type hint defaults to personal.
		return models.TypeLoan, models.SubTypePersonal
	}

	if strings.Contains(lower, "savings") {
		return models.TypeSavings, ""
	}
	if strings.Contains(lower, "current account") || strings.Contains(lower, "current a/c") {
		return models.TypeCurrent, ""
	}
	if strings.Contains(lower, "overdraft") {
		return models.TypeOverdraft, ""
	}
	if strings.Contains(lower, "fixed deposit") || strings.Contains(lower, "mutual fund") ||
		strings.Contains(lower, "recurring deposit") {
		return models.TypeInvestment, ""
	}

	return models.TypeUnknown, ""
}

// Status synonym groups, checked in order. "written off" must come before
// "settled" because reports print "written off and settled".
var statusSynonyms = []struct {
	status   models.AccountStatus
	keywords []string
}{
	{models.StatusWrittenOff, []string{"written off", "written-off", "write off", "wilful default"}},
	{models.StatusSettled, []string{"settled", "post settlement"}},
	{models.StatusClosed, []string{"closed", "account closed", "paid and closed"}},
	{models.StatusDormant, []string{"dormant", "inactive", "in-active"}},
	{models.StatusActive, []string{"active", "status: open", "status open"}},
}

// ExtractAccountStatus returns the reported status, or "" when no synonym
// matches so that callers can apply their own default.
func ExtractAccountStatus(section string) models.AccountStatus {
	lower := strings.ToLower(section)
	for _, group := range statusSynonyms {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.status
			}
		}
	}
	return ""
}

// CalculateConfidence scores extraction completeness for one account.
// Base 0.1, plus fixed increments per populated field class, capped at 1.0.
func CalculateConfidence(a *models.CreditAccount) float64 {
	score := 0.1
	if a.BankName != "" {
		score += 0.2
	}
	if a.AccountNumber != "" {
		score += 0.2
	}
	if a.AccountType != "" && a.AccountType != models.TypeUnknown {
		score += 0.15
	}
	if a.AccountStatus != "" && a.AccountStatus != models.StatusUnknown {
		score += 0.1
	}
	if a.CreditLimit != nil || a.CurrentBalance != nil || a.OutstandingAmount != nil || a.EMIAmount != nil {
		score += 0.15
	}
	if a.AccountOpenDate != "" {
		score += 0.1
	}
	if len(a.ExtractedFields) >= 5 {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
