package parser

import (
	"regexp"
	"strconv"

	"github.com/insightdelivered/credit-report-extractor/internal/models"
)

// Labelled money/date patterns, each an ordered list of alternatives.
// Bureaus drift in vocabulary, so every field carries 2-3 spellings.
var (
	creditLimitPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)credit\s*limit\s*[:\-]?\s*(?:rs\.?|₹|inr)?\s*([\d,]+(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)sanctioned\s*(?:amount|limit)\s*[:\-]?\s*(?:rs\.?|₹|inr)?\s*([\d,]+(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)high\s*credit\s*[:\-]?\s*(?:rs\.?|₹|inr)?\s*([\d,]+(?:\.\d+)?)`),
	}
	currentBalancePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)current\s*balance\s*[:\-]?\s*(?:rs\.?|₹|inr)?\s*([\d,]+(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)\bbalance\s*[:\-]\s*(?:rs\.?|₹|inr)?\s*([\d,]+(?:\.\d+)?)`),
	}
	outstandingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:amount\s*)?overdue\s*[:\-]?\s*(?:rs\.?|₹|inr)?\s*([\d,]+(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)outstanding\s*(?:amount|balance)?\s*[:\-]?\s*(?:rs\.?|₹|inr)?\s*([\d,]+(?:\.\d+)?)`),
	}
	availableCreditPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)available\s*credit\s*[:\-]?\s*(?:rs\.?|₹|inr)?\s*([\d,]+(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)cash\s*limit\s*[:\-]?\s*(?:rs\.?|₹|inr)?\s*([\d,]+(?:\.\d+)?)`),
	}
	minimumDuePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)min(?:imum)?\s*(?:amount\s*)?due\s*[:\-]?\s*(?:rs\.?|₹|inr)?\s*([\d,]+(?:\.\d+)?)`),
	}
	emiPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bemi\s*(?:amount)?\s*[:\-]?\s*(?:rs\.?|₹|inr)?\s*([\d,]+(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)installment\s*amount\s*[:\-]?\s*(?:rs\.?|₹|inr)?\s*([\d,]+(?:\.\d+)?)`),
	}
	interestRatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:rate\s*of\s*interest|interest\s*rate|roi)\s*[:\-]?\s*([\d.]+)\s*%?`),
	}
	annualFeePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)annual\s*fee\s*[:\-]?\s*(?:rs\.?|₹|inr)?\s*([\d,]+(?:\.\d+)?)`),
	}
	lateChargePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)late\s*payment\s*(?:charges?|fee)\s*[:\-]?\s*(?:rs\.?|₹|inr)?\s*([\d,]+(?:\.\d+)?)`),
	}
	tenurePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:repayment\s*)?tenure\s*[:\-]?\s*(\d{1,3})\s*(?:months?|m\b)`),
	}

	openDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:date\s*)?open(?:ed)?\s*(?:date)?\s*[:\-]\s*([\d]{1,4}[-/][\d]{1,2}[-/][\d]{1,4})`),
		regexp.MustCompile(`(?i)account\s*open(?:ing)?\s*date\s*[:\-]?\s*([\d]{1,4}[-/][\d]{1,2}[-/][\d]{1,4})`),
	}
	lastPaymentPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:date\s*of\s*)?last\s*payment\s*(?:date)?\s*[:\-]?\s*([\d]{1,4}[-/][\d]{1,2}[-/][\d]{1,4})`),
	}
	nextDuePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:next\s*|payment\s*)due\s*date\s*[:\-]?\s*([\d]{1,4}[-/][\d]{1,2}[-/][\d]{1,4})`),
	}
	lastReportedPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:date\s*|last\s*)reported\s*(?:date|on)?\s*[:\-]?\s*([\d]{1,4}[-/][\d]{1,2}[-/][\d]{1,4})`),
	}

	delayedPaymentsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:delayed|late)\s*payments?\s*[:\-]?\s*(\d{1,3})`),
	}
	onTimePaymentsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)on[\s-]*time\s*payments?\s*[:\-]?\s*(\d{1,3})`),
	}
	monthsReportedPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)months?\s*(?:reported|reviewed)\s*[:\-]?\s*(\d{1,3})`),
	}
	highestDelayPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:highest|max(?:imum)?)\s*(?:delay|dpd)\s*[:\-]?\s*(\d{1,3})`),
	}

	collateralPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)collateral\s*(?:type)?\s*[:\-]\s*([A-Za-z][A-Za-z /]{2,40})`),
	}
	guarantorPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)guarantor\s*[:\-]\s*([A-Za-z][A-Za-z .]{2,40})`),
	}
)

// extractAccountFromSection runs the shared field extractors over one
// account-sized chunk of text. The result is unvalidated; callers apply
// the validation gate. defaultStatus covers sections with no status
// keyword at all.
func extractAccountFromSection(section string, defaultStatus models.AccountStatus) models.CreditAccount {
	acct := models.CreditAccount{
		BankName:      ExtractBankName(section),
		AccountNumber: ExtractAccountNumber(section),
		RawData:       truncateRaw(section),
	}
	acct.AccountType, acct.AccountSubType = DetermineAccountType(section)

	if status := ExtractAccountStatus(section); status != "" {
		acct.AccountStatus = status
	} else {
		acct.AccountStatus = defaultStatus
	}

	acct.CreditLimit = firstAmount(section, creditLimitPatterns)
	acct.CurrentBalance = firstAmount(section, currentBalancePatterns)
	acct.OutstandingAmount = firstAmount(section, outstandingPatterns)
	acct.AvailableCredit = firstAmount(section, availableCreditPatterns)
	acct.MinimumAmountDue = firstAmount(section, minimumDuePatterns)
	acct.EMIAmount = firstAmount(section, emiPatterns)
	acct.InterestRate = firstAmount(section, interestRatePatterns)
	acct.AnnualFee = firstAmount(section, annualFeePatterns)
	acct.LatePaymentCharges = firstAmount(section, lateChargePatterns)

	if raw := firstMatch(section, tenurePatterns); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			acct.TenureMonths = &n
		}
	}

	acct.AccountOpenDate = firstDate(section, openDatePatterns)
	acct.LastPaymentDate = firstDate(section, lastPaymentPatterns)
	acct.NextDueDate = firstDate(section, nextDuePatterns)
	acct.LastReportedDate = firstDate(section, lastReportedPatterns)

	acct.Collateral = firstMatch(section, collateralPatterns)
	acct.Guarantor = firstMatch(section, guarantorPatterns)

	if ph := extractPaymentHistory(section); ph != nil {
		acct.PaymentHistory = ph
	}

	acct.ExtractedFields = collectFieldNames(&acct)
	acct.ConfidenceScore = CalculateConfidence(&acct)
	return acct
}

// extractPaymentHistory pulls the DPD summary counters when the section
// prints them. Returns nil when none are present.
func extractPaymentHistory(section string) *models.PaymentHistory {
	ph := &models.PaymentHistory{}
	found := false

	fields := []struct {
		patterns []*regexp.Regexp
		dst      *int
	}{
		{monthsReportedPatterns, &ph.TotalMonthsReported},
		{delayedPaymentsPatterns, &ph.DelayedPayments},
		{onTimePaymentsPatterns, &ph.OnTimePayments},
		{highestDelayPatterns, &ph.HighestDelayDays},
	}
	for _, f := range fields {
		if raw := firstMatch(section, f.patterns); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil {
				*f.dst = n
				found = true
			}
		}
	}

	if !found {
		return nil
	}
	return ph
}

// collectFieldNames lists which account fields extraction populated; the
// count feeds the confidence score and the list ships in the result for
// review tooling.
func collectFieldNames(a *models.CreditAccount) []string {
	var fields []string
	add := func(name string, ok bool) {
		if ok {
			fields = append(fields, name)
		}
	}
	add("bankName", a.BankName != "")
	add("accountNumber", a.AccountNumber != "")
	add("accountType", a.AccountType != "" && a.AccountType != models.TypeUnknown)
	add("accountStatus", a.AccountStatus != "" && a.AccountStatus != models.StatusUnknown)
	add("creditLimit", a.CreditLimit != nil)
	add("currentBalance", a.CurrentBalance != nil)
	add("outstandingAmount", a.OutstandingAmount != nil)
	add("availableCredit", a.AvailableCredit != nil)
	add("minimumAmountDue", a.MinimumAmountDue != nil)
	add("emiAmount", a.EMIAmount != nil)
	add("interestRate", a.InterestRate != nil)
	add("annualFee", a.AnnualFee != nil)
	add("latePaymentCharges", a.LatePaymentCharges != nil)
	add("tenureMonths", a.TenureMonths != nil)
	add("accountOpenDate", a.AccountOpenDate != "")
	add("lastPaymentDate", a.LastPaymentDate != "")
	add("nextDueDate", a.NextDueDate != "")
	add("lastReportedDate", a.LastReportedDate != "")
	add("paymentHistory", a.PaymentHistory != nil)
	add("collateral", a.Collateral != "")
	add("guarantor", a.Guarantor != "")
	return fields
}
