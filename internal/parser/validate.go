package parser

import (
	"fmt"

	"github.com/insightdelivered/credit-report-extractor/internal/models"
)

// minConfidence is the floor below which an extracted account is considered
// too weak to surface for review.
const minConfidence = 0.3

// IsValidAccount decides whether an extracted account is complete enough to
// emit: a lender name, a plausible identifier, at least one financial
// figure, and a confidence at or above the floor. Failures are dropped
// silently by callers; this is a lossy filter, not an error condition.
func IsValidAccount(a *models.CreditAccount) bool {
	if a.BankName == "" {
		return false
	}
	if len(a.AccountNumber) < 4 {
		return false
	}
	hasFigure := a.CreditLimit != nil || a.CurrentBalance != nil ||
		a.OutstandingAmount != nil || a.EMIAmount != nil
	if !hasFigure {
		return false
	}
	return a.ConfidenceScore >= minConfidence
}

// filterValid applies the gate and assigns deterministic per-call account
// IDs (acc_1, acc_2, ...) to the survivors.
func filterValid(accounts []models.CreditAccount) []models.CreditAccount {
	var kept []models.CreditAccount
	for _, a := range accounts {
		if !IsValidAccount(&a) {
			continue
		}
		a.AccountID = fmt.Sprintf("acc_%d", len(kept)+1)
		kept = append(kept, a)
	}
	return kept
}

// assembleResult packages the final ParseResult. Every summary count and
// aggregate is recomputed from the filtered account list so the totals
// invariants hold no matter what the extraction path did.
func assembleResult(bureau models.Bureau, summary models.ReportSummary, accounts []models.CreditAccount) *models.ParseResult {
	summary.TotalAccounts = len(accounts)
	summary.ActiveAccounts = 0
	summary.ClosedAccounts = 0
	summary.CreditCards = 0
	summary.Loans = 0
	summary.TotalCreditLimit = 0
	summary.TotalOutstanding = 0
	summary.TotalAvailableCredit = 0

	for _, a := range accounts {
		switch a.AccountStatus {
		case models.StatusActive:
			summary.ActiveAccounts++
		case models.StatusClosed:
			summary.ClosedAccounts++
		}
		switch a.AccountType {
		case models.TypeCreditCard:
			summary.CreditCards++
		case models.TypeLoan:
			summary.Loans++
		}
		if a.CreditLimit != nil {
			summary.TotalCreditLimit += *a.CreditLimit
		}
		if a.OutstandingAmount != nil {
			summary.TotalOutstanding += *a.OutstandingAmount
		} else if a.CurrentBalance != nil {
			summary.TotalOutstanding += *a.CurrentBalance
		}
		if a.AvailableCredit != nil {
			summary.TotalAvailableCredit += *a.AvailableCredit
		}
	}

	if accounts == nil {
		accounts = []models.CreditAccount{}
	}
	return &models.ParseResult{
		Bureau:   bureau,
		Summary:  summary,
		Accounts: accounts,
	}
}
