package parser

import (
	"testing"

	"github.com/insightdelivered/credit-report-extractor/internal/models"
)

func TestExperianParserCanParse(t *testing.T) {
	p := &ExperianParser{}

	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"brand", "Experian Credit Information Report", true},
		{"domain", "visit experian.in for details", true},
		{"ecir", "ECIR reference enclosed", true},
		{"cibil report", "TransUnion CIBIL Consumer CIR", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.CanParse(tt.text); got != tt.expected {
				t.Errorf("CanParse: got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestExperianParserTableFirst(t *testing.T) {
	p := &ExperianParser{}
	text := `Experian Credit Information Report
Report Number: EXPR-112233
Report Date: 20/02/2024
Experian Score: 765
Credit Account Summary
Acct 1 KOTAK MAHINDRA CREDIT CARD XXXX4455 Individual 15-02-2024 ACTIVE 20210315 75,000 12,500 0
Acct 2 BAJAJ FINANCE CONSUMER LOAN XXXX8899 Individual 15-02-2024 ACTIVE 20230701 40,000 30,000 -
Credit Account Details
`

	result, err := p.ParseReport(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Summary.ReportNumber != "EXPR-112233" {
		t.Errorf("report number: got %q", result.Summary.ReportNumber)
	}
	if result.Summary.ReportDate != "2024-02-20" {
		t.Errorf("report date: got %q", result.Summary.ReportDate)
	}
	if result.Summary.CreditScore != 765 || result.Summary.ScoreProvider != "Experian" {
		t.Errorf("score: got %d (%s)", result.Summary.CreditScore, result.Summary.ScoreProvider)
	}

	if len(result.Accounts) != 2 {
		t.Fatalf("expected 2 accounts from table, got %d", len(result.Accounts))
	}
	if result.Accounts[0].BankName != "Kotak Mahindra Bank" {
		t.Errorf("first bank: got %q", result.Accounts[0].BankName)
	}
	if result.Accounts[1].AccountType != models.TypeLoan || result.Accounts[1].AccountSubType != models.SubTypePersonal {
		t.Errorf("consumer loan should classify as personal loan, got (%s, %s)",
			result.Accounts[1].AccountType, result.Accounts[1].AccountSubType)
	}
}

func TestExperianParserSectionFallback(t *testing.T) {
	p := &ExperianParser{}
	// No table anchors: the section splitter has to carry the report.
	text := `Experian Credit Information Report
Report Date: 20/02/2024

Credit Account Details
Lender: HDFC Bank
Account Number: XXXX1234
Credit Card
Credit Limit: Rs. 50,000
Current Balance: Rs. 20,000
Status: Active
Credit Account Details
Lender: Axis Bank
Account Number: XXXX5678
Personal Loan
Outstanding: Rs. 1,50,000
EMI: Rs. 7,500
Status: Active
Credit Account Details
Lender: RBL Bank
Account Number: XXXX9012
Credit Card
Credit Limit: Rs. 30,000
Current Balance: Rs. 5,000
Status: Closed
`

	result, err := p.ParseReport(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Accounts) != 3 {
		t.Fatalf("expected 3 accounts via sections, got %d", len(result.Accounts))
	}
	if result.Summary.ActiveAccounts != 2 || result.Summary.ClosedAccounts != 1 {
		t.Errorf("counts: active %d closed %d", result.Summary.ActiveAccounts, result.Summary.ClosedAccounts)
	}
}
