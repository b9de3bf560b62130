package parser

import (
	"strings"
	"testing"

	"github.com/insightdelivered/credit-report-extractor/internal/models"
)

const experianTableText = `Experian Credit Information Report
Credit Account Summary
Acct 1 HDFC BANK CREDIT CARD XXXX1234 Individual 01-01-2023 ACTIVE 20220505 50,000 25,000 0
Credit Account Details
`

func TestParseExperianTableActiveRow(t *testing.T) {
	accounts, dropped := ParseExperianTable(experianTableText)
	if dropped != 0 {
		t.Errorf("expected no dropped rows, got %d", dropped)
	}
	if len(accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(accounts))
	}

	a := accounts[0]
	if a.BankName != "HDFC Bank" {
		t.Errorf("bank: got %q, want HDFC Bank", a.BankName)
	}
	if a.AccountType != models.TypeCreditCard {
		t.Errorf("type: got %q, want credit_card", a.AccountType)
	}
	if a.AccountNumber != "XXXX1234" {
		t.Errorf("account number: got %q", a.AccountNumber)
	}
	if a.AccountStatus != models.StatusActive {
		t.Errorf("status: got %q, want active", a.AccountStatus)
	}
	if a.AccountOpenDate != "2022-05-05" {
		t.Errorf("open date: got %q, want 2022-05-05", a.AccountOpenDate)
	}
	if a.CreditLimit == nil || *a.CreditLimit != 50000 {
		t.Errorf("credit limit: got %v, want 50000", a.CreditLimit)
	}
	if a.CurrentBalance == nil || *a.CurrentBalance != 25000 {
		t.Errorf("current balance: got %v, want 25000", a.CurrentBalance)
	}
	if a.OutstandingAmount == nil || *a.OutstandingAmount != 0 {
		t.Errorf("outstanding: got %v, want 0", a.OutstandingAmount)
	}
	if a.ConfidenceScore != 1.0 {
		t.Errorf("confidence: got %f, want 1.0", a.ConfidenceScore)
	}
}

func TestParseExperianTableDropsNonActive(t *testing.T) {
	text := strings.Replace(experianTableText, "ACTIVE", "CLOSED", 1)
	accounts, dropped := ParseExperianTable(text)
	if len(accounts) != 0 {
		t.Fatalf("expected 0 accounts for closed row, got %d", len(accounts))
	}
	if dropped != 1 {
		t.Errorf("expected 1 dropped row, got %d", dropped)
	}
}

func TestParseExperianTableMissingAnchor(t *testing.T) {
	if accounts, _ := ParseExperianTable("no table here at all"); accounts != nil {
		t.Errorf("expected nil without anchors, got %v", accounts)
	}
	// Start anchor without end anchor is equally unusable.
	if accounts, _ := ParseExperianTable("Credit Account Summary\nAcct 1 HDFC BANK CREDIT CARD XXXX1 ACTIVE"); accounts != nil {
		t.Errorf("expected nil without end anchor, got %v", accounts)
	}
}

func TestParseExperianTableMultipleEntries(t *testing.T) {
	text := `Credit Account Summary
Acct 1 HDFC BANK CREDIT CARD XXXX1234 Individual 01-01-2023 ACTIVE 20220505 50,000 25,000 0
Acct 2 STATE BANK OF INDIA TWO WHEELER LOAN XXXX9922 Individual 01-01-2023 ACTIVE 20210110 1,20,000 80,000 -
Acct 3 ICICI BANK PERSONAL LOAN XXXX5511 Individual 01-01-2023 SETTLED 20200101 2,00,000 - -
Credit Account Details
`
	accounts, dropped := ParseExperianTable(text)
	if len(accounts) != 2 {
		t.Fatalf("expected 2 active accounts, got %d", len(accounts))
	}
	if dropped != 1 {
		t.Errorf("expected 1 dropped (settled) row, got %d", dropped)
	}

	second := accounts[1]
	if second.BankName != "State Bank of India" {
		t.Errorf("bank: got %q", second.BankName)
	}
	if second.AccountType != models.TypeLoan || second.AccountSubType != models.SubTypeAuto {
		t.Errorf("type: got (%s, %s), want (loan, auto)", second.AccountType, second.AccountSubType)
	}
	if second.CreditLimit == nil || *second.CreditLimit != 120000 {
		t.Errorf("sanctioned amount: got %v, want 120000", second.CreditLimit)
	}
	// "-" means the overdue column was empty, not zero.
	if second.OutstandingAmount != nil {
		t.Errorf("expected nil outstanding for \"-\", got %v", *second.OutstandingAmount)
	}
}

func TestWalkTokensLenderGreediness(t *testing.T) {
	// Multi-word lender runs until the first type-starter keyword.
	row := walkTokens(strings.Fields("AU SMALL FINANCE BANK PERSONAL LOAN XXXX7777 ACTIVE 20230101 10,000"))
	if got := strings.Join(row.lenderTokens, " "); got != "AU SMALL FINANCE BANK" {
		t.Errorf("lender: got %q", got)
	}
	if got := strings.Join(row.typeTokens, " "); got != "PERSONAL LOAN" {
		t.Errorf("type: got %q", got)
	}
	if row.accountNo != "XXXX7777" {
		t.Errorf("account number: got %q", row.accountNo)
	}
	if row.openDate != "20230101" {
		t.Errorf("open date: got %q", row.openDate)
	}
	if len(row.amounts) != 1 || row.amounts[0] != "10,000" {
		t.Errorf("amounts: got %v", row.amounts)
	}
}

func TestWalkTokensWrittenOffStatus(t *testing.T) {
	row := walkTokens(strings.Fields("RBL BANK CREDIT CARD XXXX3344 Individual WRITTEN OFF 20190101 30,000"))
	if row.status != models.StatusWrittenOff {
		t.Errorf("status: got %q, want written_off", row.status)
	}
	if row.statusRaw != "WRITTEN OFF" {
		t.Errorf("statusRaw: got %q", row.statusRaw)
	}
	if row.openDate != "20190101" {
		t.Errorf("open date: got %q, want 20190101", row.openDate)
	}
}
