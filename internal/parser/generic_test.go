package parser

import (
	"testing"

	"github.com/insightdelivered/credit-report-extractor/internal/models"
)

func TestGenericExtractorSeededByBankName(t *testing.T) {
	g := &GenericExtractor{}
	accounts := g.Extract("HDFC Bank A/C No: XXXX5678 Balance: Rs. 10,000")

	if len(accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(accounts))
	}
	a := accounts[0]
	if a.BankName != "HDFC Bank" {
		t.Errorf("bank: got %q", a.BankName)
	}
	if a.AccountNumber != "XXXX5678" {
		t.Errorf("account number: got %q", a.AccountNumber)
	}
	if a.CurrentBalance == nil || *a.CurrentBalance != 10000 {
		t.Errorf("balance: got %v, want 10000", a.CurrentBalance)
	}
	if a.AccountStatus != models.StatusActive {
		t.Errorf("status should default to active, got %q", a.AccountStatus)
	}
	if a.ConfidenceScore < 0.3 {
		t.Errorf("confidence: got %f, want >= 0.3", a.ConfidenceScore)
	}
}

func TestGenericExtractorDeduplicatesByAccountNumber(t *testing.T) {
	g := &GenericExtractor{}
	text := `HDFC Bank A/C No: XXXX5678 Balance: Rs. 10,000
some filler line
HDFC Bank A/C No: XXXX5678 Balance: Rs. 10,000`

	accounts := g.Extract(text)
	if len(accounts) != 1 {
		t.Errorf("expected deduplication to 1 account, got %d", len(accounts))
	}
}

func TestGenericExtractorSkipsNonActive(t *testing.T) {
	g := &GenericExtractor{}
	accounts := g.Extract("ICICI Bank A/C No: XXXX1122 Balance: Rs. 5,000 Status: Closed")
	if len(accounts) != 0 {
		t.Errorf("closed account should be dropped, got %d", len(accounts))
	}
}

func TestGenericExtractorNeverFails(t *testing.T) {
	g := &GenericExtractor{}
	for _, text := range []string{"", "\n\n\n", "no accounts at all", "XXXX"} {
		if accounts := g.Extract(text); accounts == nil && len(accounts) != 0 {
			t.Errorf("unexpected result for %q", text)
		}
	}
}
