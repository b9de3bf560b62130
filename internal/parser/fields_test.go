package parser

import (
	"testing"

	"github.com/insightdelivered/credit-report-extractor/internal/models"
)

func TestExtractBankName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"labelled lender", "Lender: Axis Bank\nAccount Number: XXXX9999", "Axis Bank"},
		{"member name label", "Member Name: HDFC BANK LTD", "HDFC Bank"},
		{"fragment fallback", "statement issued by ICICI for your card", "ICICI Bank"},
		{"nothing", "no lender mentioned anywhere", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractBankName(tt.input)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExtractAccountNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"labelled", "Account Number: XXXXXXXX1234", "XXXXXXXX1234"},
		{"a/c label", "A/C No: XXXX5678", "XXXX5678"},
		{"masked only", "card ending XXXX9876 active", "XXXX9876"},
		{"star mask", "number ****4321 on file", "****4321"},
		{"none", "no identifier here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractAccountNumber(tt.input)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDetermineAccountType(t *testing.T) {
	tests := []struct {
		input       string
		wantType    models.AccountType
		wantSubType models.AccountSubType
	}{
		{"HDFC Bank Credit Card XXXX1234", models.TypeCreditCard, models.SubTypeUnsecured},
		{"secured credit card against FD", models.TypeCreditCard, models.SubTypeSecured},
		{"Home Loan sanctioned 25,00,000", models.TypeLoan, models.SubTypeHome},
		{"Two Wheeler Loan EMI 3,500", models.TypeLoan, models.SubTypeAuto},
		{"Education Loan for overseas study", models.TypeLoan, models.SubTypeEducation},
		{"Gold Loan against pledge", models.TypeLoan, models.SubTypeGold},
		{"loan with EMI of 5,000", models.TypeLoan, models.SubTypePersonal},
		{"savings account balance", models.TypeSavings, ""},
		{"overdraft facility", models.TypeOverdraft, ""},
		{"fixed deposit maturity", models.TypeInvestment, ""},
		{"nothing recognizable", models.TypeUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			gotType, gotSub := DetermineAccountType(tt.input)
			if gotType != tt.wantType || gotSub != tt.wantSubType {
				t.Errorf("got (%s, %s), want (%s, %s)", gotType, gotSub, tt.wantType, tt.wantSubType)
			}
		})
	}
}

func TestExtractAccountStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected models.AccountStatus
	}{
		{"Status: Active", models.StatusActive},
		{"account closed on request", models.StatusClosed},
		{"Written Off and Settled", models.StatusWrittenOff}, // written-off outranks settled
		{"settled post negotiation", models.StatusSettled},
		{"account is dormant", models.StatusDormant},
		{"marked INACTIVE by lender", models.StatusDormant},
		{"no status keywords", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ExtractAccountStatus(tt.input)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCalculateConfidenceBounds(t *testing.T) {
	empty := &models.CreditAccount{}
	if got := CalculateConfidence(empty); got != 0.1 {
		t.Errorf("empty account: got %f, want 0.1", got)
	}

	limit := 50000.0
	full := &models.CreditAccount{
		BankName:        "HDFC Bank",
		AccountNumber:   "XXXX1234",
		AccountType:     models.TypeCreditCard,
		AccountStatus:   models.StatusActive,
		CreditLimit:     &limit,
		AccountOpenDate: "2022-05-05",
		ExtractedFields: []string{"bankName", "accountNumber", "accountType", "accountStatus", "creditLimit", "accountOpenDate"},
	}
	got := CalculateConfidence(full)
	if got != 1.0 {
		t.Errorf("fully populated account: got %f, want 1.0", got)
	}
	if got < 0 || got > 1 {
		t.Errorf("confidence out of [0,1]: %f", got)
	}
}
