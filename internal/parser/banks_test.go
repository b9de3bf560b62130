package parser

import (
	"testing"
)

func TestNormalizeBankName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hdfc", "HDFC Bank"},
		{"HDFC Bank", "HDFC Bank"},
		{"HDFC BANK LTD", "HDFC Bank"},
		{"sbi", "State Bank of India"},
		{"STATE BANK OF INDIA", "State Bank of India"},
		{"SBI Card", "SBI Card"},
		{"icici bank limited", "ICICI Bank"},
		{"Bajaj Finserv Ltd", "Bajaj Finserv"},
		{"Some Unknown Lender", "Some Unknown Lender"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeBankName(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeBankName(%q): got %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// Normalization must converge: abbreviation and display name map to the
// same canonical string.
func TestNormalizeBankNameRoundTrip(t *testing.T) {
	if NormalizeBankName("hdfc") != NormalizeBankName("HDFC Bank") {
		t.Error("hdfc and HDFC Bank should normalize identically")
	}
	if NormalizeBankName("hdfc") != "HDFC Bank" {
		t.Errorf("got %q, want HDFC Bank", NormalizeBankName("hdfc"))
	}
}

func TestFindKnownBank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain fragment", "statement from HDFC Bank for account", "hdfc"},
		{"specific beats prefix", "SBI Card services statement", "sbi card"},
		{"no lender", "nothing recognizable here", ""},
		{"mid-word context", "issued by ICICI towards your loan", "icici"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findKnownBank(tt.input)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
