package parser

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// knownBankFragments are substrings that identify lenders in report text.
// Order matters: the first fragment found wins, so more specific names come
// before their prefixes (e.g. "sbi card" before "sbi").
var knownBankFragments = []string{
	"hdfc", "icici", "axis", "kotak", "yes bank", "indusind",
	"idfc", "rbl", "federal bank", "south indian bank", "karur vysya",
	"bandhan", "au small finance",
	"sbi card", "state bank of india", "sbi",
	"punjab national", "pnb", "bank of baroda", "canara", "union bank",
	"bank of india", "central bank", "indian bank", "uco bank",
	"bajaj finserv", "bajaj finance", "tata capital", "aditya birla",
	"fullerton", "home credit", "citibank", "citi", "hsbc",
	"standard chartered", "amex", "american express",
}

// bankMatcher scans a section for all known fragments in one pass.
// Built once at package init; read-only afterwards.
var bankMatcher = ahocorasick.NewStringMatcher(knownBankFragments)

// bankNormalizations maps lender abbreviations and fragments to display
// names. Checked in order, first hit wins.
var bankNormalizations = []struct {
	fragment string
	fullName string
}{
	{"sbi card", "SBI Card"},
	{"state bank of india", "State Bank of India"},
	{"sbi", "State Bank of India"},
	{"hdfc", "HDFC Bank"},
	{"icici", "ICICI Bank"},
	{"axis", "Axis Bank"},
	{"kotak", "Kotak Mahindra Bank"},
	{"yes bank", "Yes Bank"},
	{"indusind", "IndusInd Bank"},
	{"idfc", "IDFC First Bank"},
	{"rbl", "RBL Bank"},
	{"federal bank", "Federal Bank"},
	{"south indian bank", "South Indian Bank"},
	{"karur vysya", "Karur Vysya Bank"},
	{"bandhan", "Bandhan Bank"},
	{"au small finance", "AU Small Finance Bank"},
	{"punjab national", "Punjab National Bank"},
	{"pnb", "Punjab National Bank"},
	{"bank of baroda", "Bank of Baroda"},
	{"canara", "Canara Bank"},
	{"union bank", "Union Bank of India"},
	{"bank of india", "Bank of India"},
	{"central bank", "Central Bank of India"},
	{"indian bank", "Indian Bank"},
	{"uco bank", "UCO Bank"},
	{"bajaj finserv", "Bajaj Finserv"},
	{"bajaj finance", "Bajaj Finance"},
	{"tata capital", "Tata Capital"},
	{"aditya birla", "Aditya Birla Capital"},
	{"fullerton", "Fullerton India"},
	{"home credit", "Home Credit India"},
	{"citibank", "Citibank"},
	{"citi", "Citibank"},
	{"hsbc", "HSBC"},
	{"standard chartered", "Standard Chartered"},
	{"american express", "American Express"},
	{"amex", "American Express"},
}

// findKnownBank returns the first known lender fragment present in the text,
// or "" when none match. The Aho-Corasick pass finds every fragment at once;
// priority is decided by fragment order, not match position.
// MatchThreadSafe, not Match: plain Match mutates shared matcher state and
// the registry is shared across concurrent ParseReport calls.
func findKnownBank(text string) string {
	hits := bankMatcher.MatchThreadSafe([]byte(strings.ToLower(text)))
	if len(hits) == 0 {
		return ""
	}
	seen := make(map[int]bool, len(hits))
	for _, h := range hits {
		seen[h] = true
	}
	for i, frag := range knownBankFragments {
		if seen[i] {
			return frag
		}
	}
	return ""
}

// NormalizeBankName maps a raw lender string to its display name.
// "hdfc", "HDFC BANK LTD" and "HDFC Bank" all normalize to "HDFC Bank".
// Unrecognized names are returned unchanged (trimmed).
func NormalizeBankName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	lower := strings.ToLower(trimmed)

	for _, n := range bankNormalizations {
		if strings.Contains(lower, n.fragment) {
			return n.fullName
		}
	}

	// OCR noise defeats substring matching ("HDF C BANK"); try a fuzzy rank
	// against the display names before giving up.
	best := ""
	bestRank := -1
	for _, n := range bankNormalizations {
		rank := fuzzy.RankMatchNormalizedFold(n.fullName, trimmed)
		if rank >= 0 && (bestRank == -1 || rank < bestRank) {
			bestRank = rank
			best = n.fullName
		}
	}
	if best != "" && bestRank <= 3 {
		return best
	}

	return trimmed
}
