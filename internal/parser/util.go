package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Common date patterns found in Indian bureau reports.
var (
	// DD/MM/YYYY or DD-MM-YYYY (also tolerates 2-digit years)
	datePatternNumeric = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})\b`)
	// DD Mon YYYY (e.g., 15 Jan 2024)
	datePatternText = regexp.MustCompile(`(?i)\b(\d{1,2})\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+(\d{4})\b`)
	// YYYY-MM-DD as printed by some Experian exports
	datePatternISO = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	// Compact YYYYMMDD used in Experian summary tables
	datePatternCompact = regexp.MustCompile(`^\d{8}$`)
)

var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// parseAmount converts strings like "1,00,000", "Rs. 50,000.00" or "₹25,000"
// to a float64. Indian lakh/crore comma grouping is handled by stripping all
// commas. Returns an error for anything that is not a number.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	for _, sym := range []string{"₹", "Rs.", "Rs", "INR", "$", "£", ","} {
		s = strings.ReplaceAll(s, sym, "")
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.TrimSpace(s)

	if s == "" || s == "-" {
		return 0, fmt.Errorf("no amount")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// toISODate normalizes a date string in any of the recognized layouts to
// YYYY-MM-DD. Returns "" when the input is not a plausible calendar date.
func toISODate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	if m := datePatternISO.FindStringSubmatch(s); m != nil && m[0] == s {
		if validDate(m[1], m[2], m[3]) {
			return s
		}
		return ""
	}

	if datePatternCompact.MatchString(s) {
		y, mo, d := s[0:4], s[4:6], s[6:8]
		if validDate(y, mo, d) {
			return y + "-" + mo + "-" + d
		}
		return ""
	}

	if m := datePatternNumeric.FindStringSubmatch(s); m != nil {
		d, mo, y := m[1], m[2], m[3]
		if len(y) == 2 {
			y = "20" + y
		}
		d = leftPad(d)
		mo = leftPad(mo)
		if validDate(y, mo, d) {
			return y + "-" + mo + "-" + d
		}
		return ""
	}

	if m := datePatternText.FindStringSubmatch(s); m != nil {
		mo := monthNumbers[strings.ToLower(m[2])]
		d := leftPad(m[1])
		iso := fmt.Sprintf("%s-%02d-%s", m[3], mo, d)
		if validDate(m[3], fmt.Sprintf("%02d", mo), d) {
			return iso
		}
		return ""
	}

	return ""
}

func leftPad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func validDate(y, m, d string) bool {
	_, err := time.Parse("2006-01-02", y+"-"+m+"-"+d)
	return err == nil
}

// firstMatch tries regex alternatives in order and returns the first capture
// group of the first pattern that matches. Every money and date field in the
// bureau parsers goes through this.
func firstMatch(text string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); len(m) > 1 {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// firstAmount runs firstMatch and parses the result as a non-negative amount.
// Returns nil when nothing matched or the capture was not a number.
func firstAmount(text string, patterns []*regexp.Regexp) *float64 {
	raw := firstMatch(text, patterns)
	if raw == "" {
		return nil
	}
	v, err := parseAmount(raw)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// firstDate runs firstMatch and normalizes the result to ISO-8601.
// Returns "" when nothing matched or the capture was not a valid date.
func firstDate(text string, patterns []*regexp.Regexp) string {
	raw := firstMatch(text, patterns)
	if raw == "" {
		return ""
	}
	return toISODate(raw)
}

// truncateRaw caps a source excerpt at 500 characters for CreditAccount.RawData.
func truncateRaw(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 500 {
		return s[:500]
	}
	return s
}
