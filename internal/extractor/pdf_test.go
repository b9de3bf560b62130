package extractor

import (
	"strings"
	"testing"
)

func TestIsReadableText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{
			"real report text",
			"CIBIL Credit Report. Account Number: XXXX1234. Credit Limit: Rs. 50,000. Status: Active.",
			true,
		},
		{
			"too short",
			"credit report",
			false,
		},
		{
			"garbage from identity-encoded fonts",
			strings.Repeat("Ã±âï¿½", 30),
			false,
		},
		{
			"readable ascii but no report vocabulary",
			strings.Repeat("the quick brown fox jumps over something. ", 5),
			false,
		},
		{
			"empty",
			"",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isReadableText(tt.text); got != tt.expected {
				t.Errorf("isReadableText: got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTextQuality(t *testing.T) {
	if q := textQuality(""); q != 0 {
		t.Errorf("empty text quality: got %f, want 0", q)
	}
	if q := textQuality("Credit Report 2024"); q != 1.0 {
		t.Errorf("clean ascii quality: got %f, want 1.0", q)
	}
	mixed := "abcd" + strings.Repeat("ÿ", 6)
	if q := textQuality(mixed); q >= 0.6 {
		t.Errorf("mostly-garbage quality: got %f, want < 0.6", q)
	}
}

func TestExtractTextRejectsNonPDF(t *testing.T) {
	_, err := ExtractText([]byte("this is not a pdf"), "")
	if err == nil {
		t.Fatal("expected an error for non-PDF bytes")
	}
}

func TestExtractTextFileMissing(t *testing.T) {
	_, err := ExtractTextFile("/nonexistent/report.pdf", "")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
