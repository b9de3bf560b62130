package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// Password and decoding failure conditions. The parsing engine never sees
// these; they surface to the API/CLI caller before parsing starts.
var (
	ErrPasswordRequired  = errors.New("pdf is password protected")
	ErrIncorrectPassword = errors.New("incorrect pdf password")
	ErrExtractionFailed  = errors.New("no readable text could be extracted from pdf")
)

// ExtractText decodes a bureau report PDF into plain text. An empty
// password is fine for unprotected files; bureaus commonly protect reports
// with PAN/DOB-derived passwords.
func ExtractText(data []byte, password string) (string, error) {
	reader, err := openReader(data, password)
	if err != nil {
		return "", err
	}

	text, err := extractAllPages(reader)
	if err != nil {
		return "", err
	}
	if !isReadableText(text) {
		return "", ErrExtractionFailed
	}
	return text, nil
}

// ExtractTextFile is the file-path convenience wrapper used by the CLI.
func ExtractTextFile(path string, password string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return ExtractText(data, password)
}

func openReader(data []byte, password string) (*pdf.Reader, error) {
	// NewReaderEncrypted retries its password func until it returns "";
	// supply the password once so a wrong one fails instead of looping.
	attempts := 0
	pw := func() string {
		attempts++
		if attempts > 1 {
			return ""
		}
		return password
	}

	reader, err := pdf.NewReaderEncrypted(bytes.NewReader(data), int64(len(data)), pw)
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			if password == "" {
				return nil, ErrPasswordRequired
			}
			return nil, ErrIncorrectPassword
		}
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return reader, nil
}

// extractAllPages tries row-based extraction first (best layout
// preservation for the tabular summary blocks), then the reader's plain
// text path. The pdf library panics on some malformed files, so both
// passes run behind a recover.
func extractAllPages(reader *pdf.Reader) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf decode crashed: %v", r)
		}
	}()

	numPages := reader.NumPage()
	if numPages == 0 {
		return "", ErrExtractionFailed
	}

	var pages []string
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, rowErr := page.GetTextByRow()
		if rowErr != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}

	combined := strings.Join(pages, "\n\n")
	if isReadableText(combined) {
		return combined, nil
	}

	// Row extraction produced garbage or nothing; try the flat path.
	var buf bytes.Buffer
	plain, plainErr := reader.GetPlainText()
	if plainErr == nil {
		if _, copyErr := buf.ReadFrom(plain); copyErr == nil {
			return buf.String(), nil
		}
	}
	return combined, nil
}

// reportWords are terms that appear in virtually every bureau report.
// Extracted text containing none of them is treated as garbage from
// identity-encoded fonts rather than a real report.
var reportWords = []string{
	"credit", "account", "bureau", "score", "bank", "loan",
	"balance", "report", "enquiry", "inquiry", "payment", "limit",
	"member", "lender", "date", "amount",
}

// isReadableText requires enough text, a high readable-ASCII ratio, and at
// least one recognizable report word. unicode.IsLetter is too broad here:
// garbage from custom font encodings is full of accented letters.
func isReadableText(text string) bool {
	if len(text) <= 50 {
		return false
	}
	if textQuality(text) <= 0.6 {
		return false
	}
	lower := strings.ToLower(text)
	for _, w := range reportWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// textQuality returns the ratio of plain-ASCII readable characters to
// total characters.
func textQuality(text string) float64 {
	total := 0
	readable := 0
	for _, r := range text {
		total++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
			strings.ContainsRune(`.,-/:;()'"%&@#!?+=*₹$`, r) {
			readable++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}
