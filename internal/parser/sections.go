package parser

import (
	"regexp"
	"strings"
)

// minSectionLen is the noise floor: chunks shorter than this cannot hold a
// usable account description.
const minSectionLen = 80

// splitStrategy is one delimiter attempt for carving the report into
// account-sized chunks.
type splitStrategy struct {
	name      string
	delimiter *regexp.Regexp
}

// defaultSplitStrategies are tried in order. If a strategy yields fewer
// than 3 candidate chunks the next one is tried; the best attempt wins.
var defaultSplitStrategies = []splitStrategy{
	{
		name: "section-header",
		delimiter: regexp.MustCompile(
			`(?i)(?:account\s+details|account\s+information|credit\s+facilit(?:y|ies)|loan\s+account|account\s+#?\s*\d+)`),
	},
	{
		name: "lender-label",
		delimiter: regexp.MustCompile(
			`(?i)(?:member\s*name|lender\s*[:\-]|bank\s*name\s*[:\-])`),
	},
	{
		name: "account-number-label",
		delimiter: regexp.MustCompile(
			`(?i)(?:account\s*(?:number|no\.?)|a/c\s*no\.?)\s*[:\-]`),
	},
}

// SplitSections carves the full report text into per-account chunks using
// ordered fallback delimiters. Always returns a (possibly empty) slice.
func SplitSections(text string, strategies []splitStrategy) []string {
	if strategies == nil {
		strategies = defaultSplitStrategies
	}

	var best []string
	for _, s := range strategies {
		chunks := splitOn(text, s.delimiter)
		if len(chunks) >= 3 {
			return chunks
		}
		if len(chunks) > len(best) {
			best = chunks
		}
	}
	return best
}

// splitOn slices text at every delimiter match, keeping the delimiter at
// the head of each chunk, and drops chunks below the noise floor.
func splitOn(text string, delim *regexp.Regexp) []string {
	locs := delim.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	var chunks []string
	for i, loc := range locs {
		start := loc[0]
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		chunk := strings.TrimSpace(text[start:end])
		if len(chunk) >= minSectionLen {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}
