package parser

import (
	"fmt"
	"regexp"

	"github.com/insightdelivered/credit-report-extractor/internal/models"
)

// BureauParser is the contract each bureau strategy implements. CanParse
// must be pure and cheap; ParseReport may fail, but failures stay inside
// the registry, so callers of Registry.ParseReport never see an error.
type BureauParser interface {
	Bureau() models.Bureau
	CanParse(text string) bool
	ParseReport(text string) (*models.ParseResult, error)
}

// Registry holds the ordered bureau parsers plus the generic fallback.
// It is immutable after construction and safe to share across goroutines;
// all per-call state lives on the stack of ParseReport.
type Registry struct {
	parsers []BureauParser
	generic *GenericExtractor
}

// NewRegistry builds the default registry. Order matters: on ambiguous
// text mentioning several bureaus (score comparisons, co-branded pages),
// the first registered match wins: CIBIL, then Experian, then Equifax,
// then CRIF.
func NewRegistry() *Registry {
	return &Registry{
		parsers: []BureauParser{
			&CIBILParser{},
			&ExperianParser{},
			&EquifaxParser{},
			&CRIFParser{},
		},
		generic: &GenericExtractor{},
	}
}

// Register appends a parser to the detection order.
func (r *Registry) Register(p BureauParser) {
	r.parsers = append(r.parsers, p)
}

// DetectBureau returns the bureau of the first parser whose indicators
// match, or BureauUnknown. A miss is a legitimate null, not an error.
func (r *Registry) DetectBureau(text string) models.Bureau {
	for _, p := range r.parsers {
		if p.CanParse(text) {
			return p.Bureau()
		}
	}
	return models.BureauUnknown
}

// ParseReport runs the full pipeline over raw report text. It never
// panics and never returns an error: every failure is recorded as a
// string in summary.Errors and the next strategy is tried. Worst case is
// an empty-account result with populated errors.
func (r *Registry) ParseReport(text string) *models.ParseResult {
	result, errs := r.parseWithBureaus(text)
	if result != nil {
		result.Summary.Errors = append(errs, result.Summary.Errors...)
		return result
	}

	// No bureau matched, or every match failed: generic fallback.
	result = r.parseGeneric(text, models.BureauUnknown, &errs)
	result.Summary.Errors = errs
	return result
}

// parseWithBureaus tries each registered parser in order. A returned
// result with zero accounts is completed with the generic extractor under
// the matched bureau. Returns (nil, errs) when nothing usable came back.
func (r *Registry) parseWithBureaus(text string) (result *models.ParseResult, errs []string) {
	defer func() {
		if rec := recover(); rec != nil {
			errs = append(errs, fmt.Sprintf("orchestration failed: %v", rec))
			result = nil
		}
	}()

	for _, p := range r.parsers {
		if !p.CanParse(text) {
			continue
		}
		res, err := safeParse(p, text)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s parser failed: %v", p.Bureau(), err))
			continue
		}
		if len(res.Accounts) == 0 {
			// Stub or empty extraction: keep the bureau identity and
			// summary, let the generic line scan try for accounts.
			fallback := r.parseGeneric(text, p.Bureau(), &errs)
			fallback.Summary.ReportDate = res.Summary.ReportDate
			fallback.Summary.ReportNumber = res.Summary.ReportNumber
			fallback.Summary.CreditScore = res.Summary.CreditScore
			fallback.Summary.ScoreProvider = res.Summary.ScoreProvider
			fallback.Summary.RecentInquiries = res.Summary.RecentInquiries
			fallback.Summary.Errors = res.Summary.Errors
			return fallback, errs
		}
		return res, errs
	}
	return nil, errs
}

// parseGeneric runs the fallback extractor, guarding against the one
// remaining way the pipeline could blow up. If even the fallback panics,
// the result is an empty ParseResult with the panic recorded.
func (r *Registry) parseGeneric(text string, bureau models.Bureau, errs *[]string) (result *models.ParseResult) {
	defer func() {
		if rec := recover(); rec != nil {
			*errs = append(*errs, fmt.Sprintf("generic extraction failed: %v", rec))
			result = assembleResult(bureau, models.ReportSummary{}, nil)
		}
	}()

	summary := extractCommonSummary(text, "", genericReportDatePatterns)
	accounts := filterValid(r.generic.Extract(text))
	return assembleResult(bureau, summary, accounts)
}

// safeParse converts a bureau parser panic into an error so one bureau's
// bug cannot abort the whole pipeline.
func safeParse(p BureauParser, text string) (res *models.ParseResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return p.ParseReport(text)
}

var genericReportDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)report\s*date\s*[:\-]?\s*([\d]{1,4}[-/][\d]{1,2}[-/][\d]{1,4})`),
	regexp.MustCompile(`(?i)date\s*of\s*report\s*[:\-]?\s*([\d]{1,4}[-/][\d]{1,2}[-/][\d]{1,4})`),
}

// matchesAny is the shared CanParse helper: OR of indicator regexes.
func matchesAny(text string, indicators []*regexp.Regexp) bool {
	for _, re := range indicators {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
