package parser

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/credit-report-extractor/internal/models"
)

// Experian's "Credit Account Summary" block is semi-tabular: one row per
// account, but OCR collapses the columns into a flat token stream with no
// fixed offsets. The parser walks each row with an explicit state sequence
// instead of guessing column positions.

const (
	experianTableStart = "Credit Account Summary"
	experianTableEnd   = "Credit Account Details"
)

// rowState is the position in the expected token sequence of one table row.
type rowState int

const (
	expectLender rowState = iota
	expectType
	expectAccountNumber
	expectOwnership
	expectDateReported
	expectStatus
	expectDateOpened
	expectAmounts
)

// Token classification sets for the row walk.
var (
	// A lender name runs until the first account-type starter keyword.
	typeStarters = map[string]bool{
		"CREDIT": true, "PERSONAL": true, "HOME": true, "CONSUMER": true,
		"TWO": true, "AUTO": true, "BUSINESS": true, "EDUCATION": true,
		"GOLD": true, "OVERDRAFT": true, "SAVINGS": true, "CURRENT": true,
	}
	// Continuation tokens that extend a multi-word type ("TWO WHEELER LOAN").
	typeExtensions = map[string]bool{
		"LOAN": true, "CARD": true, "CARDS": true, "ACCOUNT": true, "WHEELER": true,
	}
	statusKeywords = map[string]models.AccountStatus{
		"ACTIVE":  models.StatusActive,
		"CLOSED":  models.StatusClosed,
		"SETTLED": models.StatusSettled,
		"WRITTEN": models.StatusWrittenOff, // "WRITTEN OFF" spans two tokens
		"DORMANT": models.StatusDormant,
	}

	entryAnchorPattern  = regexp.MustCompile(`(?i)\bAcct\s+\d+\b`)
	reportedDatePattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
	openedDatePattern   = regexp.MustCompile(`^\d{8}$`)
	amountTokenPattern  = regexp.MustCompile(`^(?:\d{1,3}(?:,\d{2,3})*(?:\.\d+)?|\d+(?:\.\d+)?|-)$`)
)

// tableRow accumulates one entry's fields as the state machine consumes
// tokens.
type tableRow struct {
	lenderTokens []string
	typeTokens   []string
	accountNo    string
	status       models.AccountStatus
	statusRaw    string
	openDate     string
	amounts      []string
}

// ParseExperianTable extracts accounts from the summary table block.
// Returns nil when either anchor is missing so the caller can fall back to
// section splitting. Non-active rows are dropped; droppedInactive reports
// how many, so the orchestrator can surface the omission.
func ParseExperianTable(text string) (accounts []models.CreditAccount, droppedInactive int) {
	start := strings.Index(text, experianTableStart)
	if start < 0 {
		return nil, 0
	}
	rest := text[start+len(experianTableStart):]
	end := strings.Index(rest, experianTableEnd)
	if end < 0 {
		return nil, 0
	}
	block := rest[:end]

	for _, entry := range splitEntries(block) {
		row := walkTokens(strings.Fields(entry))
		acct, ok := row.toAccount(entry)
		if !ok {
			if row.statusRaw != "" && row.status != models.StatusActive {
				droppedInactive++
			}
			continue
		}
		accounts = append(accounts, acct)
	}
	return accounts, droppedInactive
}

// splitEntries cuts the table block at each "Acct <n>" anchor; an entry
// runs until the next anchor or the end of the block.
func splitEntries(block string) []string {
	locs := entryAnchorPattern.FindAllStringIndex(block, -1)
	if len(locs) == 0 {
		return nil
	}
	var entries []string
	for i, loc := range locs {
		end := len(block)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		entry := strings.TrimSpace(block[loc[1]:end])
		if entry != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}

// walkTokens runs the row state machine over one entry's token stream.
func walkTokens(tokens []string) *tableRow {
	row := &tableRow{}
	state := expectLender

	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		var consumed int
		switch state {
		case expectLender:
			state, consumed = row.consumeLender(tok)
		case expectType:
			state, consumed = row.consumeType(tok)
		case expectAccountNumber:
			state, consumed = row.consumeAccountNumber(tok)
		case expectOwnership:
			state, consumed = row.consumeOwnership(tok)
		case expectDateReported:
			state, consumed = row.consumeDateReported(tok)
		case expectStatus:
			state, consumed = row.consumeStatus(tok, tokens[i:])
		case expectDateOpened:
			state, consumed = row.consumeDateOpened(tok)
		case expectAmounts:
			consumed = row.consumeAmount(tok)
		}
		i += consumed
	}
	return row
}

// consumeLender greedily collects lender-name tokens until a type starter
// appears. The starter itself is not consumed here.
func (r *tableRow) consumeLender(tok string) (rowState, int) {
	if typeStarters[strings.ToUpper(tok)] {
		return expectType, 0
	}
	r.lenderTokens = append(r.lenderTokens, tok)
	return expectLender, 1
}

// consumeType takes the starter keyword plus up to two extension tokens.
func (r *tableRow) consumeType(tok string) (rowState, int) {
	upper := strings.ToUpper(tok)
	if len(r.typeTokens) == 0 {
		r.typeTokens = append(r.typeTokens, upper)
		return expectType, 1
	}
	if len(r.typeTokens) < 3 && typeExtensions[upper] {
		r.typeTokens = append(r.typeTokens, upper)
		return expectType, 1
	}
	return expectAccountNumber, 0
}

// consumeAccountNumber takes the next token verbatim; the identifier is
// opaque (masked, alphanumeric) and validated downstream.
func (r *tableRow) consumeAccountNumber(tok string) (rowState, int) {
	r.accountNo = strings.ToUpper(tok)
	return expectOwnership, 1
}

// consumeOwnership optionally skips the literal "Individual" marker.
func (r *tableRow) consumeOwnership(tok string) (rowState, int) {
	if strings.EqualFold(tok, "Individual") {
		return expectDateReported, 1
	}
	return expectDateReported, 0
}

// consumeDateReported optionally skips a DD-MM-YYYY last-reported date.
func (r *tableRow) consumeDateReported(tok string) (rowState, int) {
	if reportedDatePattern.MatchString(tok) {
		return expectStatus, 1
	}
	return expectStatus, 0
}

// consumeStatus maps the next token against the status keyword set.
// "WRITTEN OFF" spans two tokens, so a lookahead is needed for that case.
func (r *tableRow) consumeStatus(tok string, lookahead []string) (rowState, int) {
	upper := strings.ToUpper(tok)
	status, ok := statusKeywords[upper]
	if !ok {
		return expectDateOpened, 0
	}
	r.status = status
	r.statusRaw = upper
	if upper == "WRITTEN" && len(lookahead) > 1 && strings.EqualFold(lookahead[1], "OFF") {
		r.statusRaw = "WRITTEN OFF"
		return expectDateOpened, 2
	}
	return expectDateOpened, 1
}

// consumeDateOpened takes an 8-digit YYYYMMDD open date when present.
func (r *tableRow) consumeDateOpened(tok string) (rowState, int) {
	if openedDatePattern.MatchString(tok) {
		r.openDate = tok
		return expectAmounts, 1
	}
	return expectAmounts, 0
}

// consumeAmount collects every remaining amount-like token in order:
// sanctioned limit, current balance, overdue. Non-amount tokens are skipped.
func (r *tableRow) consumeAmount(tok string) int {
	if amountTokenPattern.MatchString(tok) {
		r.amounts = append(r.amounts, tok)
	}
	return 1
}

// toAccount materializes a CreditAccount from the accumulated row.
// A row is accepted only when lender, type and status are all present and
// the status is ACTIVE; everything else is dropped at this stage.
func (r *tableRow) toAccount(rawEntry string) (models.CreditAccount, bool) {
	lender := strings.Join(r.lenderTokens, " ")
	typePhrase := strings.Join(r.typeTokens, " ")
	if lender == "" || typePhrase == "" || r.statusRaw == "" {
		return models.CreditAccount{}, false
	}
	if r.status != models.StatusActive {
		return models.CreditAccount{}, false
	}

	acctType, subType := DetermineAccountType(strings.ToLower(typePhrase))

	acct := models.CreditAccount{
		BankName:       NormalizeBankName(lender),
		AccountType:    acctType,
		AccountSubType: subType,
		AccountNumber:  r.accountNo,
		AccountStatus:  r.status,
		RawData:        truncateRaw(rawEntry),
	}
	if r.openDate != "" {
		acct.AccountOpenDate = toISODate(r.openDate)
	}

	// Amount positions: 1st sanctioned/credit limit, 2nd current balance,
	// 3rd overdue. "-" means the column was printed empty.
	setAmount := func(dst **float64, raw string) {
		if raw == "-" {
			return
		}
		if v, err := parseAmount(raw); err == nil && v >= 0 {
			*dst = &v
		}
	}
	if len(r.amounts) > 0 {
		setAmount(&acct.CreditLimit, r.amounts[0])
	}
	if len(r.amounts) > 1 {
		setAmount(&acct.CurrentBalance, r.amounts[1])
	}
	if len(r.amounts) > 2 {
		setAmount(&acct.OutstandingAmount, r.amounts[2])
	}

	acct.ConfidenceScore = r.confidence()
	acct.ExtractedFields = collectFieldNames(&acct)
	return acct, true
}

// confidence scores one table row: base 0.1, +0.3 lender longer than 3
// chars, +0.3 type recognized, +0.2 status recognized, +0.2 first amount
// column populated, capped at 1.0.
func (r *tableRow) confidence() float64 {
	score := 0.1
	if len(strings.Join(r.lenderTokens, " ")) > 3 {
		score += 0.3
	}
	if len(r.typeTokens) > 0 {
		score += 0.3
	}
	if r.statusRaw != "" {
		score += 0.2
	}
	if len(r.amounts) > 0 && r.amounts[0] != "-" {
		score += 0.2
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
