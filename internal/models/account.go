package models

// Bureau identifies the credit-reporting agency that produced a report.
type Bureau string

const (
	BureauCIBIL    Bureau = "CIBIL"
	BureauExperian Bureau = "Experian"
	BureauEquifax  Bureau = "Equifax"
	BureauCRIF     Bureau = "CRIF"
	BureauUnknown  Bureau = "Unknown"
)

// AccountType classifies a credit facility.
type AccountType string

const (
	TypeCreditCard AccountType = "credit_card"
	TypeLoan       AccountType = "loan"
	TypeSavings    AccountType = "savings"
	TypeCurrent    AccountType = "current"
	TypeInvestment AccountType = "investment"
	TypeOverdraft  AccountType = "overdraft"
	TypeUnknown    AccountType = "unknown"
)

// AccountSubType refines loans (personal/home/auto/business/education/gold)
// and cards (secured/unsecured).
type AccountSubType string

const (
	SubTypePersonal  AccountSubType = "personal"
	SubTypeHome      AccountSubType = "home"
	SubTypeAuto      AccountSubType = "auto"
	SubTypeBusiness  AccountSubType = "business"
	SubTypeEducation AccountSubType = "education"
	SubTypeGold      AccountSubType = "gold"
	SubTypeSecured   AccountSubType = "secured"
	SubTypeUnsecured AccountSubType = "unsecured"
)

// AccountStatus is the reported standing of an account.
type AccountStatus string

const (
	StatusActive     AccountStatus = "active"
	StatusClosed     AccountStatus = "closed"
	StatusSettled    AccountStatus = "settled"
	StatusWrittenOff AccountStatus = "written_off"
	StatusDormant    AccountStatus = "dormant"
	StatusUnknown    AccountStatus = "unknown"
)

// PaymentHistory summarizes the DPD track of an account as printed.
type PaymentHistory struct {
	TotalMonthsReported int `json:"totalMonthsReported,omitempty"`
	DelayedPayments     int `json:"delayedPayments,omitempty"`
	OnTimePayments      int `json:"onTimePayments,omitempty"`
	HighestDelayDays    int `json:"highestDelayDays,omitempty"`
}

// CreditAccount is one extracted credit facility. Optional monetary fields
// are pointers so that "not found in the text" is distinguishable from zero.
// Dates are ISO-8601 YYYY-MM-DD strings; empty string means not found.
type CreditAccount struct {
	AccountID      string         `json:"accountId"`
	AccountType    AccountType    `json:"accountType"`
	AccountSubType AccountSubType `json:"accountSubType,omitempty"`
	BankName       string         `json:"bankName"`
	AccountNumber  string         `json:"accountNumber"`
	AccountStatus  AccountStatus  `json:"accountStatus"`

	CreditLimit        *float64 `json:"creditLimit,omitempty"`
	CurrentBalance     *float64 `json:"currentBalance,omitempty"`
	OutstandingAmount  *float64 `json:"outstandingAmount,omitempty"`
	AvailableCredit    *float64 `json:"availableCredit,omitempty"`
	MinimumAmountDue   *float64 `json:"minimumAmountDue,omitempty"`
	InterestRate       *float64 `json:"interestRate,omitempty"`
	AnnualFee          *float64 `json:"annualFee,omitempty"`
	LatePaymentCharges *float64 `json:"latePaymentCharges,omitempty"`

	AccountOpenDate  string `json:"accountOpenDate,omitempty"`
	LastPaymentDate  string `json:"lastPaymentDate,omitempty"`
	NextDueDate      string `json:"nextDueDate,omitempty"`
	LastReportedDate string `json:"lastReportedDate,omitempty"`

	PaymentHistory *PaymentHistory `json:"paymentHistory,omitempty"`

	TenureMonths *int     `json:"tenureMonths,omitempty"`
	EMIAmount    *float64 `json:"emiAmount,omitempty"`
	Collateral   string   `json:"collateral,omitempty"`
	Guarantor    string   `json:"guarantor,omitempty"`

	ConfidenceScore float64  `json:"confidenceScore"`
	RawData         string   `json:"rawData,omitempty"` // source excerpt, capped at 500 chars
	ExtractedFields []string `json:"extractedFields,omitempty"`
}

// ReportSummary holds report-level metadata and account totals. Counts are
// always recomputed from the final account list, never from raw-text counts.
type ReportSummary struct {
	ReportDate    string `json:"reportDate,omitempty"`
	ReportNumber  string `json:"reportNumber,omitempty"`
	CreditScore   int    `json:"creditScore,omitempty"` // 300-900 when present
	ScoreProvider string `json:"scoreProvider,omitempty"`

	TotalAccounts  int `json:"totalAccounts"`
	ActiveAccounts int `json:"activeAccounts"`
	ClosedAccounts int `json:"closedAccounts"`
	CreditCards    int `json:"creditCards"`
	Loans          int `json:"loans"`

	TotalCreditLimit     float64 `json:"totalCreditLimit,omitempty"`
	TotalOutstanding     float64 `json:"totalOutstanding,omitempty"`
	TotalAvailableCredit float64 `json:"totalAvailableCredit,omitempty"`

	RecentInquiries int      `json:"recentInquiries,omitempty"`
	Errors          []string `json:"errors,omitempty"`
}

// ParseResult is the engine's complete output for one report text.
type ParseResult struct {
	Bureau   Bureau          `json:"bureau"`
	Summary  ReportSummary   `json:"summary"`
	Accounts []CreditAccount `json:"accounts"`
}

// ReviewAccount is the simplified record handed to the review/ingestion API
// for human approval before anything reaches a ledger.
type ReviewAccount struct {
	BankName             string   `json:"bank_name"`
	AccountType          string   `json:"account_type"`
	AccountNumberPartial string   `json:"account_number_partial"` // last 4 chars
	Balance              *float64 `json:"balance,omitempty"`
	CreditLimit          *float64 `json:"credit_limit,omitempty"`
	OpenDate             string   `json:"open_date,omitempty"`
	ConfidenceScore      float64  `json:"confidence_score"`
	RawData              string   `json:"raw_data,omitempty"`
}

// ToReview converts an extracted account into its review-API shape.
func (a CreditAccount) ToReview() ReviewAccount {
	partial := a.AccountNumber
	if len(partial) > 4 {
		partial = partial[len(partial)-4:]
	}
	return ReviewAccount{
		BankName:             a.BankName,
		AccountType:          string(a.AccountType),
		AccountNumberPartial: partial,
		Balance:              a.CurrentBalance,
		CreditLimit:          a.CreditLimit,
		OpenDate:             a.AccountOpenDate,
		ConfidenceScore:      a.ConfidenceScore,
		RawData:              a.RawData,
	}
}
