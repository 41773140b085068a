package models

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type SanityWarning struct {
	Severity   Severity `json:"severity"`
	Field      string   `json:"field"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

type SanityCheckResult struct {
	Passed   bool            `json:"passed"`
	Warnings []SanityWarning `json:"warnings"`
}

// Range is an inclusive target band.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Benchmarks are target ranges for a company stage. Churn is monthly and
// fractional, gross margin is a percentage.
type Benchmarks struct {
	ChurnRate     Range `json:"churn_rate"`
	GrossMargin   Range `json:"gross_margin"`
	LTVToCAC      Range `json:"ltv_to_cac"`
	PaybackMonths Range `json:"payback_months"`
}
