package models

import "time"

// MonthlyProjection is one simulated month. RunwayMonths is nil when the month
// is break-even or profitable.
type MonthlyProjection struct {
	MonthIndex       int      `json:"month_index"`
	Month            string   `json:"month"`
	StartingCash     float64  `json:"starting_cash"`
	EndingCash       float64  `json:"ending_cash"`
	NetBurn          float64  `json:"net_burn"`
	RunwayMonths     *float64 `json:"runway_months"`
	NewCustomers     float64  `json:"new_customers"`
	ChurnedCustomers float64  `json:"churned_customers"`
	ActiveCustomers  float64  `json:"active_customers"`
	MRR              float64  `json:"mrr"`
	Revenue          float64  `json:"revenue"`
	COGS             float64  `json:"cogs"`
	GrossProfit      float64  `json:"gross_profit"`
	SalaryCosts      float64  `json:"salary_costs"`
	FixedCosts       float64  `json:"fixed_costs"`
	VariableCosts    float64  `json:"variable_costs"`
	TotalOpex        float64  `json:"total_opex"`
	Headcount        int      `json:"headcount"`
}

// ProjectionSummary condenses a full projection into headline metrics.
type ProjectionSummary struct {
	StartingMRR       float64  `json:"starting_mrr"`
	EndingMRR         float64  `json:"ending_mrr"`
	MRRGrowthPercent  float64  `json:"mrr_growth_percent"`
	PeakBurn          float64  `json:"peak_burn"`
	PeakBurnMonth     string   `json:"peak_burn_month"`
	AvgMonthlyBurn    float64  `json:"avg_monthly_burn"`
	StartingCash      float64  `json:"starting_cash"`
	EndingCash        float64  `json:"ending_cash"`
	TotalCashBurned   float64  `json:"total_cash_burned"`
	ZeroCashMonth     *string  `json:"zero_cash_month"`
	MinRunway         *float64 `json:"min_runway"`
	TotalRevenue      float64  `json:"total_revenue"`
	StartingHeadcount int      `json:"starting_headcount"`
	EndingHeadcount   int      `json:"ending_headcount"`
	LTV               *float64 `json:"ltv"`
	CACPaybackMonths  int      `json:"cac_payback_months"`
	BreakEvenMonth    *string  `json:"break_even_month"`
	BurnMultiple      Ratio    `json:"burn_multiple"`
}

// ScenarioResult is what a single simulation returns.
type ScenarioResult struct {
	Projections []MonthlyProjection `json:"projections"`
	Summary     ProjectionSummary   `json:"summary"`
}

// ProjectionRun is a persisted ScenarioResult.
type ProjectionRun struct {
	ID              string             `json:"id"`
	CompanyID       int64              `json:"company_id"`
	AssumptionSetID *int64             `json:"assumption_set_id"`
	ScenarioName    string             `json:"scenario_name"`
	Overrides       *ScenarioOverrides `json:"scenario_overrides,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	ScenarioResult
}

// BreakEvenPoint is the customer count and MRR at which a month's costs are
// covered by contribution margin.
type BreakEvenPoint struct {
	MonthIndex              int     `json:"month_index"`
	ContributionPerCustomer float64 `json:"contribution_per_customer"`
	MonthlyFixedCosts       float64 `json:"monthly_fixed_costs"`
	Customers               int     `json:"customers"`
	MRR                     float64 `json:"mrr"`
	Reachable               bool    `json:"reachable"`
}
