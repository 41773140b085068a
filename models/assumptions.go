package models

import "time"

type PricingModel string

const (
	PricingSubscription  PricingModel = "subscription"
	PricingUsageBased    PricingModel = "usage_based"
	PricingFreemium      PricingModel = "freemium"
	PricingTransactional PricingModel = "transactional"
	PricingHybrid        PricingModel = "hybrid"
)

// AssumptionSet holds the growth and cost drivers of one modeling exercise.
// Rates are fractions in [0,1] except GrossMarginPercent which is 0..100.
type AssumptionSet struct {
	StartMonth                   string       `json:"start_month" validate:"required,datetime=2006-01"`
	Months                       int          `json:"months" validate:"gte=1"`
	PricingModel                 PricingModel `json:"pricing_model" validate:"omitempty,oneof=subscription usage_based freemium transactional hybrid"`
	ARPU                         float64      `json:"arpu" validate:"gte=0"`
	ExpectedNewCustomersPerMonth float64      `json:"expected_new_customers_per_month" validate:"gte=0"`
	ExpansionRevenueRate         float64      `json:"expansion_revenue_rate" validate:"gte=0,lte=1"`
	ChurnRate                    float64      `json:"churn_rate" validate:"gte=0,lte=1"`
	CAC                          float64      `json:"cac" validate:"gte=0"`
	PaybackPeriodMonths          int          `json:"payback_period_months" validate:"gte=0"`
	GrossMarginPercent           float64      `json:"gross_margin_percent" validate:"gte=0,lte=100"`
	FixedCostsPerMonth           float64      `json:"fixed_costs_per_month" validate:"gte=0"`
	VariableCostPercentOfRevenue float64      `json:"variable_cost_percent_of_revenue" validate:"gte=0,lte=1"`
}

// StoredAssumptionSet is an AssumptionSet persisted against a company.
type StoredAssumptionSet struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"company_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	AssumptionSet
}
