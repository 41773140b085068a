package models

// ScenarioOverrides layers adjustments on top of an AssumptionSet. Nil fields
// are absent and leave the underlying value untouched.
type ScenarioOverrides struct {
	CustomerGrowthMultiplier       *float64                `json:"customer_growth_multiplier,omitempty" validate:"omitempty,gte=0"`
	ARPUMultiplier                 *float64                `json:"arpu_multiplier,omitempty" validate:"omitempty,gte=0"`
	ChurnRateAdjustment            *float64                `json:"churn_rate_adjustment,omitempty"`
	ExpansionRevenueRateAdjustment *float64                `json:"expansion_revenue_rate_adjustment,omitempty"`
	GrossMarginAdjustment          *float64                `json:"gross_margin_adjustment,omitempty"`
	FixedCostsMultiplier           *float64                `json:"fixed_costs_multiplier,omitempty" validate:"omitempty,gte=0"`
	VariableCostMultiplier         *float64                `json:"variable_cost_multiplier,omitempty" validate:"omitempty,gte=0"`
	HiringDelayMonths              *int                    `json:"hiring_delay_months,omitempty"`
	SalaryMultiplier               *float64                `json:"salary_multiplier,omitempty" validate:"omitempty,gte=0"`
	CustomMonthlyOverrides         []CustomMonthlyOverride `json:"custom_monthly_overrides,omitempty" validate:"omitempty,dive"`
}

// CustomMonthlyOverride pins exact values for a single month.
type CustomMonthlyOverride struct {
	MonthOffset  int      `json:"month_offset" validate:"gte=0"`
	NewCustomers *float64 `json:"new_customers,omitempty" validate:"omitempty,gte=0"`
	FixedCosts   *float64 `json:"fixed_costs,omitempty" validate:"omitempty,gte=0"`
}

// ScenarioKind names a preset set of overrides.
type ScenarioKind string

const (
	ScenarioBase        ScenarioKind = "base"
	ScenarioOptimistic  ScenarioKind = "optimistic"
	ScenarioPessimistic ScenarioKind = "pessimistic"
)

// ScenarioInput is everything one simulation needs.
type ScenarioInput struct {
	Company           CompanyState       `json:"company" validate:"required"`
	Assumptions       AssumptionSet      `json:"assumptions" validate:"required"`
	HiringPlan        []HiringPlanItem   `json:"hiring_plan" validate:"dive"`
	ScenarioOverrides *ScenarioOverrides `json:"scenario_overrides,omitempty"`
}

// Clone returns a deep copy so callers can adjust it without touching o.
func (o *ScenarioOverrides) Clone() *ScenarioOverrides {
	if o == nil {
		return nil
	}
	out := ScenarioOverrides{
		CustomerGrowthMultiplier:       clonePtr(o.CustomerGrowthMultiplier),
		ARPUMultiplier:                 clonePtr(o.ARPUMultiplier),
		ChurnRateAdjustment:            clonePtr(o.ChurnRateAdjustment),
		ExpansionRevenueRateAdjustment: clonePtr(o.ExpansionRevenueRateAdjustment),
		GrossMarginAdjustment:          clonePtr(o.GrossMarginAdjustment),
		FixedCostsMultiplier:           clonePtr(o.FixedCostsMultiplier),
		VariableCostMultiplier:         clonePtr(o.VariableCostMultiplier),
		HiringDelayMonths:              clonePtr(o.HiringDelayMonths),
		SalaryMultiplier:               clonePtr(o.SalaryMultiplier),
	}
	for _, co := range o.CustomMonthlyOverrides {
		out.CustomMonthlyOverrides = append(out.CustomMonthlyOverrides, CustomMonthlyOverride{
			MonthOffset:  co.MonthOffset,
			NewCustomers: clonePtr(co.NewCustomers),
			FixedCosts:   clonePtr(co.FixedCosts),
		})
	}
	return &out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Float64 returns a pointer to v. Handy when building overrides.
func Float64(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
