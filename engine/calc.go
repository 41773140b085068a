// Package engine is the projection core: pure month-by-month formulas, the
// scenario overlay, the projection driver, the summary aggregator and the
// sanity checker. Nothing in here does I/O.
package engine

import (
	"math"

	"runwayplanner/backend/models"
)

// CustomerFlow is one month's customer movement.
type CustomerFlow struct {
	New     float64
	Churned float64
	Active  float64
}

// RevenueBreakdown splits MRR into its base and expansion components.
type RevenueBreakdown struct {
	BaseMRR   float64
	Expansion float64
	MRR       float64
	Revenue   float64
}

type CostBreakdown struct {
	COGS          float64
	GrossProfit   float64
	VariableCosts float64
	FixedCosts    float64
	SalaryCosts   float64
	TotalOpex     float64
}

// ActiveCustomers advances the customer base by one month. Active customers
// never drop below zero.
func ActiveCustomers(previousActive float64, a models.AssumptionSet, monthIndex int, o *models.ScenarioOverrides) CustomerFlow {
	newCustomers := a.ExpectedNewCustomersPerMonth * growthMultiplier(o)
	if v := customNewCustomers(o, monthIndex); v != nil {
		newCustomers = *v
	}
	churned := previousActive * a.ChurnRate
	return CustomerFlow{
		New:     newCustomers,
		Churned: churned,
		Active:  math.Max(0, previousActive+newCustomers-churned),
	}
}

// Revenue is recognised in the month it is billed; there is no deferral.
func Revenue(activeCustomers float64, a models.AssumptionSet) RevenueBreakdown {
	base := activeCustomers * a.ARPU
	expansion := base * a.ExpansionRevenueRate
	mrr := base + expansion
	return RevenueBreakdown{
		BaseMRR:   base,
		Expansion: expansion,
		MRR:       mrr,
		Revenue:   mrr,
	}
}

func Costs(revenue float64, monthIndex int, plan []models.HiringPlanItem, a models.AssumptionSet, o *models.ScenarioOverrides) CostBreakdown {
	cogs := revenue * (1 - a.GrossMarginPercent/100)
	variable := revenue * a.VariableCostPercentOfRevenue

	fixed := a.FixedCostsPerMonth
	if v := customFixedCosts(o, monthIndex); v != nil {
		fixed = *v
	}

	salaries := SalaryCosts(monthIndex, plan, o)

	return CostBreakdown{
		COGS:          cogs,
		GrossProfit:   revenue - cogs,
		VariableCosts: variable,
		FixedCosts:    fixed,
		SalaryCosts:   salaries,
		TotalOpex:     cogs + variable + fixed + salaries,
	}
}

// SalaryCosts sums the payroll of every hiring-plan item active at monthIndex.
func SalaryCosts(monthIndex int, plan []models.HiringPlanItem, o *models.ScenarioOverrides) float64 {
	mult := salaryMultiplier(o)
	var total float64
	for _, item := range plan {
		if hired(item, monthIndex, o) {
			total += float64(item.Count) * item.MonthlySalaryPerHead * mult
		}
	}
	return total
}

// Headcount counts heads from hiring-plan items active at monthIndex.
func Headcount(monthIndex int, plan []models.HiringPlanItem, o *models.ScenarioOverrides) int {
	n := 0
	for _, item := range plan {
		if hired(item, monthIndex, o) {
			n += item.Count
		}
	}
	return n
}

// Runway returns months of cash left at the given burn: 0 when cash is
// already gone, nil when the company is not burning.
func Runway(currentCash, monthlyBurn float64) *float64 {
	if currentCash <= 0 {
		zero := 0.0
		return &zero
	}
	if monthlyBurn <= 0 {
		return nil
	}
	r := currentCash / monthlyBurn
	return &r
}

func LTV(arpu, churnRate float64) models.Ratio {
	if churnRate == 0 {
		return models.Undefined()
	}
	return models.Finite(arpu / churnRate)
}

func LTVToCAC(ltv models.Ratio, cac float64) models.Ratio {
	if !ltv.Defined || cac == 0 {
		return models.Undefined()
	}
	return models.Finite(ltv.Value / cac)
}

func BurnMultiple(netBurn, netNewARR float64) models.Ratio {
	if netNewARR == 0 {
		return models.Undefined()
	}
	return models.Finite(netBurn / netNewARR)
}

// BreakEven computes how many customers are needed for contribution margin to
// cover the fixed costs and payroll of monthIndex.
func BreakEven(a models.AssumptionSet, plan []models.HiringPlanItem, o *models.ScenarioOverrides, monthIndex int) models.BreakEvenPoint {
	// costs of a zero-revenue month are exactly the fixed part
	fixed := Costs(0, monthIndex, plan, a, o).TotalOpex
	revenuePerCustomer := a.ARPU * (1 + a.ExpansionRevenueRate)
	contrib := revenuePerCustomer * (a.GrossMarginPercent/100 - a.VariableCostPercentOfRevenue)

	bep := models.BreakEvenPoint{
		MonthIndex:              monthIndex,
		ContributionPerCustomer: contrib,
		MonthlyFixedCosts:       fixed,
	}
	if !(contrib > 0) {
		return bep
	}
	bep.Reachable = true
	bep.Customers = int(math.Ceil(fixed / contrib))
	bep.MRR = float64(bep.Customers) * revenuePerCustomer
	return bep
}

func hired(item models.HiringPlanItem, monthIndex int, o *models.ScenarioOverrides) bool {
	return item.MonthOffset <= monthIndex-hiringDelay(o)
}

func growthMultiplier(o *models.ScenarioOverrides) float64 {
	if o == nil || o.CustomerGrowthMultiplier == nil {
		return 1
	}
	return *o.CustomerGrowthMultiplier
}

func salaryMultiplier(o *models.ScenarioOverrides) float64 {
	if o == nil || o.SalaryMultiplier == nil {
		return 1
	}
	return *o.SalaryMultiplier
}

func hiringDelay(o *models.ScenarioOverrides) int {
	if o == nil || o.HiringDelayMonths == nil {
		return 0
	}
	return *o.HiringDelayMonths
}

// customNewCustomers and customFixedCosts return the first exact-value
// override for monthIndex that sets the field, or nil.
func customNewCustomers(o *models.ScenarioOverrides, monthIndex int) *float64 {
	if o == nil {
		return nil
	}
	for _, co := range o.CustomMonthlyOverrides {
		if co.MonthOffset == monthIndex && co.NewCustomers != nil {
			return co.NewCustomers
		}
	}
	return nil
}

func customFixedCosts(o *models.ScenarioOverrides, monthIndex int) *float64 {
	if o == nil {
		return nil
	}
	for _, co := range o.CustomMonthlyOverrides {
		if co.MonthOffset == monthIndex && co.FixedCosts != nil {
			return co.FixedCosts
		}
	}
	return nil
}
