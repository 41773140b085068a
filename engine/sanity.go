package engine

import (
	"fmt"
	"math"

	"runwayplanner/backend/models"
)

// benchmarks is keyed by stage; stages not listed use defaultBenchmarks.
var benchmarks = map[models.Stage]models.Benchmarks{
	models.StageIdea: {
		ChurnRate:     models.Range{Min: 0.03, Max: 0.10},
		GrossMargin:   models.Range{Min: 50, Max: 80},
		LTVToCAC:      models.Range{Min: 1, Max: 3},
		PaybackMonths: models.Range{Min: 12, Max: 24},
	},
	models.StagePreSeed: {
		ChurnRate:     models.Range{Min: 0.03, Max: 0.08},
		GrossMargin:   models.Range{Min: 55, Max: 80},
		LTVToCAC:      models.Range{Min: 1.5, Max: 3},
		PaybackMonths: models.Range{Min: 12, Max: 24},
	},
	models.StageSeed: {
		ChurnRate:     models.Range{Min: 0.02, Max: 0.06},
		GrossMargin:   models.Range{Min: 60, Max: 80},
		LTVToCAC:      models.Range{Min: 2, Max: 4},
		PaybackMonths: models.Range{Min: 12, Max: 18},
	},
	models.StageSeriesA: {
		ChurnRate:     models.Range{Min: 0.01, Max: 0.04},
		GrossMargin:   models.Range{Min: 65, Max: 85},
		LTVToCAC:      models.Range{Min: 3, Max: 5},
		PaybackMonths: models.Range{Min: 9, Max: 15},
	},
	models.StageSeriesB: {
		ChurnRate:     models.Range{Min: 0.01, Max: 0.03},
		GrossMargin:   models.Range{Min: 70, Max: 85},
		LTVToCAC:      models.Range{Min: 3, Max: 6},
		PaybackMonths: models.Range{Min: 6, Max: 12},
	},
	models.StageGrowth: {
		ChurnRate:     models.Range{Min: 0.005, Max: 0.02},
		GrossMargin:   models.Range{Min: 70, Max: 90},
		LTVToCAC:      models.Range{Min: 3, Max: 8},
		PaybackMonths: models.Range{Min: 6, Max: 12},
	},
}

var defaultBenchmarks = models.Benchmarks{
	ChurnRate:     models.Range{Min: 0.02, Max: 0.05},
	GrossMargin:   models.Range{Min: 60, Max: 80},
	LTVToCAC:      models.Range{Min: 3, Max: 5},
	PaybackMonths: models.Range{Min: 12, Max: 18},
}

// GetBenchmarks returns the target ranges for a stage.
func GetBenchmarks(stage models.Stage) models.Benchmarks {
	if b, ok := benchmarks[stage]; ok {
		return b
	}
	return defaultBenchmarks
}

const (
	maxHealthyChurn     = 0.05
	maxTolerableChurn   = 0.10
	minLTVToCAC         = 3.0
	maxPaybackMonths    = 24
	minGrossMargin      = 50.0
	highARPU            = 10000.0
	aggressiveExpansion = 0.10
)

// RunSanityChecks evaluates every heuristic independently and keeps the
// warnings in check order. The result passes unless a warning is high.
func RunSanityChecks(c models.CompanyState, a models.AssumptionSet) models.SanityCheckResult {
	var w []models.SanityWarning
	add := func(sev models.Severity, field, msg, suggestion string) {
		w = append(w, models.SanityWarning{Severity: sev, Field: field, Message: msg, Suggestion: suggestion})
	}

	switch {
	case a.ChurnRate < 0 || a.ChurnRate > 1:
		add(models.SeverityHigh, "churn_rate", "Churn rate must be between 0 and 1", "Enter monthly churn as a fraction, e.g. 0.03 for 3%")
	case a.ChurnRate > maxTolerableChurn:
		add(models.SeverityHigh, "churn_rate", fmt.Sprintf("Monthly churn of %.1f%% loses most customers within a year", a.ChurnRate*100), "Work on retention before scaling acquisition")
	case a.ChurnRate > maxHealthyChurn:
		add(models.SeverityMedium, "churn_rate", fmt.Sprintf("Monthly churn of %.1f%% is above the 5%% SaaS norm", a.ChurnRate*100), "Target under 5% monthly churn")
	}

	switch {
	case a.ARPU <= 0:
		add(models.SeverityHigh, "arpu", "ARPU must be positive", "Set the average monthly revenue per customer")
	case a.ARPU > highARPU:
		add(models.SeverityLow, "arpu", fmt.Sprintf("ARPU of %.0f per month is unusually high", a.ARPU), "Double-check ARPU is monthly, not annual")
	}

	if a.CAC == 0 && a.ExpectedNewCustomersPerMonth > 0 {
		add(models.SeverityLow, "cac", "CAC is zero while acquiring new customers", "Include marketing and sales spend per new customer")
	}
	if a.CAC > 0 && a.ARPU > 0 && a.GrossMarginPercent > 0 && a.PaybackPeriodMonths > 0 {
		implied := a.CAC / (a.ARPU * a.GrossMarginPercent / 100)
		stated := float64(a.PaybackPeriodMonths)
		if diff := math.Abs(implied - stated); diff > 3 && diff > stated*0.5 {
			add(models.SeverityMedium, "payback_period_months",
				fmt.Sprintf("Stated payback of %d months does not match %.1f months implied by CAC, ARPU and gross margin", a.PaybackPeriodMonths, implied),
				"Align CAC or payback period")
		}
	}

	if ratio := LTVToCAC(LTV(a.ARPU, a.ChurnRate), a.CAC); ratio.Defined && ratio.Value < minLTVToCAC {
		add(models.SeverityHigh, "ltv_to_cac", fmt.Sprintf("LTV:CAC of %.1f is below 3", ratio.Value), "Reduce CAC or churn, or raise ARPU")
	}

	if a.PaybackPeriodMonths > maxPaybackMonths {
		add(models.SeverityMedium, "payback_period_months", fmt.Sprintf("CAC payback of %d months is longer than 24", a.PaybackPeriodMonths), "Aim for payback under 18 months")
	}

	switch {
	case a.GrossMarginPercent < 0 || a.GrossMarginPercent > 100:
		add(models.SeverityHigh, "gross_margin_percent", "Gross margin must be between 0 and 100", "")
	case a.GrossMarginPercent < minGrossMargin:
		add(models.SeverityMedium, "gross_margin_percent", fmt.Sprintf("Gross margin of %.0f%% is low for software", a.GrossMarginPercent), "SaaS businesses usually run 70-80% gross margin")
	}

	if spend := a.FixedCostsPerMonth + a.ExpectedNewCustomersPerMonth*a.CAC; spend > 0 {
		runway := c.StartingCash / spend
		switch {
		case runway < 6:
			add(models.SeverityHigh, "starting_cash", fmt.Sprintf("Estimated runway is %.1f months", runway), "Raise funding or cut fixed costs")
		case runway < 12:
			add(models.SeverityMedium, "starting_cash", fmt.Sprintf("Estimated runway is %.1f months", runway), "Start fundraising at least 6 months before cash runs out")
		}
	}

	if a.ExpectedNewCustomersPerMonth < 0 {
		add(models.SeverityHigh, "expected_new_customers_per_month", "New customers per month cannot be negative", "")
	}

	switch {
	case a.ExpansionRevenueRate < 0 || a.ExpansionRevenueRate > 1:
		add(models.SeverityHigh, "expansion_revenue_rate", "Expansion revenue rate must be between 0 and 1", "")
	case a.ExpansionRevenueRate > aggressiveExpansion:
		add(models.SeverityLow, "expansion_revenue_rate", fmt.Sprintf("Expansion of %.0f%% per month is aggressive", a.ExpansionRevenueRate*100), "")
	}

	if a.VariableCostPercentOfRevenue < 0 || a.VariableCostPercentOfRevenue > 1 {
		add(models.SeverityHigh, "variable_cost_percent_of_revenue", "Variable cost share must be between 0 and 1", "")
	}

	passed := true
	for _, x := range w {
		if x.Severity == models.SeverityHigh {
			passed = false
			break
		}
	}
	if w == nil {
		w = []models.SanityWarning{}
	}
	return models.SanityCheckResult{Passed: passed, Warnings: w}
}
