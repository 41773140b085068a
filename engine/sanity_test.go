package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"runwayplanner/backend/models"
)

func healthyInputs() (models.CompanyState, models.AssumptionSet) {
	c := models.CompanyState{Name: "Healthy", Stage: models.StageSeriesA, StartingCash: 1000000}
	a := models.AssumptionSet{
		StartMonth:                   "2024-01",
		Months:                       24,
		ARPU:                         200,
		ExpectedNewCustomersPerMonth: 10,
		ExpansionRevenueRate:         0.02,
		ChurnRate:                    0.02,
		CAC:                          1000,
		PaybackPeriodMonths:          6,
		GrossMarginPercent:           80,
		FixedCostsPerMonth:           20000,
		VariableCostPercentOfRevenue: 0.1,
	}
	return c, a
}

func fields(r models.SanityCheckResult) map[string]models.Severity {
	out := map[string]models.Severity{}
	for _, w := range r.Warnings {
		if _, seen := out[w.Field]; !seen {
			out[w.Field] = w.Severity
		}
	}
	return out
}

func TestSanityHealthyPasses(t *testing.T) {
	r := RunSanityChecks(healthyInputs())
	assert.True(t, r.Passed)
	assert.Empty(t, r.Warnings)
	assert.NotNil(t, r.Warnings)
}

func TestSanityConcreteSaaSPasses(t *testing.T) {
	in := saasInput()
	r := RunSanityChecks(in.Company, in.Assumptions)
	assert.True(t, r.Passed, "%+v", r.Warnings)
}

func TestSanityChecks(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CompanyState, *models.AssumptionSet)
		field  string
		want   models.Severity
	}{
		{"churn out of range", func(_ *models.CompanyState, a *models.AssumptionSet) { a.ChurnRate = 1.2 }, "churn_rate", models.SeverityHigh},
		{"churn very high", func(_ *models.CompanyState, a *models.AssumptionSet) { a.ChurnRate = 0.12 }, "churn_rate", models.SeverityHigh},
		{"churn elevated", func(_ *models.CompanyState, a *models.AssumptionSet) { a.ChurnRate = 0.06 }, "churn_rate", models.SeverityMedium},
		{"arpu zero", func(_ *models.CompanyState, a *models.AssumptionSet) { a.ARPU = 0 }, "arpu", models.SeverityHigh},
		{"arpu huge", func(_ *models.CompanyState, a *models.AssumptionSet) { a.ARPU = 20000; a.CAC = 1000 }, "arpu", models.SeverityLow},
		{"cac zero", func(_ *models.CompanyState, a *models.AssumptionSet) { a.CAC = 0 }, "cac", models.SeverityLow},
		{"payback inconsistent", func(_ *models.CompanyState, a *models.AssumptionSet) { a.PaybackPeriodMonths = 20 }, "payback_period_months", models.SeverityMedium},
		{"ltv to cac below 3", func(_ *models.CompanyState, a *models.AssumptionSet) { a.CAC = 5000; a.PaybackPeriodMonths = 31 }, "ltv_to_cac", models.SeverityHigh},
		{"gross margin out of range", func(_ *models.CompanyState, a *models.AssumptionSet) { a.GrossMarginPercent = 120 }, "gross_margin_percent", models.SeverityHigh},
		{"gross margin low", func(_ *models.CompanyState, a *models.AssumptionSet) { a.GrossMarginPercent = 40; a.PaybackPeriodMonths = 12 }, "gross_margin_percent", models.SeverityMedium},
		{"runway under six months", func(c *models.CompanyState, _ *models.AssumptionSet) { c.StartingCash = 100000 }, "starting_cash", models.SeverityHigh},
		{"runway under a year", func(c *models.CompanyState, _ *models.AssumptionSet) { c.StartingCash = 300000 }, "starting_cash", models.SeverityMedium},
		{"negative growth", func(_ *models.CompanyState, a *models.AssumptionSet) { a.ExpectedNewCustomersPerMonth = -1 }, "expected_new_customers_per_month", models.SeverityHigh},
		{"expansion out of range", func(_ *models.CompanyState, a *models.AssumptionSet) { a.ExpansionRevenueRate = 1.5 }, "expansion_revenue_rate", models.SeverityHigh},
		{"expansion aggressive", func(_ *models.CompanyState, a *models.AssumptionSet) { a.ExpansionRevenueRate = 0.2 }, "expansion_revenue_rate", models.SeverityLow},
		{"variable cost out of range", func(_ *models.CompanyState, a *models.AssumptionSet) { a.VariableCostPercentOfRevenue = -0.1 }, "variable_cost_percent_of_revenue", models.SeverityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, a := healthyInputs()
			tt.mutate(&c, &a)
			r := RunSanityChecks(c, a)

			got, ok := fields(r)[tt.field]
			if assert.True(t, ok, "no warning for %s: %+v", tt.field, r.Warnings) {
				assert.Equal(t, tt.want, got)
			}
			if tt.want == models.SeverityHigh {
				assert.False(t, r.Passed)
			}
		})
	}
}

func TestSanityLongPayback(t *testing.T) {
	c, a := healthyInputs()
	// keep the implied payback consistent so only the length check fires
	a.CAC = 4800
	a.ChurnRate = 0.01
	a.PaybackPeriodMonths = 30
	r := RunSanityChecks(c, a)

	var found bool
	for _, w := range r.Warnings {
		if w.Field == "payback_period_months" {
			found = true
			assert.Equal(t, models.SeverityMedium, w.Severity)
			assert.Contains(t, w.Message, "longer than 24")
		}
	}
	assert.True(t, found, "%+v", r.Warnings)
}

func TestSanityWarningsAreIndependent(t *testing.T) {
	c, a := healthyInputs()
	a.ChurnRate = 0.2
	a.GrossMarginPercent = 30
	a.ExpansionRevenueRate = 0.5
	c.StartingCash = 10000

	f := fields(RunSanityChecks(c, a))
	assert.Contains(t, f, "churn_rate")
	assert.Contains(t, f, "gross_margin_percent")
	assert.Contains(t, f, "expansion_revenue_rate")
	assert.Contains(t, f, "starting_cash")
	assert.Contains(t, f, "ltv_to_cac")
}

func TestSanityOnlyMediumStillPasses(t *testing.T) {
	c, a := healthyInputs()
	c.StartingCash = 300000
	r := RunSanityChecks(c, a)
	assert.True(t, r.Passed)
	assert.Len(t, r.Warnings, 1)
}

func TestGetBenchmarks(t *testing.T) {
	seed := GetBenchmarks(models.StageSeed)
	assert.Equal(t, models.Range{Min: 0.02, Max: 0.06}, seed.ChurnRate)

	growth := GetBenchmarks(models.StageGrowth)
	assert.Less(t, growth.ChurnRate.Max, seed.ChurnRate.Max)

	assert.Equal(t, defaultBenchmarks, GetBenchmarks("unknown"))
	assert.Equal(t, defaultBenchmarks, GetBenchmarks(""))
}
