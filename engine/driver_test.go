package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runwayplanner/backend/models"
)

func saasInput() models.ScenarioInput {
	return models.ScenarioInput{
		Company: models.CompanyState{
			Name:         "Acme Analytics",
			Stage:        models.StageSeed,
			Sector:       models.SectorSaaS,
			Country:      "US",
			Currency:     "USD",
			StartingCash: 500000,
			StartingMRR:  10000,
		},
		Assumptions: models.AssumptionSet{
			StartMonth:                   "2024-01",
			Months:                       24,
			PricingModel:                 models.PricingSubscription,
			ARPU:                         100,
			ExpectedNewCustomersPerMonth: 10,
			ExpansionRevenueRate:         0.05,
			ChurnRate:                    0.05,
			CAC:                          500,
			PaybackPeriodMonths:          6,
			GrossMarginPercent:           80,
			FixedCostsPerMonth:           15000,
			VariableCostPercentOfRevenue: 0.1,
		},
		HiringPlan: testPlan(),
	}
}

func TestRunScenarioConcreteSaaS(t *testing.T) {
	in := saasInput()
	assert.Equal(t, 100.0, StartingCustomers(in.Company, in.Assumptions))

	res, err := RunScenario(in)
	require.NoError(t, err)
	require.Len(t, res.Projections, 24)

	m0 := res.Projections[0]
	assert.Equal(t, 0, m0.MonthIndex)
	assert.Equal(t, "2024-01", m0.Month)
	assert.Equal(t, 500000.0, m0.StartingCash)
	// 100 starting customers + 10 new - 5 churned
	assert.InDelta(t, 105.0, m0.ActiveCustomers, 1e-9)
	assert.InDelta(t, 105*100*1.05, m0.MRR, 1e-6)
	assert.Equal(t, 30000.0, m0.SalaryCosts)
	assert.Equal(t, 15000.0, m0.FixedCosts)
	assert.Equal(t, 3, m0.Headcount)
	assert.InDelta(t, m0.TotalOpex-m0.Revenue, m0.NetBurn, 1e-9)
	assert.InDelta(t, m0.StartingCash-m0.NetBurn, m0.EndingCash, 1e-9)

	assert.Equal(t, 30000.0, res.Projections[5].SalaryCosts)
	assert.Equal(t, 46000.0, res.Projections[6].SalaryCosts)
	assert.Equal(t, 5, res.Projections[6].Headcount)
	assert.Equal(t, "2025-12", res.Projections[23].Month)

	// cash threads from one month into the next
	for i := 1; i < len(res.Projections); i++ {
		assert.Equal(t, res.Projections[i-1].EndingCash, res.Projections[i].StartingCash)
	}
}

func TestRunScenarioDeterministic(t *testing.T) {
	a, err := RunScenario(saasInput())
	require.NoError(t, err)
	b, err := RunScenario(saasInput())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunScenarioLengthMatchesHorizon(t *testing.T) {
	for _, months := range []int{1, 6, 13, 60} {
		in := saasInput()
		in.Assumptions.Months = months
		res, err := RunScenario(in)
		require.NoError(t, err)
		assert.Len(t, res.Projections, months)
	}
}

func TestEmptyOverridesMatchNoOverrides(t *testing.T) {
	without, err := RunScenario(saasInput())
	require.NoError(t, err)

	in := saasInput()
	in.ScenarioOverrides = &models.ScenarioOverrides{}
	with, err := RunScenario(in)
	require.NoError(t, err)

	assert.Equal(t, without, with)
}

func TestHeadcountNonDecreasingWithoutDelay(t *testing.T) {
	in := saasInput()
	in.HiringPlan = append(in.HiringPlan,
		models.HiringPlanItem{MonthOffset: 12, RoleName: "Designer", Count: 1, MonthlySalaryPerHead: 9000},
		models.HiringPlanItem{MonthOffset: 3, RoleName: "Support", Count: 2, MonthlySalaryPerHead: 5000},
	)
	res, err := RunScenario(in)
	require.NoError(t, err)
	for i := 1; i < len(res.Projections); i++ {
		assert.GreaterOrEqual(t, res.Projections[i].Headcount, res.Projections[i-1].Headcount)
	}
	assert.Equal(t, 8, res.Projections[23].Headcount)
}

func TestCustomFixedCostOverride(t *testing.T) {
	in := saasInput()
	in.ScenarioOverrides = &models.ScenarioOverrides{
		CustomMonthlyOverrides: []models.CustomMonthlyOverride{{MonthOffset: 3, FixedCosts: models.Float64(0)}},
	}
	res, err := RunScenario(in)
	require.NoError(t, err)
	assert.Equal(t, 15000.0, res.Projections[2].FixedCosts)
	assert.Equal(t, 0.0, res.Projections[3].FixedCosts)
	assert.Equal(t, 15000.0, res.Projections[4].FixedCosts)
}

func TestRunScenarioKeepsGoingAfterCashRunsOut(t *testing.T) {
	in := saasInput()
	in.Company.StartingCash = 50000
	res, err := RunScenario(in)
	require.NoError(t, err)
	require.Len(t, res.Projections, 24)

	for _, m := range res.Projections {
		assert.GreaterOrEqual(t, m.ActiveCustomers, 0.0)
		if m.NetBurn <= 0 {
			assert.Nil(t, m.RunwayMonths, m.Month)
		}
		if m.EndingCash <= 0 {
			require.NotNil(t, m.RunwayMonths, m.Month)
			assert.Equal(t, 0.0, *m.RunwayMonths, m.Month)
		}
	}
	last := res.Projections[23]
	assert.Less(t, last.EndingCash, 0.0)
	require.NotNil(t, res.Summary.ZeroCashMonth)
	assert.Equal(t, "2024-02", *res.Summary.ZeroCashMonth)
}

func TestRunScenarioProfitableMonthsHaveNoRunway(t *testing.T) {
	in := saasInput()
	in.HiringPlan = nil
	in.Assumptions.FixedCostsPerMonth = 0
	res, err := RunScenario(in)
	require.NoError(t, err)
	for _, m := range res.Projections {
		assert.Less(t, m.NetBurn, 0.0)
		assert.Nil(t, m.RunwayMonths)
	}
	assert.Nil(t, res.Summary.MinRunway)
	require.NotNil(t, res.Summary.BreakEvenMonth)
	assert.Equal(t, "2024-01", *res.Summary.BreakEvenMonth)
}

func TestStartingCustomersUsesBaseARPU(t *testing.T) {
	in := saasInput()
	in.ScenarioOverrides = &models.ScenarioOverrides{ARPUMultiplier: models.Float64(2)}
	res, err := RunScenario(in)
	require.NoError(t, err)
	// 100 customers implied at the base ARPU of 100, then billed at 200
	assert.InDelta(t, 105.0, res.Projections[0].ActiveCustomers, 1e-9)
	assert.InDelta(t, 105*200*1.05, res.Projections[0].MRR, 1e-6)

	in.Assumptions.ARPU = 0
	assert.Equal(t, 0.0, StartingCustomers(in.Company, in.Assumptions))
}

func TestRunScenarioDoesNotMutateInput(t *testing.T) {
	in := saasInput()
	in.ScenarioOverrides = &models.ScenarioOverrides{
		ARPUMultiplier:      models.Float64(1.5),
		ChurnRateAdjustment: models.Float64(0.5),
	}
	before := in.Assumptions
	_, err := RunScenario(in)
	require.NoError(t, err)
	assert.Equal(t, before, in.Assumptions)
}

func TestRunScenarioErrors(t *testing.T) {
	in := saasInput()
	in.Assumptions.Months = 0
	_, err := RunScenario(in)
	assert.ErrorIs(t, err, ErrInvalidHorizon)

	in = saasInput()
	in.Assumptions.StartMonth = "January 2024"
	_, err = RunScenario(in)
	assert.Error(t, err)
}

func TestRunScenariosMatchesSequential(t *testing.T) {
	named := map[string]*models.ScenarioOverrides{}
	for _, kind := range []models.ScenarioKind{models.ScenarioBase, models.ScenarioOptimistic, models.ScenarioPessimistic} {
		o, ok := PresetOverrides(kind)
		require.True(t, ok)
		named[string(kind)] = o
	}

	got, err := RunScenarios(context.Background(), saasInput(), named)
	require.NoError(t, err)
	require.Len(t, got, 3)

	for name, o := range named {
		in := saasInput()
		in.ScenarioOverrides = o
		want, err := RunScenario(in)
		require.NoError(t, err)
		assert.Equal(t, want, got[name], name)
	}

	assert.Greater(t, got["optimistic"].Summary.EndingMRR, got["base"].Summary.EndingMRR)
	assert.Less(t, got["pessimistic"].Summary.EndingMRR, got["base"].Summary.EndingMRR)
}

func TestRunScenariosPropagatesErrors(t *testing.T) {
	in := saasInput()
	in.Assumptions.Months = 0
	_, err := RunScenarios(context.Background(), in, map[string]*models.ScenarioOverrides{"base": nil})
	assert.ErrorIs(t, err, ErrInvalidHorizon)
}
