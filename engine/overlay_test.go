package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runwayplanner/backend/models"
)

func TestApplyOverridesNil(t *testing.T) {
	base := saasInput().Assumptions
	assert.Equal(t, base, ApplyOverrides(base, nil))
	assert.Equal(t, base, ApplyOverrides(base, &models.ScenarioOverrides{}))
}

func TestApplyOverrides(t *testing.T) {
	base := saasInput().Assumptions
	o := &models.ScenarioOverrides{
		ARPUMultiplier:                 models.Float64(1.2),
		ChurnRateAdjustment:            models.Float64(0.02),
		ExpansionRevenueRateAdjustment: models.Float64(-0.01),
		GrossMarginAdjustment:          models.Float64(-10),
		FixedCostsMultiplier:           models.Float64(2),
		VariableCostMultiplier:         models.Float64(0.5),
		// consumed per month, never baked in
		CustomerGrowthMultiplier: models.Float64(3),
		HiringDelayMonths:        models.Int(4),
		SalaryMultiplier:         models.Float64(2),
	}

	eff := ApplyOverrides(base, o)
	assert.InDelta(t, 120.0, eff.ARPU, 1e-9)
	assert.InDelta(t, 0.07, eff.ChurnRate, 1e-9)
	assert.InDelta(t, 0.04, eff.ExpansionRevenueRate, 1e-9)
	assert.InDelta(t, 70.0, eff.GrossMarginPercent, 1e-9)
	assert.Equal(t, 30000.0, eff.FixedCostsPerMonth)
	assert.InDelta(t, 0.05, eff.VariableCostPercentOfRevenue, 1e-9)
	assert.Equal(t, base.ExpectedNewCustomersPerMonth, eff.ExpectedNewCustomersPerMonth)
	assert.Equal(t, base.CAC, eff.CAC)

	// the base set is untouched
	assert.Equal(t, 100.0, base.ARPU)
	assert.Equal(t, 15000.0, base.FixedCostsPerMonth)
}

func TestApplyOverridesClampsChurn(t *testing.T) {
	base := models.AssumptionSet{ChurnRate: 0.05}
	assert.Equal(t, 0.0, ApplyOverrides(base, &models.ScenarioOverrides{ChurnRateAdjustment: models.Float64(-0.2)}).ChurnRate)
	assert.Equal(t, 1.0, ApplyOverrides(base, &models.ScenarioOverrides{ChurnRateAdjustment: models.Float64(2)}).ChurnRate)
}

func TestPresetOverrides(t *testing.T) {
	base, ok := PresetOverrides(models.ScenarioBase)
	require.True(t, ok)
	assert.Equal(t, &models.ScenarioOverrides{}, base)

	opt, ok := PresetOverrides(models.ScenarioOptimistic)
	require.True(t, ok)
	require.NotNil(t, opt.CustomerGrowthMultiplier)

	// callers get their own copy
	*opt.CustomerGrowthMultiplier = 99
	again, _ := PresetOverrides(models.ScenarioOptimistic)
	assert.Equal(t, 1.5, *again.CustomerGrowthMultiplier)

	_, ok = PresetOverrides("moonshot")
	assert.False(t, ok)
}
