package engine

import "runwayplanner/backend/models"

// ApplyOverrides returns the effective assumption set for a scenario. The base
// set is passed by value and is never modified. Growth multiplier, hiring
// delay, salary multiplier and custom monthly overrides are not baked in here;
// the driver evaluates them per month.
func ApplyOverrides(base models.AssumptionSet, o *models.ScenarioOverrides) models.AssumptionSet {
	eff := base
	if o == nil {
		return eff
	}
	if o.ARPUMultiplier != nil {
		eff.ARPU *= *o.ARPUMultiplier
	}
	if o.ChurnRateAdjustment != nil {
		eff.ChurnRate = clamp(eff.ChurnRate+*o.ChurnRateAdjustment, 0, 1)
	}
	if o.ExpansionRevenueRateAdjustment != nil {
		eff.ExpansionRevenueRate += *o.ExpansionRevenueRateAdjustment
	}
	if o.GrossMarginAdjustment != nil {
		eff.GrossMarginPercent += *o.GrossMarginAdjustment
	}
	if o.FixedCostsMultiplier != nil {
		eff.FixedCostsPerMonth *= *o.FixedCostsMultiplier
	}
	if o.VariableCostMultiplier != nil {
		eff.VariableCostPercentOfRevenue *= *o.VariableCostMultiplier
	}
	return eff
}

var presets = map[models.ScenarioKind]models.ScenarioOverrides{
	models.ScenarioBase: {},
	models.ScenarioOptimistic: {
		CustomerGrowthMultiplier:       models.Float64(1.5),
		ARPUMultiplier:                 models.Float64(1.1),
		ChurnRateAdjustment:            models.Float64(-0.01),
		ExpansionRevenueRateAdjustment: models.Float64(0.01),
		FixedCostsMultiplier:           models.Float64(0.95),
	},
	models.ScenarioPessimistic: {
		CustomerGrowthMultiplier: models.Float64(0.5),
		ARPUMultiplier:           models.Float64(0.9),
		ChurnRateAdjustment:      models.Float64(0.02),
		GrossMarginAdjustment:    models.Float64(-5),
		FixedCostsMultiplier:     models.Float64(1.1),
		SalaryMultiplier:         models.Float64(1.05),
	},
}

// PresetOverrides returns a fresh copy of the named preset. Unknown kinds
// report false.
func PresetOverrides(kind models.ScenarioKind) (*models.ScenarioOverrides, bool) {
	p, ok := presets[kind]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
