package engine

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"runwayplanner/backend/models"
	"runwayplanner/backend/utils"
)

var ErrInvalidHorizon = errors.New("projection horizon must be at least one month")

// RunScenario simulates every month of the horizon and summarises the result.
// The simulation keeps going after cash runs out; a negative balance is a
// modeling outcome, not an error.
func RunScenario(in models.ScenarioInput) (models.ScenarioResult, error) {
	projections, err := Project(in)
	if err != nil {
		return models.ScenarioResult{}, err
	}
	summary, err := Summarize(projections, in.Assumptions)
	if err != nil {
		return models.ScenarioResult{}, err
	}
	return models.ScenarioResult{Projections: projections, Summary: summary}, nil
}

// Project runs the month loop and returns one record per month in order.
func Project(in models.ScenarioInput) ([]models.MonthlyProjection, error) {
	base := in.Assumptions
	if base.Months < 1 {
		return nil, ErrInvalidHorizon
	}
	labels, err := utils.MonthLabels(base.StartMonth, base.Months)
	if err != nil {
		return nil, err
	}

	o := in.ScenarioOverrides
	eff := ApplyOverrides(base, o)

	cash := in.Company.StartingCash
	active := StartingCustomers(in.Company, base)

	out := make([]models.MonthlyProjection, 0, base.Months)
	for m := 0; m < base.Months; m++ {
		flow := ActiveCustomers(active, eff, m, o)
		rev := Revenue(flow.Active, eff)
		costs := Costs(rev.Revenue, m, in.HiringPlan, eff, o)

		netBurn := costs.TotalOpex - rev.Revenue
		endingCash := cash - netBurn

		out = append(out, models.MonthlyProjection{
			MonthIndex:       m,
			Month:            labels[m],
			StartingCash:     cash,
			EndingCash:       endingCash,
			NetBurn:          netBurn,
			RunwayMonths:     Runway(endingCash, netBurn),
			NewCustomers:     flow.New,
			ChurnedCustomers: flow.Churned,
			ActiveCustomers:  flow.Active,
			MRR:              rev.MRR,
			Revenue:          rev.Revenue,
			COGS:             costs.COGS,
			GrossProfit:      costs.GrossProfit,
			SalaryCosts:      costs.SalaryCosts,
			FixedCosts:       costs.FixedCosts,
			VariableCosts:    costs.VariableCosts,
			TotalOpex:        costs.TotalOpex,
			Headcount:        Headcount(m, in.HiringPlan, o),
		})

		cash = endingCash
		active = flow.Active
	}
	return out, nil
}

// StartingCustomers infers today's customer count from starting MRR and the
// base, un-overridden ARPU: starting MRR is an observed fact priced at
// today's ARPU, and an ARPU multiplier only reprices it from month 0 on.
func StartingCustomers(c models.CompanyState, base models.AssumptionSet) float64 {
	if base.ARPU <= 0 {
		return 0
	}
	return c.StartingMRR / base.ARPU
}

// RunScenarios runs one simulation per named override set concurrently.
// Runs share no state, so the results match sequential RunScenario calls.
func RunScenarios(ctx context.Context, in models.ScenarioInput, named map[string]*models.ScenarioOverrides) (map[string]models.ScenarioResult, error) {
	type item struct {
		name string
		res  models.ScenarioResult
	}
	results := make([]item, 0, len(named))
	for name := range named {
		results = append(results, item{name: name})
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := range results {
		i := i
		run := in
		run.ScenarioOverrides = named[results[i].name]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := RunScenario(run)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", results[i].name, err)
			}
			results[i].res = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]models.ScenarioResult, len(results))
	for _, r := range results {
		out[r.name] = r.res
	}
	return out, nil
}
