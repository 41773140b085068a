package database

import (
	"context"

	"github.com/jackc/pgx/v5"

	"runwayplanner/backend/models"
)

const assumptionColumns = `id, company_id, name, start_month, months, pricing_model,
	arpu::float8, expected_new_customers::float8, expansion_revenue_rate::float8, churn_rate::float8,
	cac::float8, payback_period_months, gross_margin_percent::float8, fixed_costs_per_month::float8,
	variable_cost_percent::float8, created_at`

func scanAssumptions(row pgx.Row) (models.StoredAssumptionSet, error) {
	var s models.StoredAssumptionSet
	err := row.Scan(&s.ID, &s.CompanyID, &s.Name, &s.StartMonth, &s.Months, &s.PricingModel,
		&s.ARPU, &s.ExpectedNewCustomersPerMonth, &s.ExpansionRevenueRate, &s.ChurnRate,
		&s.CAC, &s.PaybackPeriodMonths, &s.GrossMarginPercent, &s.FixedCostsPerMonth,
		&s.VariableCostPercentOfRevenue, &s.CreatedAt)
	return s, err
}

func CreateAssumptionSet(ctx context.Context, companyID int64, name string, a models.AssumptionSet) (models.StoredAssumptionSet, error) {
	if name == "" {
		name = "Base"
	}
	if a.PricingModel == "" {
		a.PricingModel = models.PricingSubscription
	}
	row := Pool.QueryRow(ctx, `INSERT INTO assumption_sets(company_id,name,start_month,months,pricing_model,arpu,
	expected_new_customers,expansion_revenue_rate,churn_rate,cac,payback_period_months,gross_margin_percent,
	fixed_costs_per_month,variable_cost_percent)
VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
RETURNING `+assumptionColumns,
		companyID, name, a.StartMonth, a.Months, a.PricingModel, a.ARPU,
		a.ExpectedNewCustomersPerMonth, a.ExpansionRevenueRate, a.ChurnRate, a.CAC, a.PaybackPeriodMonths,
		a.GrossMarginPercent, a.FixedCostsPerMonth, a.VariableCostPercentOfRevenue)
	return scanAssumptions(row)
}

// GetAssumptionSet loads a set only if its company belongs to userID.
func GetAssumptionSet(ctx context.Context, userID, id int64) (models.StoredAssumptionSet, error) {
	s, err := scanAssumptions(Pool.QueryRow(ctx, `SELECT `+assumptionColumns+` FROM assumption_sets a
WHERE a.id=$1 AND EXISTS (SELECT 1 FROM companies c WHERE c.id = a.company_id AND c.user_id=$2)`, id, userID))
	return s, notFound(err)
}

// LatestAssumptionSet returns the most recently created set for a company.
func LatestAssumptionSet(ctx context.Context, companyID int64) (models.StoredAssumptionSet, error) {
	s, err := scanAssumptions(Pool.QueryRow(ctx, `SELECT `+assumptionColumns+` FROM assumption_sets
WHERE company_id=$1 ORDER BY created_at DESC, id DESC LIMIT 1`, companyID))
	return s, notFound(err)
}
