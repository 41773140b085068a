package database

import (
	"context"

	"github.com/phuslu/log"
)

// EnsureSchema creates required tables if they do not exist.
func EnsureSchema() {
	if Pool == nil {
		return
	}
	ctx := context.Background()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS companies (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			stage TEXT NOT NULL,
			sector TEXT NOT NULL,
			country TEXT NOT NULL DEFAULT '',
			currency TEXT NOT NULL DEFAULT 'USD',
			starting_cash NUMERIC NOT NULL,
			starting_mrr NUMERIC NOT NULL,
			current_headcount INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS companies_user_id_idx ON companies(user_id)`,
		`CREATE TABLE IF NOT EXISTS assumption_sets (
			id BIGSERIAL PRIMARY KEY,
			company_id BIGINT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
			name TEXT NOT NULL DEFAULT 'Base',
			start_month TEXT NOT NULL,
			months INT NOT NULL,
			pricing_model TEXT NOT NULL DEFAULT 'subscription',
			arpu NUMERIC NOT NULL,
			expected_new_customers NUMERIC NOT NULL,
			expansion_revenue_rate NUMERIC NOT NULL,
			churn_rate NUMERIC NOT NULL,
			cac NUMERIC NOT NULL,
			payback_period_months INT NOT NULL,
			gross_margin_percent NUMERIC NOT NULL,
			fixed_costs_per_month NUMERIC NOT NULL,
			variable_cost_percent NUMERIC NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS assumption_sets_company_idx ON assumption_sets(company_id, created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS hiring_plan_items (
			id BIGSERIAL PRIMARY KEY,
			company_id BIGINT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
			month_offset INT NOT NULL,
			role_name TEXT NOT NULL,
			head_count INT NOT NULL,
			monthly_salary_per_head NUMERIC NOT NULL,
			department TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS hiring_plan_items_company_idx ON hiring_plan_items(company_id, month_offset)`,
		`CREATE TABLE IF NOT EXISTS projection_runs (
			id UUID PRIMARY KEY,
			company_id BIGINT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
			assumption_set_id BIGINT NULL REFERENCES assumption_sets(id) ON DELETE SET NULL,
			scenario_name TEXT NOT NULL,
			overrides JSONB NULL,
			summary JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS projection_runs_company_idx ON projection_runs(company_id, created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS monthly_projections (
			run_id UUID NOT NULL REFERENCES projection_runs(id) ON DELETE CASCADE,
			month_index INT NOT NULL,
			month TEXT NOT NULL,
			starting_cash NUMERIC NOT NULL,
			ending_cash NUMERIC NOT NULL,
			net_burn NUMERIC NOT NULL,
			runway_months NUMERIC NULL,
			new_customers NUMERIC NOT NULL,
			churned_customers NUMERIC NOT NULL,
			active_customers NUMERIC NOT NULL,
			mrr NUMERIC NOT NULL,
			revenue NUMERIC NOT NULL,
			cogs NUMERIC NOT NULL,
			gross_profit NUMERIC NOT NULL,
			salary_costs NUMERIC NOT NULL,
			fixed_costs NUMERIC NOT NULL,
			variable_costs NUMERIC NOT NULL,
			total_opex NUMERIC NOT NULL,
			headcount INT NOT NULL,
			PRIMARY KEY (run_id, month_index)
		)`,
		`CREATE TABLE IF NOT EXISTS token_quotas (
			user_id BIGINT PRIMARY KEY,
			token_quota BIGINT NOT NULL DEFAULT 50000, -- default 5 points = 50k
			token_used  BIGINT NOT NULL DEFAULT 0,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, s := range stmts {
		if _, err := Pool.Exec(ctx, s); err != nil {
			log.Error().Err(err).Str("stmt", s).Msg("schema ensure error")
		}
	}
}
