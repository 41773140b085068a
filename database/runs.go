package database

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"runwayplanner/backend/models"
)

// SaveRun stores the run row and its monthly rows atomically. It assigns the
// run a fresh UUID and creation time.
func SaveRun(ctx context.Context, run *models.ProjectionRun) error {
	summary, err := json.Marshal(run.Summary)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	var overrides *string
	if run.Overrides != nil {
		b, err := json.Marshal(run.Overrides)
		if err != nil {
			return fmt.Errorf("encode overrides: %w", err)
		}
		s := string(b)
		overrides = &s
	}

	id := uuid.New()
	now := time.Now().UTC()
	err = pgx.BeginFunc(ctx, Pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `INSERT INTO projection_runs(id,company_id,assumption_set_id,scenario_name,overrides,summary,created_at)
VALUES($1,$2,$3,$4,$5::jsonb,$6::jsonb,$7)`,
			id.String(), run.CompanyID, run.AssumptionSetID, run.ScenarioName, overrides, string(summary), now)
		if err != nil {
			return fmt.Errorf("insert run: %w", err)
		}
		b := &pgx.Batch{}
		for _, m := range run.Projections {
			b.Queue(`INSERT INTO monthly_projections(run_id,month_index,month,starting_cash,ending_cash,net_burn,runway_months,
	new_customers,churned_customers,active_customers,mrr,revenue,cogs,gross_profit,salary_costs,fixed_costs,
	variable_costs,total_opex,headcount)
VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`,
				id.String(), m.MonthIndex, m.Month, m.StartingCash, m.EndingCash, m.NetBurn, m.RunwayMonths,
				m.NewCustomers, m.ChurnedCustomers, m.ActiveCustomers, m.MRR, m.Revenue, m.COGS, m.GrossProfit,
				m.SalaryCosts, m.FixedCosts, m.VariableCosts, m.TotalOpex, m.Headcount)
		}
		if err := tx.SendBatch(ctx, b).Close(); err != nil {
			return fmt.Errorf("insert months: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	run.ID = id.String()
	run.CreatedAt = now
	return nil
}

const runColumns = `r.id::text, r.company_id, r.assumption_set_id, r.scenario_name, r.overrides, r.summary, r.created_at`

func scanRun(row pgx.Row) (models.ProjectionRun, error) {
	var (
		run       models.ProjectionRun
		overrides []byte
		summary   []byte
	)
	if err := row.Scan(&run.ID, &run.CompanyID, &run.AssumptionSetID, &run.ScenarioName, &overrides, &summary, &run.CreatedAt); err != nil {
		return run, err
	}
	if len(overrides) > 0 {
		run.Overrides = &models.ScenarioOverrides{}
		if err := json.Unmarshal(overrides, run.Overrides); err != nil {
			return run, fmt.Errorf("decode overrides: %w", err)
		}
	}
	if err := json.Unmarshal(summary, &run.Summary); err != nil {
		return run, fmt.Errorf("decode summary: %w", err)
	}
	return run, nil
}

// GetRun loads a run with all monthly rows, scoped to the owning user.
func GetRun(ctx context.Context, userID int64, id string) (models.ProjectionRun, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.ProjectionRun{}, ErrNotFound
	}
	run, err := scanRun(Pool.QueryRow(ctx, `SELECT `+runColumns+` FROM projection_runs r
JOIN companies c ON c.id = r.company_id
WHERE r.id=$1::uuid AND c.user_id=$2`, id, userID))
	if err != nil {
		return run, notFound(err)
	}

	rows, err := Pool.Query(ctx, `SELECT month_index, month, starting_cash::float8, ending_cash::float8, net_burn::float8,
	runway_months::float8, new_customers::float8, churned_customers::float8, active_customers::float8, mrr::float8,
	revenue::float8, cogs::float8, gross_profit::float8, salary_costs::float8, fixed_costs::float8,
	variable_costs::float8, total_opex::float8, headcount
FROM monthly_projections WHERE run_id=$1::uuid ORDER BY month_index`, id)
	if err != nil {
		return run, err
	}
	defer rows.Close()
	run.Projections = []models.MonthlyProjection{}
	for rows.Next() {
		var m models.MonthlyProjection
		if err := rows.Scan(&m.MonthIndex, &m.Month, &m.StartingCash, &m.EndingCash, &m.NetBurn,
			&m.RunwayMonths, &m.NewCustomers, &m.ChurnedCustomers, &m.ActiveCustomers, &m.MRR,
			&m.Revenue, &m.COGS, &m.GrossProfit, &m.SalaryCosts, &m.FixedCosts,
			&m.VariableCosts, &m.TotalOpex, &m.Headcount); err != nil {
			return run, err
		}
		run.Projections = append(run.Projections, m)
	}
	return run, rows.Err()
}

// ListRuns returns the runs of a company newest first, without monthly rows.
func ListRuns(ctx context.Context, companyID int64, limit int) ([]models.ProjectionRun, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := Pool.Query(ctx, `SELECT `+runColumns+` FROM projection_runs r
WHERE r.company_id=$1 ORDER BY r.created_at DESC LIMIT $2`, companyID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []models.ProjectionRun{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}
