package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"runwayplanner/backend/models"
)

// ReplaceHiringPlan swaps a company's whole plan in one transaction.
func ReplaceHiringPlan(ctx context.Context, companyID int64, items []models.HiringPlanItem) error {
	return pgx.BeginFunc(ctx, Pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM hiring_plan_items WHERE company_id=$1`, companyID); err != nil {
			return fmt.Errorf("clear hiring plan: %w", err)
		}
		if len(items) == 0 {
			return nil
		}
		b := &pgx.Batch{}
		for _, it := range items {
			b.Queue(`INSERT INTO hiring_plan_items(company_id,month_offset,role_name,head_count,monthly_salary_per_head,department)
VALUES($1,$2,$3,$4,$5,$6)`, companyID, it.MonthOffset, it.RoleName, it.Count, it.MonthlySalaryPerHead, it.Department)
		}
		if err := tx.SendBatch(ctx, b).Close(); err != nil {
			return fmt.Errorf("insert hiring plan: %w", err)
		}
		return nil
	})
}

func ListHiringPlan(ctx context.Context, companyID int64) ([]models.HiringPlanItem, error) {
	rows, err := Pool.Query(ctx, `SELECT month_offset, role_name, head_count, monthly_salary_per_head::float8, department
FROM hiring_plan_items WHERE company_id=$1 ORDER BY month_offset, id`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []models.HiringPlanItem{}
	for rows.Next() {
		var it models.HiringPlanItem
		if err := rows.Scan(&it.MonthOffset, &it.RoleName, &it.Count, &it.MonthlySalaryPerHead, &it.Department); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
