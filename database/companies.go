package database

import (
	"context"

	"github.com/jackc/pgx/v5"

	"runwayplanner/backend/models"
)

const companyColumns = `id, user_id, name, stage, sector, country, currency,
	starting_cash::float8, starting_mrr::float8, current_headcount, created_at`

func scanCompany(row pgx.Row) (models.Company, error) {
	var c models.Company
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Stage, &c.Sector, &c.Country, &c.Currency,
		&c.StartingCash, &c.StartingMRR, &c.CurrentHeadcount, &c.CreatedAt)
	return c, err
}

func CreateCompany(ctx context.Context, userID int64, s models.CompanyState) (models.Company, error) {
	row := Pool.QueryRow(ctx, `INSERT INTO companies(user_id,name,stage,sector,country,currency,starting_cash,starting_mrr,current_headcount)
VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9)
RETURNING `+companyColumns,
		userID, s.Name, s.Stage, s.Sector, s.Country, s.Currency, s.StartingCash, s.StartingMRR, s.CurrentHeadcount)
	return scanCompany(row)
}

// GetCompany returns ErrNotFound when the company does not exist or is owned
// by someone else.
func GetCompany(ctx context.Context, userID, id int64) (models.Company, error) {
	c, err := scanCompany(Pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id=$1 AND user_id=$2`, id, userID))
	return c, notFound(err)
}

func ListCompanies(ctx context.Context, userID int64) ([]models.Company, error) {
	rows, err := Pool.Query(ctx, `SELECT `+companyColumns+` FROM companies WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []models.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
