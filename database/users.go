package database

import (
	"context"

	"runwayplanner/backend/models"
)

func CreateUser(ctx context.Context, name, email, passwordHash string) (int64, error) {
	var id int64
	err := Pool.QueryRow(ctx, `INSERT INTO users(name,email,password_hash) VALUES($1,$2,$3) RETURNING id`,
		name, email, passwordHash).Scan(&id)
	return id, err
}

func GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := Pool.QueryRow(ctx, `SELECT id, name, email, password_hash, created_at FROM users WHERE email=$1`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, notFound(err)
}

// GetUser loads a user along with the number of companies they own.
func GetUser(ctx context.Context, id int64) (models.User, error) {
	var u models.User
	err := Pool.QueryRow(ctx, `SELECT u.id, u.name, u.email, u.created_at,
		(SELECT count(*) FROM companies c WHERE c.user_id = u.id)::int
		FROM users u WHERE u.id=$1`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.Companies)
	return u, notFound(err)
}
