package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/campusreg/lostfound/internal/common"
	"github.com/campusreg/lostfound/internal/dbx"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the SQLSTATE Postgres reports when an insert collides
// with a unique constraint.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {

	query :=
		`INSERT INTO users (college_id, email, password_hash)
         VALUES ($1, $2, $3)
         RETURNING id, is_admin
         `

	err := r.db.QueryRowContext(ctx, query,
		user.CollegeID, user.Email, user.PasswordHash).Scan(&user.ID, &user.IsAdmin)

	if err != nil {
		// A registration racing past the pre-insert existence check still
		// hits the unique constraints; report it as the same duplicate.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrDuplicateUser
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByCollegeID(ctx context.Context, collegeID string) (*User, error) {
	query :=
		`SELECT id, college_id, email, password_hash, is_admin FROM users
         WHERE college_id = $1
         `

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, collegeID).
		Scan(&user.ID, &user.CollegeID, &user.Email, &user.PasswordHash, &user.IsAdmin)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, collegeID, email string) (bool, error) {
	query :=
		`SELECT EXISTS(SELECT 1 FROM users WHERE college_id = $1 OR email = $2)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, collegeID, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]Public, error) {
	query :=
		`SELECT id, college_id, email, is_admin FROM users
         ORDER BY id
         `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]Public, 0)
	for rows.Next() {
		var p Public
		if err := rows.Scan(&p.ID, &p.CollegeID, &p.Email, &p.IsAdmin); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
