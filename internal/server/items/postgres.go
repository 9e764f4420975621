package items

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/campusreg/lostfound/internal/dbx"
)

// PostgresRepository serves one item category; the table and column names
// interpolated into its queries come from the fixed Category values, not
// from request data.
type PostgresRepository struct {
	db  dbx.DBTX
	cat Category
}

func NewPostgresRepository(db dbx.DBTX, cat Category) *PostgresRepository {
	return &PostgresRepository{db: db, cat: cat}
}

func (r *PostgresRepository) Create(ctx context.Context, item *Item) (*Item, error) {

	query := fmt.Sprintf(
		`INSERT INTO %[1]s (user_id, title, description, %[2]s, location, image_path)
         VALUES ($1, $2, $3, $4, $5, $6)
         RETURNING id, %[2]s, date_reported
         `, r.cat.Table, r.cat.DateColumn)

	var imagePath sql.NullString
	if item.ImagePath != nil {
		imagePath = sql.NullString{String: *item.ImagePath, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		item.UserID, item.Title, item.Description, item.EventDate, item.Location, imagePath).
		Scan(&item.ID, &item.EventDate, &item.DateReported)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]Item, error) {

	query := fmt.Sprintf(
		`SELECT i.id, i.user_id, i.title, i.description, i.%[2]s, i.location, i.image_path, i.date_reported, u.email AS %[3]s
         FROM %[1]s i
         JOIN users u ON i.user_id = u.id
         ORDER BY i.date_reported DESC
         `, r.cat.Table, r.cat.DateColumn, r.cat.EmailAlias)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanItems(rows, true)
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]Item, error) {

	query := fmt.Sprintf(
		`SELECT id, user_id, title, description, %[2]s, location, image_path, date_reported
         FROM %[1]s
         WHERE user_id = $1
         ORDER BY date_reported DESC
         `, r.cat.Table, r.cat.DateColumn)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanItems(rows, false)
}

func scanItems(rows *sql.Rows, withEmail bool) ([]Item, error) {
	result := make([]Item, 0)

	for rows.Next() {
		var (
			it        Item
			imagePath sql.NullString
		)

		dest := []any{&it.ID, &it.UserID, &it.Title, &it.Description, &it.EventDate, &it.Location, &imagePath, &it.DateReported}
		if withEmail {
			dest = append(dest, &it.OwnerEmail)
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}

		if imagePath.Valid {
			it.ImagePath = &imagePath.String
		}

		result = append(result, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
