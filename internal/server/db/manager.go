// Package db wires the process-scoped database resources together: it opens
// the connection pool once at startup, runs migrations, and hands out the
// repositories the services are built on.
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/campusreg/lostfound/internal/server/items"
	"github.com/campusreg/lostfound/internal/server/migrations"
	"github.com/campusreg/lostfound/internal/server/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type RepositoryManager interface {
	Conn() *sql.DB
	Users() users.Repository
	LostItems() items.Repository
	FoundItems() items.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}

type PostgresRepositoryManager struct {
	db         *sql.DB
	users      users.Repository
	lostItems  items.Repository
	foundItems items.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) LostItems() items.Repository {
	return m.lostItems
}

func (m *PostgresRepositoryManager) FoundItems() items.Repository {
	return m.foundItems
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:         db,
		users:      users.NewPostgresRepository(db),
		lostItems:  items.NewPostgresRepository(db, items.Lost),
		foundItems: items.NewPostgresRepository(db, items.Found),
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
