// Package repomanager provides the PostgreSQL RepositoryManager: repository
// constructors, the pgx connection helper and goose migrations.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gsbevilaqua83/private-rest-api/internal/dbx"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/migrations"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/repositories/patients"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/repositories/pharmacies"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/repositories/transactions"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// DriverName is the database/sql driver registered by pgx/v5/stdlib.
const DriverName = "pgx"

type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Patients(db dbx.DBTX) patients.Repository {
	return patients.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Pharmacies(db dbx.DBTX) pharmacies.Repository {
	return pharmacies.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Transactions(db dbx.DBTX) transactions.Repository {
	return transactions.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded goose migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// Open connects to PostgreSQL through pgx and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sqlOpen(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}
