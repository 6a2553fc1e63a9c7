package repomanager

import (
	"context"
	"database/sql"

	"github.com/gsbevilaqua83/private-rest-api/internal/dbx"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/repositories/patients"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/repositories/pharmacies"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/repositories/transactions"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so callers can pass
// either the pool or an open transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Patients(db dbx.DBTX) patients.Repository
	Pharmacies(db dbx.DBTX) pharmacies.Repository
	Transactions(db dbx.DBTX) transactions.Repository
}
