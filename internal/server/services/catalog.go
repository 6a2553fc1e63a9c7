package services

import (
	"context"
	"database/sql"
	"net/url"

	"github.com/gsbevilaqua83/private-rest-api/internal/server/filters"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/models"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/repositories/repomanager"
)

// CatalogService answers the read-only list queries. params are the raw URL
// query parameters; anything outside each endpoint's registry is ignored.
type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{db: db, repomanager: m}
}

func (s *CatalogService) Patients(ctx context.Context, params url.Values) ([]models.Patient, error) {
	return s.repomanager.Patients(s.db).Find(ctx, filters.Patients.Build(params))
}

func (s *CatalogService) Pharmacies(ctx context.Context, params url.Values) ([]models.Pharmacy, error) {
	return s.repomanager.Pharmacies(s.db).Find(ctx, filters.Pharmacies.Build(params))
}

func (s *CatalogService) Transactions(ctx context.Context, params url.Values) ([]models.Transaction, error) {
	return s.repomanager.Transactions(s.db).Find(ctx, filters.Transactions.Build(params))
}
