// Package transactions reads and seeds pharmacy transactions.
package transactions

import (
	"context"

	"github.com/gsbevilaqua83/private-rest-api/internal/server/filters"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/models"
)

type Repository interface {
	// Find returns transactions joined with their patient and pharmacy.
	Find(ctx context.Context, f filters.Filter) ([]models.Transaction, error)
	Create(ctx context.Context, t *models.Transaction) error
}
