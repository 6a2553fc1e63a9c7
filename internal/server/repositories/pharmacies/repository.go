// Package pharmacies reads and seeds the pharmacies table.
package pharmacies

import (
	"context"

	"github.com/gsbevilaqua83/private-rest-api/internal/server/filters"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/models"
)

type Repository interface {
	Find(ctx context.Context, f filters.Filter) ([]models.Pharmacy, error)
	Create(ctx context.Context, p *models.Pharmacy) error
}
