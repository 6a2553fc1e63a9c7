// Package patients reads and seeds the patients table.
package patients

import (
	"context"

	"github.com/gsbevilaqua83/private-rest-api/internal/server/filters"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/models"
)

type Repository interface {
	Find(ctx context.Context, f filters.Filter) ([]models.Patient, error)
	Create(ctx context.Context, p *models.Patient) error
}
