package pharmacies

import (
	"context"
	"fmt"

	"github.com/gsbevilaqua83/private-rest-api/internal/dbx"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/filters"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Find(ctx context.Context, f filters.Filter) ([]models.Pharmacy, error) {
	where, args := f.Where(1)

	query := `SELECT ph.id, ph.name, ph.city FROM pharmacies ph`
	if where != "" {
		query += " " + where
	}
	query += ` ORDER BY ph.name COLLATE "C", ph.id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Pharmacy, 0)
	for rows.Next() {
		var p models.Pharmacy
		if err := rows.Scan(&p.ID, &p.Name, &p.City); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Pharmacy) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO pharmacies (id, name, city) VALUES ($1, $2, $3)`,
		p.ID, p.Name, p.City)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
