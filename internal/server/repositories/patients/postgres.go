package patients

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

// Find returns the patients matching f, ordered by first name in byte
// order. The id is a tie-breaker so equal names come back in a stable order.
func (r *PostgresRepository) Find(ctx context.Context, f filters.Filter) ([]models.Patient, error) {
	where, args := f.Where(1)

	query := `SELECT p.id, p.first_name, p.last_name, p.date_of_birth FROM patients p`
	if where != "" {
		query += " " + where
	}
	query += ` ORDER BY p.first_name COLLATE "C", p.id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Patient, 0)
	for rows.Next() {
		var p models.Patient
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Patient) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO patients (id, first_name, last_name, date_of_birth) VALUES ($1, $2, $3, $4)`,
		p.ID, p.FirstName, p.LastName, p.DateOfBirth)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
