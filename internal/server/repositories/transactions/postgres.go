package transactions

import (
	"context"
	"fmt"

	"github.com/gsbevilaqua83/private-rest-api/internal/dbx"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/filters"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/models"
)

const selectJoined = `SELECT t.id, t.amount, t."timestamp",
	p.id, p.first_name, p.last_name, p.date_of_birth,
	ph.id, ph.name, ph.city
	FROM transactions t
	JOIN patients p ON p.id = t.patient_id
	JOIN pharmacies ph ON ph.id = t.pharmacy_id`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Find(ctx context.Context, f filters.Filter) ([]models.Transaction, error) {
	where, args := f.Where(1)

	query := selectJoined
	if where != "" {
		query += " " + where
	}
	query += ` ORDER BY p.first_name COLLATE "C", t.id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Transaction, 0)
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(
			&t.ID, &t.Amount, &t.Timestamp,
			&t.Patient.ID, &t.Patient.FirstName, &t.Patient.LastName, &t.Patient.DateOfBirth,
			&t.Pharmacy.ID, &t.Pharmacy.Name, &t.Pharmacy.City,
		); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		t.PatientID = t.Patient.ID
		t.PharmacyID = t.Pharmacy.ID
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.Transaction) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (id, patient_id, pharmacy_id, amount, "timestamp") VALUES ($1, $2, $3, $4, $5)`,
		t.ID, t.PatientID, t.PharmacyID, t.Amount, t.Timestamp)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
