package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/gsbevilaqua83/private-rest-api/internal/dbx"
	"github.com/gsbevilaqua83/private-rest-api/internal/logging"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/models"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/repositories/repomanager"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/services"
)

// Summary counts the rows inserted by Load.
type Summary struct {
	Users        int
	Patients     int
	Pharmacies   int
	Transactions int
}

type Seeder struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	bcryptCost  int
}

func NewSeeder(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger, bcryptCost int) *Seeder {
	return &Seeder{db: db, repomanager: m, logger: l.With("module", "seed"), bcryptCost: bcryptCost}
}

// newID is a seam for tests.
var newID = uuid.NewString

// Load inserts f in one transaction, parents before the transactions that
// reference them. Nothing is written if any row fails.
func (s *Seeder) Load(ctx context.Context, f *Fixture) (Summary, error) {
	var sum Summary

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		sum = Summary{}

		if err := s.loadUsers(ctx, tx, f.Users, &sum); err != nil {
			return err
		}

		patients := s.repomanager.Patients(tx)
		for i, pf := range f.Patients {
			dob, err := parseDate(pf.DateOfBirth)
			if err != nil {
				return fmt.Errorf("patients[%d]: date_of_birth: %w", i, err)
			}
			p := &models.Patient{ID: orNewID(pf.ID), FirstName: pf.FirstName, LastName: pf.LastName, DateOfBirth: dob}
			if err := patients.Create(ctx, p); err != nil {
				return fmt.Errorf("patients[%d]: %w", i, err)
			}
			sum.Patients++
		}

		pharmacies := s.repomanager.Pharmacies(tx)
		for i, pf := range f.Pharmacies {
			ph := &models.Pharmacy{ID: orNewID(pf.ID), Name: pf.Name, City: pf.City}
			if err := pharmacies.Create(ctx, ph); err != nil {
				return fmt.Errorf("pharmacies[%d]: %w", i, err)
			}
			sum.Pharmacies++
		}

		transactions := s.repomanager.Transactions(tx)
		for i, tf := range f.Transactions {
			ts, err := parseTimestamp(tf.Timestamp)
			if err != nil {
				return fmt.Errorf("transactions[%d]: timestamp: %w", i, err)
			}
			t := &models.Transaction{
				ID:         orNewID(tf.ID),
				PatientID:  tf.PatientID,
				PharmacyID: tf.PharmacyID,
				Amount:     tf.Amount,
				Timestamp:  ts,
			}
			if err := transactions.Create(ctx, t); err != nil {
				return fmt.Errorf("transactions[%d]: %w", i, err)
			}
			sum.Transactions++
		}

		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	s.logger.Info(ctx, "Seeded",
		"users", sum.Users,
		"patients", sum.Patients,
		"pharmacies", sum.Pharmacies,
		"transactions", sum.Transactions,
	)
	return sum, nil
}

// loadUsers creates fixture users with the role they declare. A user
// without an id is numbered the way registration numbers them.
func (s *Seeder) loadUsers(ctx context.Context, tx dbx.DBTX, us []UserFixture, sum *Summary) error {
	if len(us) == 0 {
		return nil
	}

	repo := s.repomanager.Users(tx)
	for i, uf := range us {
		role := uf.Role
		if role == "" {
			role = models.RoleStandard
		}
		if role != models.RoleAdmin && role != models.RoleStandard {
			return fmt.Errorf("users[%d]: unknown role %q", i, role)
		}

		id := uf.ID
		if id == "" {
			count, err := repo.Count(ctx)
			if err != nil {
				return fmt.Errorf("users[%d]: %w", i, err)
			}
			id = fmt.Sprintf("USER%d", count+1)
		}

		hash, err := services.HashPassword(uf.Password, s.bcryptCost)
		if err != nil {
			return fmt.Errorf("users[%d]: %w", i, err)
		}

		if _, err := repo.Create(ctx, &models.User{ID: id, UserName: uf.Username, PasswordHash: hash, Role: role}); err != nil {
			return fmt.Errorf("users[%d]: %w", i, err)
		}
		sum.Users++
	}
	return nil
}

func orNewID(id string) string {
	if id != "" {
		return id
	}
	return newID()
}
