package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gsbevilaqua83/private-rest-api/internal/common"
	"github.com/gsbevilaqua83/private-rest-api/internal/dbx"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/filters"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/models"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/repositories/patients"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/repositories/pharmacies"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/repositories/transactions"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

// --- fakes ---

type fakeUsersRepo struct {
	byName map[string]*models.User

	countErrs []error
	getErr    error
	createErr error

	lookups []string
	created []*models.User
}

func newFakeUsersRepo(us ...*models.User) *fakeUsersRepo {
	f := &fakeUsersRepo{byName: map[string]*models.User{}}
	for _, u := range us {
		f.byName[u.UserName] = u
	}
	return f
}

func (f *fakeUsersRepo) Count(ctx context.Context) (int, error) {
	if len(f.countErrs) > 0 {
		err := f.countErrs[0]
		f.countErrs = f.countErrs[1:]
		if err != nil {
			return 0, err
		}
	}
	return len(f.byName), nil
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.byName[u.UserName] = u
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	f.lookups = append(f.lookups, login)
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) Exists(ctx context.Context, login string) (bool, error) {
	_, ok := f.byName[login]
	return ok, nil
}

type fakePatientsRepo struct {
	got filters.Filter
	out []models.Patient
	err error
}

func (f *fakePatientsRepo) Find(ctx context.Context, flt filters.Filter) ([]models.Patient, error) {
	f.got = flt
	return f.out, f.err
}
func (f *fakePatientsRepo) Create(context.Context, *models.Patient) error { return nil }

type fakePharmaciesRepo struct {
	got filters.Filter
	out []models.Pharmacy
}

func (f *fakePharmaciesRepo) Find(ctx context.Context, flt filters.Filter) ([]models.Pharmacy, error) {
	f.got = flt
	return f.out, nil
}
func (f *fakePharmaciesRepo) Create(context.Context, *models.Pharmacy) error { return nil }

type fakeTransactionsRepo struct {
	got filters.Filter
	out []models.Transaction
}

func (f *fakeTransactionsRepo) Find(ctx context.Context, flt filters.Filter) ([]models.Transaction, error) {
	f.got = flt
	return f.out, nil
}
func (f *fakeTransactionsRepo) Create(context.Context, *models.Transaction) error { return nil }

type fakeRepoManager struct {
	u  *fakeUsersRepo
	p  *fakePatientsRepo
	ph *fakePharmaciesRepo
	t  *fakeTransactionsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error  { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository               { return m.u }
func (m *fakeRepoManager) Patients(dbx.DBTX) patients.Repository         { return m.p }
func (m *fakeRepoManager) Pharmacies(dbx.DBTX) pharmacies.Repository     { return m.ph }
func (m *fakeRepoManager) Transactions(dbx.DBTX) transactions.Repository { return m.t }
