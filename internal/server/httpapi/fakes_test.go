package httpapi

import (
	"context"
	"net/url"

	"github.com/gsbevilaqua83/private-rest-api/internal/common"
	"github.com/gsbevilaqua83/private-rest-api/internal/logging"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/models"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/services"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// fakeAuth accepts alice/secret123 only.
type fakeAuth struct {
	err  error
	seen []services.Payload
}

func (f *fakeAuth) Login(ctx context.Context, p services.Payload) (*models.User, error) {
	f.seen = append(f.seen, p)
	if f.err != nil {
		return nil, f.err
	}
	u, pw, ok := p.Credentials()
	switch {
	case !ok:
		return nil, common.ErrMissingKeys
	case u != "alice":
		return nil, common.ErrUnknownUser
	case pw != "secret123":
		return nil, common.ErrWrongPassword
	}
	return &models.User{ID: "USER1", UserName: u, Role: models.RoleAdmin}, nil
}

type fakeRegistrar struct {
	err  error
	seen services.Payload
}

func (f *fakeRegistrar) Register(ctx context.Context, p services.Payload) (*models.User, error) {
	f.seen = p
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: "USER2", UserName: p[services.KeyNewUsername], Role: models.RoleStandard}, nil
}

type fakeCatalog struct {
	patients     []models.Patient
	pharmacies   []models.Pharmacy
	transactions []models.Transaction
	err          error
	params       url.Values
}

func (f *fakeCatalog) Patients(ctx context.Context, params url.Values) ([]models.Patient, error) {
	f.params = params
	return f.patients, f.err
}

func (f *fakeCatalog) Pharmacies(ctx context.Context, params url.Values) ([]models.Pharmacy, error) {
	f.params = params
	return f.pharmacies, f.err
}

func (f *fakeCatalog) Transactions(ctx context.Context, params url.Values) ([]models.Transaction, error) {
	f.params = params
	return f.transactions, f.err
}
