// Package services contains application services for the CLI. SessionService
// keeps the logged-in credentials and turns menu actions into API calls;
// the server is stateless, so every call carries the credentials again.
package services

import (
	"context"
	"net/url"

	"github.com/gsbevilaqua83/private-rest-api/internal/client/client"
	"github.com/gsbevilaqua83/private-rest-api/internal/shared"
)

// Endpoint is a list endpoint together with the query parameters the CLI
// prompts for, in prompt order.
type Endpoint struct {
	Name   string
	Path   string
	Params []string
}

var (
	Patients = Endpoint{Name: "patients", Path: "/patients", Params: []string{
		"first_name", "last_name", "date_of_birth",
	}}
	Pharmacies = Endpoint{Name: "pharmacies", Path: "/pharmacies", Params: []string{
		"name", "city",
	}}
	Transactions = Endpoint{Name: "transactions", Path: "/transactions", Params: []string{
		"patient_first_name", "patient_last_name", "patient_date_of_birth",
		"pharmacy_name", "pharmacy_city", "amount", "timestamp",
	}}
)

// SessionService defines the CLI's conversation with the server.
//
// Contract:
//   - RegisterAdmin: bootstrap registration without credentials; ok when the
//     server answered "success".
//   - Login: check credentials against the root endpoint; ok when the answer
//     lists endpoints. On success the credentials are kept.
//   - Register: register another user as the logged-in user.
//   - Query: call a list endpoint with the given filters.
//   - Logout: forget the credentials.
//
// Transport failures are returned as errors wrapping client.ErrUnavailable.
type SessionService interface {
	RegisterAdmin(ctx context.Context, username string, password []byte) (client.Response, bool, error)
	Login(ctx context.Context, username string, password []byte) (client.Response, bool, error)
	Register(ctx context.Context, username string, password []byte) (client.Response, error)
	Query(ctx context.Context, e Endpoint, params url.Values) (client.Response, error)
	Logout()
	UserName() string
}

type sessionService struct {
	client   client.Client
	username string
	password []byte
}

func NewSessionService(c client.Client) SessionService {
	return &sessionService{client: c}
}

func (s *sessionService) credentials() map[string]string {
	return map[string]string{
		"username": s.username,
		"password": string(s.password),
	}
}

func (s *sessionService) RegisterAdmin(ctx context.Context, username string, password []byte) (client.Response, bool, error) {
	resp, err := s.client.Post(ctx, "/register", nil, map[string]string{
		"new_username": username,
		"new_password": string(password),
	})
	if err != nil {
		return nil, false, err
	}
	return resp, resp.Has("success"), nil
}

func (s *sessionService) Login(ctx context.Context, username string, password []byte) (client.Response, bool, error) {
	resp, err := s.client.Post(ctx, "/", nil, map[string]string{
		"username": username,
		"password": string(password),
	})
	if err != nil {
		return nil, false, err
	}
	if !resp.Has("endpoints") {
		return resp, false, nil
	}

	s.Logout()
	s.username = username
	s.password = append([]byte(nil), password...)
	return resp, true, nil
}

func (s *sessionService) Register(ctx context.Context, username string, password []byte) (client.Response, error) {
	body := s.credentials()
	body["new_username"] = username
	body["new_password"] = string(password)
	return s.client.Post(ctx, "/register", nil, body)
}

func (s *sessionService) Query(ctx context.Context, e Endpoint, params url.Values) (client.Response, error) {
	return s.client.Post(ctx, e.Path, params, s.credentials())
}

func (s *sessionService) Logout() {
	shared.WipeByteArray(s.password)
	s.password = nil
	s.username = ""
}

func (s *sessionService) UserName() string {
	return s.username
}
