package cli

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"testing"

	"github.com/gsbevilaqua83/private-rest-api/internal/client/client"
	"github.com/gsbevilaqua83/private-rest-api/internal/client/services"
	"github.com/gsbevilaqua83/private-rest-api/internal/logging"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// stubPasswords makes GetPassword return pws in order, then io.EOF.
func stubPasswords(t *testing.T, pws ...string) {
	t.Helper()
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(int) ([]byte, error) {
		if len(pws) == 0 {
			return nil, io.EOF
		}
		pw := pws[0]
		pws = pws[1:]
		return []byte(pw), nil
	}
}

// fakeSession accepts admin/password1 once an admin exists.
type fakeSession struct {
	hasAdmin bool
	err      error

	user    string
	logins  int
	queries []url.Values
	regs    []string
}

func (f *fakeSession) RegisterAdmin(ctx context.Context, username string, password []byte) (client.Response, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	if f.hasAdmin {
		return client.Response(`{"error":"missing keys in POST request body"}`), false, nil
	}
	f.hasAdmin = true
	return client.Response(`{"success":"registration successful."}`), true, nil
}

func (f *fakeSession) Login(ctx context.Context, username string, password []byte) (client.Response, bool, error) {
	f.logins++
	if f.err != nil {
		return nil, false, f.err
	}
	if username != "admin" {
		return client.Response(`{"error":"username doesn't exist."}`), false, nil
	}
	if string(password) != "password1" {
		return client.Response(`{"error":"wrong password."}`), false, nil
	}
	f.user = username
	return client.Response(`{"endpoints":["/patients","/pharmacies","/transactions"]}`), true, nil
}

func (f *fakeSession) Register(ctx context.Context, username string, password []byte) (client.Response, error) {
	f.regs = append(f.regs, username)
	return client.Response(`{"success":"registration successful."}`), nil
}

func (f *fakeSession) Query(ctx context.Context, e services.Endpoint, params url.Values) (client.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.queries = append(f.queries, params)
	return client.Response(`[{"name":"Drogasil","id":"PHARMACY1","city":"Lisboa"}]`), nil
}

func (f *fakeSession) Logout()          { f.user = "" }
func (f *fakeSession) UserName() string { return f.user }

func newTestApp(s services.SessionService, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{session: s, logger: nopLogger{}, reader: rdr(input), out: &out}, &out
}
