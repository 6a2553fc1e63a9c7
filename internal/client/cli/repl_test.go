package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/gsbevilaqua83/private-rest-api/internal/client/client"
	"github.com/gsbevilaqua83/private-rest-api/internal/client/services"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	err   error
}

func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return f.err
}

func (f *fakeExec) Query(ctx context.Context, e services.Endpoint) error {
	f.calls = append(f.calls, e.Name)
	return f.err
}

func TestRunMenu_Dispatch(t *testing.T) {
	input := strings.Join([]string{
		"0", "patients", "2", "3", "register", "foobar", "5",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer
	quit := runMenu(context.Background(), exec, rdr(input), &out)

	assert.True(t, quit)
	assert.Equal(t, []string{"register", "patients", "pharmacies", "transactions", "register"}, exec.calls)
	assert.Contains(t, out.String(), "ERROR: No endpoint selected")
	assert.Contains(t, out.String(), " 4 - logout")
}

func TestRunMenu_Logout(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer

	assert.False(t, runMenu(context.Background(), exec, rdr("logout\n1\n"), &out))
	assert.Empty(t, exec.calls)
}

func TestRunMenu_EOFQuits(t *testing.T) {
	var out bytes.Buffer
	assert.True(t, runMenu(context.Background(), &fakeExec{}, rdr(""), &out))
	assert.True(t, runMenu(context.Background(), &fakeExec{err: io.EOF}, rdr("1\n4\n"), &out))
}

func TestRunMenu_Unavailable(t *testing.T) {
	exec := &fakeExec{err: fmt.Errorf("%w: refused", client.ErrUnavailable)}
	var out bytes.Buffer

	assert.False(t, runMenu(context.Background(), exec, rdr("1\n4\n"), &out))
	assert.Contains(t, out.String(), "ERROR: Could not make request. Are you sure the api is running?")
}
