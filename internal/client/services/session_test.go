package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/gsbevilaqua83/private-rest-api/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	path  string
	query url.Values
	body  map[string]string
}

type fakeClient struct {
	calls   []call
	replies []client.Response
	err     error
}

func (f *fakeClient) Post(ctx context.Context, path string, query url.Values, body any) (client.Response, error) {
	f.calls = append(f.calls, call{path: path, query: query, body: body.(map[string]string)})
	if f.err != nil {
		return nil, f.err
	}
	if len(f.replies) == 0 {
		return client.Response(`{}`), nil
	}
	r := f.replies[0]
	f.replies = f.replies[1:]
	return r, nil
}

func TestRegisterAdmin(t *testing.T) {
	fc := &fakeClient{replies: []client.Response{
		client.Response(`{"success":"registration successful."}`),
		client.Response(`{"error":"missing keys in POST request body"}`),
	}}
	s := NewSessionService(fc)

	_, ok, err := s.RegisterAdmin(context.Background(), "admin", []byte("password1"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, call{path: "/register", body: map[string]string{"new_username": "admin", "new_password": "password1"}}, fc.calls[0])

	resp, ok, err := s.RegisterAdmin(context.Background(), "admin", []byte("password1"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, resp.Has("error"))
}

func TestLoginKeepsCredentials(t *testing.T) {
	fc := &fakeClient{replies: []client.Response{
		client.Response(`{"error":"wrong password."}`),
		client.Response(`{"endpoints":["/patients","/pharmacies","/transactions"]}`),
	}}
	s := NewSessionService(fc)

	_, ok, err := s.Login(context.Background(), "alice", []byte("bad"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, s.UserName())

	pw := []byte("secret123")
	_, ok, err = s.Login(context.Background(), "alice", pw)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", s.UserName())
	assert.Equal(t, "/", fc.calls[1].path)

	_, err = s.Query(context.Background(), Pharmacies, url.Values{"city": {"Lis"}})
	require.NoError(t, err)
	last := fc.calls[2]
	assert.Equal(t, "/pharmacies", last.path)
	assert.Equal(t, "Lis", last.query.Get("city"))
	assert.Equal(t, map[string]string{"username": "alice", "password": "secret123"}, last.body)

	_, err = s.Register(context.Background(), "carol", []byte("password1"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"username": "alice", "password": "secret123",
		"new_username": "carol", "new_password": "password1",
	}, fc.calls[3].body)
}

func TestLogoutForgetsCredentials(t *testing.T) {
	fc := &fakeClient{replies: []client.Response{client.Response(`{"endpoints":[]}`)}}
	s := NewSessionService(fc).(*sessionService)

	_, ok, err := s.Login(context.Background(), "alice", []byte("secret123"))
	require.NoError(t, err)
	require.True(t, ok)
	kept := s.password

	s.Logout()
	assert.Empty(t, s.UserName())
	assert.Nil(t, s.password)
	assert.Equal(t, make([]byte, len("secret123")), kept, "password bytes wiped")
}

func TestTransportError(t *testing.T) {
	fc := &fakeClient{err: fmt.Errorf("%w: refused", client.ErrUnavailable)}
	s := NewSessionService(fc)

	_, _, err := s.Login(context.Background(), "a", []byte("b"))
	assert.True(t, errors.Is(err, client.ErrUnavailable))

	_, err = s.Query(context.Background(), Patients, nil)
	assert.ErrorIs(t, err, client.ErrUnavailable)
}
