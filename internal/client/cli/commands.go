package cli

import (
	"context"
	"fmt"
	"net/url"

	"github.com/gsbevilaqua83/private-rest-api/internal/client/services"
	"github.com/gsbevilaqua83/private-rest-api/internal/shared"
)

// Register asks for a new user and registers it as the logged-in user.
func (a *App) Register(ctx context.Context) error {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "New User Registration")

	username, err := GetSimpleText(a.reader, "username to register: ", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("password to register: ", a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	resp, err := a.session.Register(ctx, username, password)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, resp.String())
	return nil
}

// Query prompts for each filter of e, skipping empty answers, and prints
// the server's answer.
func (a *App) Query(ctx context.Context, e services.Endpoint) error {
	params := url.Values{}
	for _, p := range e.Params {
		v, err := GetSimpleText(a.reader, p+": ", a.out)
		if err != nil {
			return err
		}
		if v != "" {
			params.Set(p, v)
		}
	}

	resp, err := a.session.Query(ctx, e, params)
	if err != nil {
		return err
	}

	pretty, err := resp.Indent("    ")
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, msgResponseTitle)
	fmt.Fprintln(a.out, pretty)
	fmt.Fprintln(a.out)
	return nil
}
