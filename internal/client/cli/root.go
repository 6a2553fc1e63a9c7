package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gsbevilaqua83/private-rest-api/internal/client/client"
	"github.com/gsbevilaqua83/private-rest-api/internal/shared"
)

const (
	msgHasAdmin      = "Does server already have an admin? y/n: "
	msgAdminExists   = "Are you sure an admin is not already registered?"
	msgUnavailable   = "ERROR: Could not make request. Are you sure the api is running?"
	msgNoEndpoint    = "ERROR: No endpoint selected"
	msgResponseTitle = "RESPONSE:"
)

// Root runs the start-up question, then alternates between logging in and
// the menu until the user quits or input ends.
func (a *App) Root(ctx context.Context) {
	for {
		answer, err := GetSimpleText(a.reader, msgHasAdmin, a.out)
		if err != nil {
			return
		}

		switch answer {
		case "y":
			if !a.loginLoop(ctx) {
				return
			}
		case "n":
			if !a.registerAdmin(ctx) {
				continue
			}
		default:
			continue
		}

		for {
			if runMenu(ctx, a, a.reader, a.out) {
				return
			}
			a.session.Logout()
			if !a.loginLoop(ctx) {
				return
			}
		}
	}
}

// registerAdmin bootstraps the first user and logs in as it. It reports
// whether the session is now logged in.
func (a *App) registerAdmin(ctx context.Context) bool {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Admin Registration")

	username, err := GetSimpleText(a.reader, "username: ", a.out)
	if err != nil {
		return false
	}
	password, err := GetPassword("password: ", a.out)
	if err != nil {
		return false
	}
	defer shared.WipeByteArray(password)

	resp, ok, err := a.session.RegisterAdmin(ctx, username, password)
	if err != nil {
		a.reportError(ctx, err)
		return false
	}
	fmt.Fprintln(a.out, resp.String())
	if !ok {
		fmt.Fprintln(a.out, msgAdminExists)
		return false
	}

	_, ok, err = a.session.Login(ctx, username, password)
	if err != nil {
		a.reportError(ctx, err)
		return false
	}
	return ok
}

// loginLoop prompts for credentials until the server accepts them. It
// returns false when input ends.
func (a *App) loginLoop(ctx context.Context) bool {
	for {
		username, err := GetSimpleText(a.reader, "Login: ", a.out)
		if err != nil {
			return false
		}
		password, err := GetPassword("Password: ", a.out)
		if err != nil {
			return false
		}

		resp, ok, err := a.session.Login(ctx, username, password)
		shared.WipeByteArray(password)
		if err != nil {
			a.reportError(ctx, err)
			continue
		}
		if ok {
			return true
		}
		fmt.Fprintln(a.out, resp.String())
	}
}

func (a *App) reportError(ctx context.Context, err error) {
	if errors.Is(err, client.ErrUnavailable) {
		fmt.Fprintln(a.out, msgUnavailable)
	}
	a.logger.Warn(ctx, "request failed", "error", err)
}
