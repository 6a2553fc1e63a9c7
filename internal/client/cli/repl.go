package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gsbevilaqua83/private-rest-api/internal/client/client"
	"github.com/gsbevilaqua83/private-rest-api/internal/client/services"
)

// execIface is the command surface the menu needs. App satisfies it; tests
// can provide a lightweight stub.
type execIface interface {
	Register(ctx context.Context) error
	Query(ctx context.Context, e services.Endpoint) error
}

var menu = []string{
	" 0 - register",
	" 1 - patients",
	" 2 - pharmacies",
	" 3 - transactions",
	" 4 - logout",
	" 5 - quit",
}

// runMenu shows the endpoint menu and dispatches choices until the user
// logs out (false) or quits (true). Choices are accepted by number or name.
// End of input counts as quit.
func runMenu(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) bool {
	for {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "ENDPOINTS: ")
		for _, line := range menu {
			fmt.Fprintln(w, line)
		}

		choice, err := GetSimpleText(reader, "Choose an endpoint: ", w)
		if err != nil {
			return true
		}

		switch choice {
		case "0", "register":
			err = a.Register(ctx)
		case "1", "patients":
			err = a.Query(ctx, services.Patients)
		case "2", "pharmacies":
			err = a.Query(ctx, services.Pharmacies)
		case "3", "transactions":
			err = a.Query(ctx, services.Transactions)
		case "4", "logout":
			return false
		case "5", "quit":
			return true
		default:
			fmt.Fprintln(w)
			fmt.Fprintln(w, msgNoEndpoint)
			fmt.Fprintln(w)
			continue
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return true
		case errors.Is(err, client.ErrUnavailable):
			fmt.Fprintln(w, msgUnavailable)
		default:
			fmt.Fprintln(w, "ERROR:", err)
		}
	}
}
