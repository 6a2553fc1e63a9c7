package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/gsbevilaqua83/private-rest-api/internal/client/client"
	"github.com/gsbevilaqua83/private-rest-api/internal/client/config"
	"github.com/gsbevilaqua83/private-rest-api/internal/client/services"
	"github.com/gsbevilaqua83/private-rest-api/internal/logging"
)

type App struct {
	config  *config.Config
	session services.SessionService
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)

	return &App{
		config:  c,
		session: services.NewSessionService(apiClient),
		logger:  logging.NewTextSlogLogger(os.Stderr, slog.LevelWarn).With("module", "cli"),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.session.Logout()
	a.Root(ctx)
}
