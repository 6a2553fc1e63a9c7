package config

import "github.com/gsbevilaqua83/private-rest-api/internal/envx"

const (
	EnvServerURL      = "PRA_CLI_SERVER_URL"
	EnvRequestTimeout = "PRA_CLI_REQUEST_TIMEOUT"
)

func parseEnv(cfg *Config) {
	if err := envx.Load(); err != nil {
		panic(err)
	}

	envx.String(EnvServerURL, &cfg.ServerURL)
	if err := envx.Duration(EnvRequestTimeout, &cfg.RequestTimeout); err != nil {
		panic(err)
	}
}
