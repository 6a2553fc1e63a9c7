package config

import (
	"github.com/gsbevilaqua83/private-rest-api/internal/envx"
)

// Environment variables read by parseEnv.
const (
	EnvAddress             = "PRA_ADDRESS"
	EnvDatabaseDSN         = "PRA_DATABASE_DSN"
	EnvLogLevel            = "PRA_LOG_LEVEL"
	EnvLogFormat           = "PRA_LOG_FORMAT"
	EnvBcryptCost          = "PRA_BCRYPT_COST"
	EnvReadTimeout         = "PRA_READ_TIMEOUT"
	EnvWriteTimeout        = "PRA_WRITE_TIMEOUT"
	EnvShutdownTimeout     = "PRA_SHUTDOWN_TIMEOUT"
	EnvSerializableRetries = "PRA_SERIALIZABLE_RETRIES"
)

// parseEnv loads .env (if any) and overlays the PRA_* variables that are
// set. Malformed numbers or durations panic.
func parseEnv(config *Config) {
	if err := envx.Load(); err != nil {
		panic(err)
	}

	envx.String(EnvAddress, &config.EndpointAddrHTTP)
	envx.String(EnvDatabaseDSN, &config.DatabaseDSN)
	envx.String(EnvLogLevel, &config.LogLevel)
	envx.String(EnvLogFormat, &config.LogFormat)

	for _, err := range []error{
		envx.Int(EnvBcryptCost, &config.BcryptCost),
		envx.Duration(EnvReadTimeout, &config.ReadTimeout),
		envx.Duration(EnvWriteTimeout, &config.WriteTimeout),
		envx.Duration(EnvShutdownTimeout, &config.ShutdownTimeout),
		envx.Int(EnvSerializableRetries, &config.SerializableRetries),
	} {
		if err != nil {
			panic(err)
		}
	}
}
