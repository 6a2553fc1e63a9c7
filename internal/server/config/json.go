package config

import (
	"encoding/json"
	"os"

	"github.com/gsbevilaqua83/private-rest-api/internal/flagx"
	"github.com/gsbevilaqua83/private-rest-api/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Durations use timex.Duration so
// both "5s" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrHTTP    string         `json:"endpoint_addr_http"`
	DatabaseDSN         string         `json:"database_dsn"`
	LogLevel            string         `json:"log_level"`
	LogFormat           string         `json:"log_format"`
	BcryptCost          int            `json:"bcrypt_cost"`
	ReadTimeout         timex.Duration `json:"read_timeout"`
	WriteTimeout        timex.Duration `json:"write_timeout"`
	ShutdownTimeout     timex.Duration `json:"shutdown_timeout"`
	SerializableRetries int            `json:"serializable_retries"`
}

// parseJson overlays the file named by -c/-config. Only keys present with a
// non-zero value override what is already in config. An unreadable file or
// invalid JSON panics.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
	setValue(&config.BcryptCost, c.BcryptCost)
	setValue(&config.ReadTimeout, c.ReadTimeout.Duration)
	setValue(&config.WriteTimeout, c.WriteTimeout.Duration)
	setValue(&config.ShutdownTimeout, c.ShutdownTimeout.Duration)
	setValue(&config.SerializableRetries, c.SerializableRetries)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setValue[T ~int | ~int64](dst *T, v T) {
	if v != 0 {
		*dst = v
	}
}
