// Package config provides the application configuration, assembled from
// command-line flags with environment-variable overrides.
package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
)

// Options holds the configuration values for the application.
type Options struct {
	// Address defines the server's listening address (ip:port).
	Address string `env:"SERVER_ADDRESS"`

	// BaseURL is the base used when building short links.
	BaseURL string `env:"BASE_URL"`

	// FilePath is the path to the journal file for persistent data.
	FilePath string `env:"FILE_STORAGE_PATH"`

	// DatabaseDSN holds the database connection string.
	DatabaseDSN string `env:"DATABASE_DSN"`

	// LogLevel sets the zap log level.
	LogLevel string `env:"LOG_LEVEL"`

	// IDLength is the length of generated identifiers.
	IDLength int `env:"ID_LENGTH"`

	// SessionSecret signs session tokens. Shared with the login system.
	SessionSecret string `env:"SESSION_SECRET"`

	// TrustedSubnet, when set, is the only CIDR allowed to hard-delete.
	TrustedSubnet string `env:"TRUSTED_SUBNET"`

	// EnablePprof indicates whether to start the pprof listener.
	EnablePprof bool `env:"ENABLE_PPROF"`

	// EnableHTTPS indicates whether to serve TLS via autocert.
	EnableHTTPS bool `env:"ENABLE_HTTPS"`
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Address, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.BaseURL, "b", "http://localhost:8080", "base url for short links")
	flag.StringVar(&options.FilePath, "f", "", "path to storage journal file")
	flag.StringVar(&options.DatabaseDSN, "d", "", "database dsn")
	flag.StringVar(&options.LogLevel, "l", "info", "log level")
	flag.IntVar(&options.IDLength, "n", 7, "length of generated identifiers")
	flag.StringVar(&options.SessionSecret, "k", "", "session token signing secret")
	flag.StringVar(&options.TrustedSubnet, "t", "", "trusted subnet for hard deletion")
	flag.BoolVar(&options.EnablePprof, "p", false, "enable pprof")
	flag.BoolVar(&options.EnableHTTPS, "s", false, "enable https")
}

// Parse parses command-line flags, applies environment overrides and returns
// the resulting configuration. Environment variables win over flags.
func Parse() (*Options, error) {
	flag.Parse()

	if err := env.Parse(options); err != nil {
		return nil, err
	}

	return options, nil
}
