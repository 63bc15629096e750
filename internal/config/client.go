package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// DefaultClientRequestTimeout bounds every call made by the API client.
const DefaultClientRequestTimeout = 15 * time.Second

// ErrEmptyServerURL is returned when the client has no server to talk to.
var ErrEmptyServerURL = errors.New("server url is empty")

// Client holds the configuration of the command-line API client.
type Client struct {
	// ServerURL is the base URL of the post-keeper API.
	// Env: POST_KEEPER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// Token is the session token sent as a bearer credential.
	// Env: POST_KEEPER_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds a single API call.
	// Env: POST_KEEPER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LogLevel is the minimum level written by the client logger.
	// Env: POST_KEEPER_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// GetClientConfig reads the client configuration from the environment and
// lets args (the global flags placed before the subcommand) override it.
// It returns the remaining arguments.
func GetClientConfig(args []string) (*Client, []string, error) {
	var cfg Client
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "POST_KEEPER_"}); err != nil {
		return nil, nil, fmt.Errorf("error getting client env configs: %w", err)
	}

	flagCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	if err = mergo.Merge(&cfg, flagCfg, mergo.WithOverride); err != nil {
		return nil, nil, fmt.Errorf("error merging client configs: %w", err)
	}

	if cfg.ServerURL == "" {
		return nil, nil, ErrEmptyServerURL
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultClientRequestTimeout
	}

	return &cfg, rest, nil
}

func parseClientFlags(args []string) (Client, []string, error) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	var cfg Client
	fs.StringVar(&cfg.ServerURL, "s", "", "Server base URL")
	fs.StringVar(&cfg.Token, "t", "", "Session token")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Client{}, nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	return cfg, fs.Args(), nil
}
