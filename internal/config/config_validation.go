// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Defaults applied by [StructuredConfig.applyDefaults] to unset fields.
const (
	DefaultTokenIssuer      = "go-post-keeper"
	DefaultVersion          = "dev"
	DefaultTokenDuration    = time.Hour
	DefaultPasswordHashCost = 12
	MinPasswordHashCost     = 10
	MaxPasswordHashCost     = 31
	DefaultMaxOpenConns     = 10
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultMailPort         = 587
	DefaultMailQueueSize    = 100
)

// applyDefaults fills zero-valued optional settings after all sources are
// merged.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.VerificationTokenDuration == 0 {
		cfg.App.VerificationTokenDuration = DefaultTokenDuration
	}
	if cfg.App.ResetTokenDuration == 0 {
		cfg.App.ResetTokenDuration = DefaultTokenDuration
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = DefaultPasswordHashCost
	}
	if cfg.App.PublicURL == "" && cfg.Server.HTTPAddress != "" {
		cfg.App.PublicURL = "http://" + cfg.Server.HTTPAddress
	}
	cfg.App.PublicURL = strings.TrimRight(cfg.App.PublicURL, "/")

	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = DefaultMaxOpenConns
	}

	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Mail.Port == 0 {
		cfg.Mail.Port = DefaultMailPort
	}
	if cfg.Mail.From == "" {
		cfg.Mail.From = cfg.Mail.Username
	}
	if cfg.Mail.QueueSize == 0 {
		cfg.Mail.QueueSize = DefaultMailQueueSize
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordHashCost < MinPasswordHashCost || cfg.App.PasswordHashCost > MaxPasswordHashCost {
		return fmt.Errorf("%w: password hash cost must be in [%d, %d]",
			ErrInvalidAppConfigs, MinPasswordHashCost, MaxPasswordHashCost)
	}

	if u, err := url.Parse(cfg.App.PublicURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: invalid public url %q", ErrInvalidAppConfigs, cfg.App.PublicURL)
	}

	if cfg.Mail.Host != "" && cfg.Mail.From == "" {
		return fmt.Errorf("%w: sender address is required with smtp host", ErrInvalidMailConfigs)
	}

	return nil
}
