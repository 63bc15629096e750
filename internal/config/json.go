package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey              string   `json:"token_sign_key"`
		TokenIssuer               string   `json:"token_issuer"`
		TokenDuration             Duration `json:"token_duration"`
		VerificationTokenDuration Duration `json:"verification_token_duration"`
		ResetTokenDuration        Duration `json:"reset_token_duration"`
		PasswordHashCost          int      `json:"password_hash_cost"`
		PublicURL                 string   `json:"public_url"`
		Version                   string   `json:"version"`
		LogLevel                  string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		AllowedOrigin   string   `json:"allowed_origin"`
	} `json:"server,omitempty"`

	Mail struct {
		Host      string `json:"host"`
		Port      int    `json:"port"`
		Username  string `json:"username"`
		Password  string `json:"password"`
		From      string `json:"from"`
		QueueSize int    `json:"queue_size"`
	} `json:"mail,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:              jsonCfg.App.TokenSignKey,
			TokenIssuer:               jsonCfg.App.TokenIssuer,
			TokenDuration:             time.Duration(jsonCfg.App.TokenDuration),
			VerificationTokenDuration: time.Duration(jsonCfg.App.VerificationTokenDuration),
			ResetTokenDuration:        time.Duration(jsonCfg.App.ResetTokenDuration),
			PasswordHashCost:          jsonCfg.App.PasswordHashCost,
			PublicURL:                 jsonCfg.App.PublicURL,
			Version:                   jsonCfg.App.Version,
			LogLevel:                  jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			AllowedOrigin:   jsonCfg.Server.AllowedOrigin,
		},
		Mail: Mail{
			Host:      jsonCfg.Mail.Host,
			Port:      jsonCfg.Mail.Port,
			Username:  jsonCfg.Mail.Username,
			Password:  jsonCfg.Mail.Password,
			From:      jsonCfg.Mail.From,
			QueueSize: jsonCfg.Mail.QueueSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
