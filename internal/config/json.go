package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		Version        string `json:"version"`
		LogLevel       string `json:"log_level"`
		SessionHashKey string `json:"session_hash_key"`
		CookieHashKey  string `json:"cookie_hash_key"`
		CookieBlockKey string `json:"cookie_block_key"`
		LogoutRedirect string `json:"logout_redirect"`
	} `json:"app,omitempty"`

	Session struct {
		CookieName string   `json:"cookie_name"`
		MaxAge     Duration `json:"max_age"`
		Secure     bool     `json:"secure"`
		Backend    string   `json:"backend"`

		CleanupInterval Duration `json:"cleanup_interval"`
	} `json:"session,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			URL string `json:"url"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`
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
			Version:        jsonCfg.App.Version,
			LogLevel:       jsonCfg.App.LogLevel,
			SessionHashKey: jsonCfg.App.SessionHashKey,
			CookieHashKey:  jsonCfg.App.CookieHashKey,
			CookieBlockKey: jsonCfg.App.CookieBlockKey,
			LogoutRedirect: jsonCfg.App.LogoutRedirect,
		},
		Session: Session{
			CookieName: jsonCfg.Session.CookieName,
			MaxAge:     time.Duration(jsonCfg.Session.MaxAge),
			Secure:     jsonCfg.Session.Secure,
			Backend:    jsonCfg.Session.Backend,

			CleanupInterval: time.Duration(jsonCfg.Session.CleanupInterval),
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{URL: jsonCfg.Storage.Redis.URL},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
