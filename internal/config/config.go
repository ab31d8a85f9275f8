package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ailab/timesheetgen/internal/model"
)

// Config is the root configuration for tsg, stored in ~/.tsg/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	Server   ServerConfig    `json:"server"`
	Outlook  OutlookConfig   `json:"outlook"`
	Holidays []model.Holiday `json:"holidays"`
}

// ServerConfig holds settings for the `tsg serve` HTTP API.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `json:"addr"`
	// AllowedOrigins are CORS origins permitted to call the API.
	AllowedOrigins []string `json:"allowed_origins"`
}

// OutlookConfig holds Microsoft Graph settings for the leave import.
type OutlookConfig struct {
	// TenantID is the Azure AD tenant. Use "common" for personal/multi-tenant accounts.
	TenantID string `json:"tenant_id"`
	// ClientID is the Azure app (client) ID for the OAuth2 device code flow.
	ClientID string `json:"client_id"`
	// Timezone is the IANA timezone for event times (e.g. "Asia/Kolkata"). Empty = UTC.
	Timezone string `json:"timezone"`
}

const (
	// DefaultAddr is the default listen address for the serve command.
	DefaultAddr = ":8080"
	// DefaultOrigin is the dev-server origin allowed by default.
	DefaultOrigin = "http://localhost:3000"
	// DefaultTenantID is the Microsoft "common" tenant (supports personal and
	// multi-tenant organisational accounts without additional registration).
	DefaultTenantID = "common"
	// DefaultClientID is the well-known public Azure CLI app ID.
	// It supports device code flow without a client secret and requires no
	// app registration. Replace with your own registered app ID for
	// organisational or production deployments.
	DefaultClientID = "04b07795-8542-4c4a-95af-30b2c573d5ab"
)

// defaultConfig returns a Config pre-filled with sensible defaults.
// An empty Holidays list means the built-in 2026 table is used.
func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:           DefaultAddr,
			AllowedOrigins: []string{DefaultOrigin},
		},
		Outlook: OutlookConfig{
			TenantID: DefaultTenantID,
			ClientID: DefaultClientID,
			Timezone: "",
		},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// tsg configuration – ~/.tsg/config.json
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Edit this file to customise tsg behaviour.
{
  // ── HTTP API (tsg serve) ────────────────────────────────────────────────
  "server": {
    // Listen address for the JSON API.
    "addr": ":8080",

    // Browser origins allowed to call the API (CORS).
    "allowed_origins": ["http://localhost:3000"]
  },

  // ── Microsoft Graph / Outlook leave import ──────────────────────────────
  "outlook": {
    // Azure AD tenant ID.
    // • "common"  – personal Microsoft accounts and any organisation (default)
    // • Your organisation's tenant GUID, e.g. "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx"
    "tenant_id": "common",

    // Azure application (client) ID used for the OAuth2 device code flow.
    // The built-in value is the public Azure CLI app – no app registration needed.
    "client_id": "04b07795-8542-4c4a-95af-30b2c573d5ab",

    // IANA timezone for interpreting calendar event times, e.g. "Asia/Kolkata".
    // Leave empty to use UTC. Can be overridden with: tsg outlook import --timezone <tz>
    "timezone": ""
  },

  // ── Public holiday table ────────────────────────────────────────────────
  // Leave empty to use the built-in 2026 calendar. To supply your own,
  // list entries like: {"date": "2027-01-01", "name": "New Year's Day"}
  "holidays": []
}
`

// configFilePath returns the path to ~/.tsg/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".tsg", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.tsg/config.json, creating it with annotated defaults on first
// run. Lines starting with // are treated as comments and stripped before
// JSON parsing.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{DefaultOrigin}
	}
	if cfg.Outlook.TenantID == "" {
		cfg.Outlook.TenantID = DefaultTenantID
	}
	if cfg.Outlook.ClientID == "" {
		cfg.Outlook.ClientID = DefaultClientID
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
