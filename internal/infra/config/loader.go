// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"teamboard/internal/domain"
)

// ConfigFileName is the configuration file name inside the config directory.
const ConfigFileName = "config.toml"

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file.
type Loader struct {
	dir string // Path to the config directory
}

// NewLoader creates a new Loader reading from the given directory.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// rawConfig mirrors the TOML layout of the config file.
type rawConfig struct {
	DefaultUser int       `toml:"default_user"`
	Log         rawLog    `toml:"log"`
	Users       []rawUser `toml:"users"`
}

type rawLog struct {
	Level string `toml:"level"`
	Dir   string `toml:"dir"`
}

type rawUser struct {
	ID     int    `toml:"id"`
	Name   string `toml:"name"`
	Role   string `toml:"role"`
	Avatar string `toml:"avatar"`
}

// Load returns the configuration. A missing config file is not an error;
// the defaults are returned instead.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	path := filepath.Join(l.dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := &domain.Config{
		DefaultUser: raw.DefaultUser,
		Log:         base.Log,
	}
	if raw.Log.Level != "" {
		cfg.Log.Level = raw.Log.Level
	}
	if raw.Log.Dir != "" {
		cfg.Log.Dir = raw.Log.Dir
	}
	for _, u := range raw.Users {
		role := domain.Role(u.Role)
		if u.Role != "" && !role.IsValid() {
			return nil, fmt.Errorf("user %d: unknown role %q", u.ID, u.Role)
		}
		if u.Role == "" {
			role = domain.RoleEmployee
		}
		cfg.Users = append(cfg.Users, domain.User{
			ID:     u.ID,
			Name:   u.Name,
			Role:   role,
			Avatar: u.Avatar,
		})
	}

	return cfg, nil
}
