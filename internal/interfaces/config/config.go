// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
)

type Config struct {
	ConfigVersion string          `json:"config_version"`
	Server        *ServerConfig   `json:"server"`
	Database      *DatabaseConfig `json:"database"`
}

func DefaultConfig() *Config {
	return &Config{
		ConfigVersion: ConfVersion.String(),
		Server:        defaultServerConfig(),
		Database:      defaultDatabaseConfig(),
	}
}

func (c *Config) CheckValid(logger log.LoggerInterface) *ValidResult {
	if version, err := newVersion(c.ConfigVersion); err != nil {
		return ValidFailWith(errors.New("version string parse fail"), err)
	} else if result := ConfVersion.checkVersion(version); result != AllMatch {
		return ValidFail(fmt.Errorf("config version mismatch, expected %s, got %s", ConfVersion.String(), version.String()))
	}
	if result := c.Database.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.Server.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}

// ApplyEnv overrides secrets from the environment. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(prefix string, lookup func(key string) (string, bool)) {
	if value, ok := lookup(prefix + "DB_HOST"); ok {
		c.Database.Host = value
	}
	if value, ok := lookup(prefix + "DB_USERNAME"); ok {
		c.Database.Username = value
	}
	if value, ok := lookup(prefix + "DB_PASSWORD"); ok {
		c.Database.Password = value
	}
	if value, ok := lookup(prefix + "DB_DATABASE"); ok {
		c.Database.Database = value
	}
	if value, ok := lookup(prefix + "SESSION_SECRET"); ok {
		c.Server.HttpServer.Session.Secret = value
	}
	if value, ok := lookup(prefix + "SMTP_PASSWORD"); ok {
		c.Server.HttpServer.Email.Password = value
	}
}
