// Package config
package config

import (
	"errors"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
	"github.com/thanhpk/randstr"
	"time"
)

type SessionConfig struct {
	Secret          string        `json:"secret"`
	ExpiresTime     string        `json:"expires_time"`
	ExpiresDuration time.Duration `json:"-"`
	SecureCookie    bool          `json:"secure_cookie"`
}

func defaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		Secret:       randstr.String(64),
		ExpiresTime:  "8h",
		SecureCookie: false,
	}
}

func (config *SessionConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.ExpiresTime); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.session.expires_time"), err)
	} else {
		config.ExpiresDuration = duration
	}

	if config.Secret == "" {
		config.Secret = randstr.String(64)
		logger.Debug("Session secret is empty, generated a random one; sessions will not survive a restart")
	}

	return ValidPass()
}
