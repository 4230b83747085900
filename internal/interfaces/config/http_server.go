// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
)

type HttpServerConfig struct {
	Host          string           `json:"host"`
	Port          uint             `json:"port"`
	Address       string           `json:"-"`
	ProxyType     int              `json:"proxy_type"`
	BodyLimit     string           `json:"body_limit"`
	EnableMetrics bool             `json:"enable_metrics"`
	MetricsListen string           `json:"metrics_listen"`
	Limits        *HttpServerLimit `json:"limits"`
	Session       *SessionConfig   `json:"session"`
	Email         *EmailConfig     `json:"email"`
	SSL           *SSLConfig       `json:"ssl"`
}

func defaultHttpServerConfig() *HttpServerConfig {
	return &HttpServerConfig{
		Host:          "0.0.0.0",
		Port:          5000,
		ProxyType:     0,
		BodyLimit:     "1MB",
		EnableMetrics: false,
		MetricsListen: "127.0.0.1:9464",
		Limits:        defaultHttpServerLimit(),
		Session:       defaultSessionConfig(),
		Email:         defaultEmailConfig(),
		SSL:           defaultSSLConfig(),
	}
}

func (config *HttpServerConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if result := checkPort(config.Port); result.IsFail() {
		return result
	}

	config.Address = fmt.Sprintf("%s:%d", config.Host, config.Port)

	if config.BodyLimit == "" {
		logger.WarnF("body_limit is empty, where the length of the request body is not restricted. This is a very dangerous behavior")
	}

	if config.EnableMetrics {
		if config.MetricsListen == "" {
			return ValidFail(errors.New("metrics_listen must be set when enable_metrics is on"))
		}
		if config.MetricsListen == config.Address {
			return ValidFail(fmt.Errorf("metrics_listen %s must differ from the portal address", config.MetricsListen))
		}
	}

	if result := config.SSL.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.Limits.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.Session.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.Email.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
