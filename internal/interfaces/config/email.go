// Package config
package config

import (
	"errors"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
	"gopkg.in/gomail.v2"
)

type EmailConfig struct {
	Enabled     bool           `json:"enabled"`
	Host        string         `json:"host"`
	Port        int            `json:"port"`
	EmailServer *gomail.Dialer `json:"-"`
	Username    string         `json:"username"`
	Password    string         `json:"password"`
	SenderName  string         `json:"sender_name"`
}

func defaultEmailConfig() *EmailConfig {
	return &EmailConfig{
		Enabled:    false,
		Host:       "smtp.example.com",
		Port:       465,
		Username:   "noreply@example.com",
		Password:   "",
		SenderName: "Flight Operations",
	}
}

func (config *EmailConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if !config.Enabled {
		config.EmailServer = nil
		return ValidPass()
	}

	config.EmailServer = gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	dial, err := config.EmailServer.Dial()
	if err != nil {
		return ValidFailWith(errors.New("connecting to smtp server fail"), err)
	}
	_ = dial.Close()
	logger.InfoF("SMTP server %s:%d reachable, delay notifications enabled", config.Host, config.Port)

	return ValidPass()
}
