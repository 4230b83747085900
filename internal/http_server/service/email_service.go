// Package service
package service

import (
	"errors"
	"fmt"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/config"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
	"github.com/half-nothing/airline-staff-portal/internal/utils"
	"gopkg.in/gomail.v2"
	"html/template"
	"strings"
)

var (
	ErrRenderingTemplate      = errors.New("error rendering template")
	ErrTemplateNotInitialized = errors.New("error template not initialized")
)

const delayTemplate = `<p>Dear customer,</p>
<p>{{.AirlineName}} flight <strong>{{.FlightNum}}</strong> has been delayed.</p>
<p>We apologise for the inconvenience and will keep you informed of the new departure time.</p>
<p>{{.SenderName}}</p>`

type EmailService struct {
	logger        log.LoggerInterface
	config        *config.EmailConfig
	delayTemplate *template.Template
}

type emailDelayData struct {
	AirlineName string
	FlightNum   string
	SenderName  string
}

func NewEmailService(logger log.LoggerInterface, config *config.EmailConfig) *EmailService {
	return &EmailService{
		logger:        logger,
		config:        config,
		delayTemplate: template.Must(template.New("delay").Parse(delayTemplate)),
	}
}

func (emailService *EmailService) Enabled() bool {
	return emailService.config.Enabled && emailService.config.EmailServer != nil
}

func (emailService *EmailService) RenderTemplate(template *template.Template, data interface{}) (string, error) {
	if template == nil {
		return "", ErrTemplateNotInitialized
	}
	var sb strings.Builder
	if err := template.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// SendDelayNotification sends one message per recipient over a single smtp connection
// and reports every recipient that failed.
func (emailService *EmailService) SendDelayNotification(notice *DelayNotice) error {
	if !emailService.Enabled() {
		return nil
	}
	message, err := emailService.RenderTemplate(emailService.delayTemplate, &emailDelayData{
		AirlineName: notice.AirlineName,
		FlightNum:   notice.FlightNum,
		SenderName:  emailService.config.SenderName,
	})
	if err != nil {
		emailService.logger.WarnF("Error rendering delay notification template: %v", err)
		return ErrRenderingTemplate
	}

	recipients := utils.Filter(notice.Recipients, func(recipient string) bool {
		return strings.TrimSpace(recipient) != ""
	})
	if len(recipients) == 0 {
		return nil
	}

	sender, err := emailService.config.EmailServer.Dial()
	if err != nil {
		return err
	}
	defer func() { _ = sender.Close() }()

	var errs []error
	for _, recipient := range recipients {
		m := gomail.NewMessage()
		m.SetAddressHeader("From", emailService.config.Username, emailService.config.SenderName)
		m.SetHeader("To", recipient)
		m.SetHeader("Subject", fmt.Sprintf("Flight %s delayed", notice.FlightNum))
		m.SetBody("text/html", message)
		if err := gomail.Send(sender, m); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", recipient, err))
		}
	}
	emailService.logger.InfoF("Sent delay notification of %s to %d/%d customers",
		notice.FlightNum, len(recipients)-len(errs), len(recipients))
	return errors.Join(errs...)
}
