// Package service
package service

type EmailServiceInterface interface {
	Enabled() bool
	SendDelayNotification(notice *DelayNotice) error
}

type DelayNotice struct {
	AirlineName string
	FlightNum   string
	Recipients  []string
}
