package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"servicedesk/internal/domain/servicerequest"
	vo "servicedesk/internal/domain/servicerequest/valueobjects"
	"servicedesk/internal/shared/config"
	"servicedesk/internal/shared/logger"
)

// Notifier sends customer-facing mail when a service request changes status.
type Notifier interface {
	NotifyStatusChange(req *servicerequest.ServiceRequest, previous vo.Status) error
}

// SMTPNotifier delivers notifications through a plain SMTP relay.
type SMTPNotifier struct {
	dialer      *gomail.Dialer
	fromAddress string
	fromName    string
	logger      logger.Interface
}

func NewSMTPNotifier(cfg *config.EmailConfig) *SMTPNotifier {
	return &SMTPNotifier{
		dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		logger:      logger.NewLogger().With("component", "email"),
	}
}

func (n *SMTPNotifier) NotifyStatusChange(req *servicerequest.ServiceRequest, previous vo.Status) error {
	if req.Status() == previous {
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.fromAddress, n.fromName)
	m.SetHeader("To", req.CustomerContact())
	m.SetHeader("Subject", fmt.Sprintf("Service request %s is now %s", req.SID(), req.Status()))
	m.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\nYour service request for %s (serial %s) moved from %s to %s.\n",
		req.CustomerName(), req.ProductName(), req.SerialNumber(), previous, req.Status(),
	))

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send status notification: %w", err)
	}

	n.logger.Infow("status notification sent",
		"sid", req.SID(),
		"from_status", previous.String(),
		"to_status", req.Status().String())

	return nil
}

// NoopNotifier is used when email delivery is disabled.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

func (n *NoopNotifier) NotifyStatusChange(*servicerequest.ServiceRequest, vo.Status) error {
	return nil
}
