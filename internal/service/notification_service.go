package service

import (
	"fmt"

	"doctors-portal-server/config"
	"doctors-portal-server/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// NotificationService sends appointment confirmation emails. Delivery is
// fire-and-forget: it runs off the request path and failures are only
// logged, never surfaced to the booking response.
type NotificationService struct {
	cfg config.SMTPConfig
	log *logrus.Logger
}

func NewNotificationService(cfg config.SMTPConfig, log *logrus.Logger) *NotificationService {
	return &NotificationService{cfg: cfg, log: log}
}

// Enabled reports whether an SMTP host is configured. When it is not,
// BookingConfirmed is a no-op.
func (s *NotificationService) Enabled() bool {
	return s.cfg.Host != ""
}

// BookingConfirmed dispatches a confirmation email for a freshly created
// booking without blocking the caller.
func (s *NotificationService) BookingConfirmed(booking *entity.Booking) {
	if !s.Enabled() {
		return
	}

	go func() {
		if err := s.send(booking); err != nil {
			s.log.Warnf("Failed to send booking confirmation to %s: %+v", booking.Patient, err)
		}
	}()
}

func (s *NotificationService) send(booking *entity.Booking) error {
	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", booking.Patient)
	m.SetHeader("Subject", fmt.Sprintf("Your appointment for %s is confirmed", booking.Treatment))
	m.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\nYour appointment for %s on %s at %s is confirmed.\n\nDoctors Portal",
		booking.PatientName, booking.Treatment, booking.Date, booking.Slot,
	))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	return d.DialAndSend(m)
}
