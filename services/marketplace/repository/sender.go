package repository

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"yumi/domain"

	"gorm.io/gorm"
)

const defaultSMTPTimeout = 30 * time.Second

type sendMailFunc func(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error

var headerBreaks = strings.NewReplacer("\r", "", "\n", "")

type senderRepository struct {
	db          *gorm.DB
	client      smtp.Auth
	smtpAddress string
	emailSender string
	sendMail    sendMailFunc
}

func NewSenderRepository(db *gorm.DB, client smtp.Auth, smtpAddress, emailSender string) domain.Notifier {
	return &senderRepository{
		db:          db,
		client:      client,
		smtpAddress: smtpAddress,
		emailSender: emailSender,
		sendMail:    sendMailContext,
	}
}

// AppointmentBooked emails the parent and the expert.
func (m *senderRepository) AppointmentBooked(ctx context.Context, appt *domain.Appointment) error {
	var users []domain.User
	err := m.db.WithContext(ctx).
		Where("id IN ?", []int{appt.ExpertID, appt.ParentID}).
		Find(&users).Error
	if err != nil {
		return fmt.Errorf("could not fetch appointment participants: %w", err)
	}

	var parent, expert *domain.User
	for i := range users {
		switch users[i].ID {
		case appt.ParentID:
			parent = &users[i]
		case appt.ExpertID:
			expert = &users[i]
		}
	}
	if parent == nil || expert == nil {
		return domain.ErrNotFound
	}

	when := fmt.Sprintf("%s %s", domain.FormatDate(appt.Date), appt.Time)
	subject := fmt.Sprintf("YUMI consultation confirmed for %s", when)

	var b strings.Builder
	fmt.Fprintf(&b, "Consultation #%d is confirmed.\n\n", appt.ID)
	fmt.Fprintf(&b, "Expert: %s\n", expert.Name)
	fmt.Fprintf(&b, "Parent: %s\n", parent.Name)
	fmt.Fprintf(&b, "Child: %s (%d)\n", appt.ChildName, appt.ChildAge)
	fmt.Fprintf(&b, "When: %s\n", when)
	fmt.Fprintf(&b, "Topic: %s\n", appt.Topic)
	body := b.String()

	for _, to := range []string{parent.Email, expert.Email} {
		if err := m.sendEmail(ctx, to, subject, body); err != nil {
			return err
		}
	}
	return nil
}

func (m *senderRepository) sendEmail(ctx context.Context, to, subject, body string) error {
	msg := "From: " + headerBreaks.Replace(m.emailSender) + "\r\n" +
		"To: " + headerBreaks.Replace(to) + "\r\n" +
		"Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n\r\n" +
		body

	if err := m.sendMail(ctx, m.smtpAddress, m.client, m.emailSender, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// sendMailContext does what smtp.SendMail does, but the dial and every
// read and write share the deadline of ctx.
func sendMailContext(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(defaultSMTPTimeout)
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := conn.SetDeadline(deadline); err != nil {
		return err
	}
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	c, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: host}); err != nil {
			return err
		}
	}
	if a != nil {
		if ok, _ := c.Extension("AUTH"); !ok {
			return fmt.Errorf("smtp server %s does not support AUTH", host)
		}
		if err := c.Auth(a); err != nil {
			return err
		}
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}
