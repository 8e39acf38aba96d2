package services

import (
	"context"
	"crypto/tls"
	"fmt"
	"html"
	"net/smtp"
	"strings"

	"github.com/petrobase/sitecms/internal/config"
	"github.com/petrobase/sitecms/internal/models"
	"github.com/petrobase/sitecms/pkg/logger"
	"gorm.io/gorm"
)

// NotificationService sends contact-message notification mail to the
// configured recipients.
type NotificationService struct {
	db   *gorm.DB
	smtp *config.SMTPConfig
}

func NewNotificationService(db *gorm.DB, smtpCfg *config.SMTPConfig) *NotificationService {
	return &NotificationService{db: db, smtp: smtpCfg}
}

// ProcessContactTask is the queue processor for contact notifications.
func (s *NotificationService) ProcessContactTask(ctx context.Context, task *ContactTask) error {
	if !s.smtp.Enabled || s.smtp.Host == "" {
		return nil
	}
	if len(s.smtp.To) == 0 {
		return nil
	}

	var message models.ContactMessage
	if err := s.db.First(&message, task.MessageID).Error; err != nil {
		return fmt.Errorf("load contact message %d: %w", task.MessageID, err)
	}

	subject := fmt.Sprintf("[PetroBase] Contact message from %s", message.Name)
	if message.Subject != "" {
		subject = fmt.Sprintf("[PetroBase] %s", message.Subject)
	}

	body := s.buildContactBody(&message)

	return s.sendEmail(s.smtp.To, subject, body)
}

func (s *NotificationService) buildContactBody(m *models.ContactMessage) string {
	var sb strings.Builder

	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString("<h2>New Contact Message</h2>")
	sb.WriteString("<table style=\"border-collapse: collapse; margin-bottom: 20px;\">")

	rows := []struct{ label, value string }{
		{"Name", m.Name},
		{"Email", m.Email},
		{"Phone", m.Phone},
		{"Subject", m.Subject},
		{"Received", m.CreatedAt.Format("2006-01-02 15:04")},
	}

	for _, r := range rows {
		if r.value == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("<tr><td style=\"padding: 8px; border: 1px solid #ddd; font-weight: bold;\">%s</td><td style=\"padding: 8px; border: 1px solid #ddd;\">%s</td></tr>",
			r.label, html.EscapeString(r.value)))
	}
	sb.WriteString("</table>")

	sb.WriteString("<h3>Message</h3>")
	sb.WriteString(fmt.Sprintf("<div style=\"background: #f9f9f9; padding: 16px; border-radius: 4px; white-space: pre-wrap;\">%s</div>",
		html.EscapeString(m.Message)))

	sb.WriteString("</body></html>")

	return sb.String()
}

func (s *NotificationService) sendEmail(to []string, subject, body string) error {
	from := s.smtp.From
	if from == "" {
		from = s.smtp.Username
	}

	headers := make(map[string]string)
	headers["From"] = from
	headers["To"] = strings.Join(to, ",")
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	var message strings.Builder
	for k, v := range headers {
		message.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	message.WriteString("\r\n")
	message.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.smtp.Host, s.smtp.Port)

	var auth smtp.Auth
	if s.smtp.Username != "" && s.smtp.Password != "" {
		auth = smtp.PlainAuth("", s.smtp.Username, s.smtp.Password, s.smtp.Host)
	}

	var err error
	if s.smtp.UseTLS {
		err = s.sendEmailTLS(addr, auth, from, to, message.String())
	} else {
		err = smtp.SendMail(addr, auth, from, to, []byte(message.String()))
	}

	if err != nil {
		logger.Infof("[Email] Failed to send notification: %v", err)
		return err
	}

	logger.Infof("[Email] Sent contact notification to %v", to)
	return nil
}

func (s *NotificationService) sendEmailTLS(addr string, auth smtp.Auth, from string, to []string, message string) error {
	tlsConfig := &tls.Config{
		ServerName: s.smtp.Host,
	}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.smtp.Host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(from); err != nil {
		return err
	}

	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}

	if _, err := w.Write([]byte(message)); err != nil {
		return err
	}

	return w.Close()
}
