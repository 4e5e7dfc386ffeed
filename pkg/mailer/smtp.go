package mailer

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"go-leadform-backend/config"
)

// SMTPMailer sends mail over authenticated SMTP. It is constructed once from
// config; an incomplete configuration is reported by Send, not at startup, so
// the service can boot and surface the problem per request instead.
type SMTPMailer struct {
	host     string
	port     string
	secure   bool
	username string
	password string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     strings.TrimSpace(cfg.SMTPHost),
		port:     strings.TrimSpace(cfg.SMTPPort),
		secure:   cfg.SMTPSecure,
		username: strings.TrimSpace(cfg.SMTPUser),
		password: cfg.SMTPPass,
	}
}

// IsConfigured checks if the mailer has valid SMTP configuration
func (m *SMTPMailer) IsConfigured() bool {
	return m.host != "" && m.username != "" && m.password != ""
}

// Send delivers msg as a plain-text email.
func (m *SMTPMailer) Send(msg Message) error {
	if !m.IsConfigured() {
		return fmt.Errorf("smtp config missing")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", msg.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Text)

	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	if m.secure {
		return m.sendTLS(addr, auth, msg.To, []byte(b.String()))
	}

	if err := smtp.SendMail(addr, auth, m.username, []string{msg.To}, []byte(b.String())); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// sendTLS handles implicit-TLS ports (typically 465), where the connection is
// encrypted before the SMTP handshake rather than upgraded via STARTTLS.
func (m *SMTPMailer) sendTLS(addr string, auth smtp.Auth, to string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.host})
	if err != nil {
		return fmt.Errorf("failed to dial smtp server: %w", err)
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to create smtp client: %w", err)
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth failed: %w", err)
	}
	if err := client.Mail(m.username); err != nil {
		return fmt.Errorf("smtp mail command failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt command failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data command failed: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		w.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message: %w", err)
	}

	return client.Quit()
}
