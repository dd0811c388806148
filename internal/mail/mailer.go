package mail

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/africamarket/africa-market-api/internal/config"
)

// sendTimeout bounds one SMTP delivery. A stuck upstream must never
// hold an order-path goroutine for longer than this.
const sendTimeout = 30 * time.Second

// Result is what callers get back. Mail is best-effort: Send never
// panics and never returns a Go error, the outcome is carried here.
type Result struct {
	OK  bool
	Err string
}

func failure(err error) Result {
	return Result{OK: false, Err: err.Error()}
}

type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	fromName string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.MailFrom,
		fromName: cfg.MailFromName,
	}
}

// Send delivers one HTML message, bounded by sendTimeout.
func (m *Mailer) Send(to, subject, htmlBody string) Result {
	done := make(chan error, 1)
	go func() {
		done <- m.deliver(to, subject, htmlBody)
	}()

	select {
	case err := <-done:
		if err != nil {
			return failure(err)
		}
		return Result{OK: true}
	case <-time.After(sendTimeout):
		return Result{OK: false, Err: fmt.Sprintf("send timeout after %s", sendTimeout)}
	}
}

func (m *Mailer) deliver(to, subject, htmlBody string) error {
	msg := m.buildMessage(to, subject, htmlBody)
	addr := net.JoinHostPort(m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	// Port 465 is implicit TLS; everything else goes through STARTTLS.
	if m.port != "465" {
		return smtp.SendMail(addr, auth, m.from, []string{to}, msg)
	}

	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.host})
	if err != nil {
		return fmt.Errorf("mail: tls dial: %w", err)
	}
	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("mail: smtp client: %w", err)
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("mail: auth: %w", err)
		}
	}
	if err := client.Mail(m.from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func (m *Mailer) buildMessage(to, subject, htmlBody string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %q <%s>\r\n", m.fromName, m.from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}
