package services

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"finance-ledger/internal/config"
)

var (
	ErrNoRecipients   = errors.New("email has no recipients")
	ErrInvalidAddress = errors.New("email address contains a line break")
)

// Email is a single HTML message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
}

type smtpSendFunc func(ctx context.Context, addr string, auth smtp.Auth, from string, to []string, msg []byte) error

// SMTPEmailSender delivers mail through an SMTP relay with PLAIN auth,
// upgrading to TLS when the relay offers STARTTLS
type SMTPEmailSender struct {
	cfg    config.EmailConfig
	send   smtpSendFunc
	logger *slog.Logger
}

func NewSMTPEmailSender(cfg config.EmailConfig, logger *slog.Logger) *SMTPEmailSender {
	return &SMTPEmailSender{
		cfg:    cfg,
		send:   sendMail,
		logger: logger,
	}
}

func (s *SMTPEmailSender) Send(ctx context.Context, email Email) error {
	if len(email.To) == 0 {
		return ErrNoRecipients
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := net.JoinHostPort(s.cfg.SMTPHost, strconv.Itoa(s.cfg.SMTPPort))

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)
	}

	if err := s.send(ctx, addr, auth, envelopeAddress(s.cfg.From), email.To, buildMessage(s.cfg.From, email)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.DebugContext(ctx, "email sent",
		slog.String("subject", email.Subject),
		slog.Int("recipients", len(email.To)),
	)
	return nil
}

// LogEmailSender stands in for SMTP when delivery is disabled; it only logs
type LogEmailSender struct {
	logger *slog.Logger
}

func NewLogEmailSender(logger *slog.Logger) *LogEmailSender {
	return &LogEmailSender{logger: logger}
}

func (s *LogEmailSender) Send(ctx context.Context, email Email) error {
	if len(email.To) == 0 {
		return ErrNoRecipients
	}

	s.logger.InfoContext(ctx, "email delivery disabled, message dropped",
		slog.String("subject", email.Subject),
		slog.Any("to", email.To),
	)
	return nil
}

// NewEmailSender picks the SMTP sender when email is enabled
func NewEmailSender(cfg config.EmailConfig, logger *slog.Logger) EmailSenderInterface {
	if !cfg.Enabled {
		return NewLogEmailSender(logger)
	}
	return NewSMTPEmailSender(cfg, logger)
}

// sendMail is smtp.SendMail bound to ctx: the dial honours cancellation and
// the connection deadline follows the context for the rest of the exchange.
func sendMail(ctx context.Context, addr string, auth smtp.Auth, from string, to []string, msg []byte) (err error) {
	for _, a := range append([]string{from}, to...) {
		if strings.ContainsAny(a, "\r\n") {
			return ErrInvalidAddress
		}
	}

	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Unix(1, 0))
	})
	defer stop()

	// Report the context error instead of the i/o timeout it caused. The
	// connection deadline can fire before the context records its own.
	defer func() {
		if err == nil {
			return
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		} else if deadline, ok := ctx.Deadline(); ok && !time.Now().Before(deadline) {
			err = context.DeadlineExceeded
		}
	}()

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
	if auth != nil {
		if ok, _ := c.Extension("AUTH"); !ok {
			return errors.New("smtp: server doesn't support AUTH")
		}
		if err := c.Auth(auth); err != nil {
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

// headerValue folds a value onto one line so it cannot start a new header
func headerValue(v string) string {
	return strings.Join(strings.FieldsFunc(v, func(r rune) bool {
		return r == '\r' || r == '\n'
	}), " ")
}

func buildMessage(from string, email Email) []byte {
	to := make([]string, len(email.To))
	for i, addr := range email.To {
		to[i] = headerValue(addr)
	}

	var b strings.Builder
	b.WriteString("From: " + headerValue(from) + "\r\n")
	b.WriteString("To: " + strings.Join(to, ", ") + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", headerValue(email.Subject)) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(email.HTMLBody)
	return []byte(b.String())
}

// envelopeAddress extracts the bare address from "Name <addr>"
func envelopeAddress(from string) string {
	start := strings.LastIndex(from, "<")
	end := strings.LastIndex(from, ">")
	if start >= 0 && end > start {
		return from[start+1 : end]
	}
	return strings.TrimSpace(from)
}
