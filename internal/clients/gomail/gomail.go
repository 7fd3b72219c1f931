package gomail

import (
	"crypto/tls"
	"errors"
	"fmt"
	"regexp"

	"gopkg.in/gomail.v2"

	"github.com/samandr77/guardbook/pkg/config"
)

var (
	ErrNotConfigured = errors.New("mailer is not configured")
	ErrNoRecipients  = errors.New("no recipients")

	htmlRegexp = regexp.MustCompile("<[^>]+>")
)

type Client struct {
	cfg    config.Mailer
	dialer *gomail.Dialer
}

func New(cfg config.Mailer) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &Client{
		cfg:    cfg,
		dialer: dialer,
	}
}

func (c *Client) SendMessage(subject, message string, recipients []string, contentType string) error {
	if c.cfg.Host == "" {
		return ErrNotConfigured
	}

	if len(recipients) == 0 {
		return ErrNoRecipients
	}

	msg := c.compose(subject, message, recipients, contentType)

	err := c.dialer.DialAndSend(msg)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (c *Client) compose(subject, message string, recipients []string, contentType string) *gomail.Message {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", c.cfg.From, c.cfg.FromName)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)

	switch contentType {
	case "text/html", "text/plain":
		msg.SetBody(contentType, message)
	default:
		if isHTML(message) {
			msg.SetBody("text/html", message)
		} else {
			msg.SetBody("text/plain", message)
		}
	}

	return msg
}

func isHTML(message string) bool {
	return htmlRegexp.MatchString(message)
}
