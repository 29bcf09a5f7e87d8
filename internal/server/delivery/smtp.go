package delivery

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
)

type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

type dialFunc func(ctx context.Context, network, addr string) (net.Conn, error)

// SMTP sends e-mail through a relay with PLAIN auth when credentials are set.
// The connection is bound to the send context: its deadline becomes the
// socket deadline and cancellation closes the socket.
type SMTP struct {
	cfg  SMTPConfig
	dial dialFunc
	tls  *tls.Config
}

func NewSMTP(cfg SMTPConfig) *SMTP {
	return &SMTP{
		cfg:  cfg,
		dial: (&net.Dialer{}).DialContext,
		tls:  &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12},
	}
}

func (s *SMTP) Send(ctx context.Context, ch Channel, msg Message) error {
	if ch.Kind != KindEmail {
		return fmt.Errorf("smtp cannot deliver to %q", ch.Kind)
	}

	if err := s.send(ctx, ch.Address, compose(s.cfg.From, ch.Address, msg)); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("smtp send: %w", ctx.Err())
		}
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (s *SMTP) send(ctx context.Context, to string, body []byte) error {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	conn, err := s.dial(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	if d, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(d); err != nil {
			return err
		}
	}
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(s.tls); err != nil {
			return err
		}
	}
	if s.cfg.User != "" {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)); err != nil {
				return err
			}
		}
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

func compose(from, to string, msg Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + strings.NewReplacer("\r", "", "\n", "").Replace(msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(msg.Body + "\r\n\r\n" + msg.Link + "\r\n")
	return []byte(b.String())
}
