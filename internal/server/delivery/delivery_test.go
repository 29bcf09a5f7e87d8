package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu   sync.Mutex
	sent []Channel
	msgs []Message
	err  error
	ctxs []context.Context
}

func (r *recorder) Send(ctx context.Context, ch Channel, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, ch)
	r.msgs = append(r.msgs, msg)
	r.ctxs = append(r.ctxs, ctx)
	return r.err
}

func TestParseChannel(t *testing.T) {
	tests := []struct {
		in      string
		want    Channel
		wantErr bool
	}{
		{"bob@example.com", Channel{KindEmail, "bob@example.com"}, false},
		{"  bob@example.com ", Channel{KindEmail, "bob@example.com"}, false},
		{"+15550001234", Channel{KindSMS, "+15550001234"}, false},
		{"+1 555-000-1234", Channel{KindSMS, "+15550001234"}, false},
		{"5550001234", Channel{}, true},
		{"bob", Channel{}, true},
		{"", Channel{}, true},
	}
	for _, tt := range tests {
		got, err := ParseChannel(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, common.ErrContactInvalid, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestRouter(t *testing.T) {
	email, sms := &recorder{}, &recorder{}
	r := NewRouter().Handle(KindEmail, email).Handle(KindSMS, sms)

	require.NoError(t, r.Send(context.Background(), Channel{KindSMS, "+15550001234"}, Message{}))
	assert.Len(t, sms.sent, 1)
	assert.Empty(t, email.sent)

	assert.Error(t, NewRouter().Send(context.Background(), Channel{KindEmail, "x@y.z"}, Message{}))
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, logging.NewDiscard())

	err := c.Send(context.Background(), Channel{KindEmail, "bob@example.com"}, Message{Subject: "Verify", Body: "Open the link", Link: "http://localhost/auth/verify?token=abc"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "To: bob@example.com")
	assert.Contains(t, buf.String(), "token=abc")
}

type relaySession struct {
	envelope []string
	data     string
}

type relay struct {
	host     string
	port     int
	sessions chan relaySession
	closed   chan struct{}
}

// startRelay serves a single SMTP conversation on loopback. A stalled relay
// accepts the connection and never greets.
func startRelay(t *testing.T, stalled bool) *relay {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	addr := ln.Addr().(*net.TCPAddr)
	r := &relay{host: "127.0.0.1", port: addr.Port, sessions: make(chan relaySession, 1), closed: make(chan struct{})}

	go func() {
		defer close(r.closed)
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		if stalled {
			_, _ = io.Copy(io.Discard, conn)
			return
		}

		tp := textproto.NewConn(conn)
		var s relaySession
		_ = tp.PrintfLine("220 relay ready")
		for {
			line, err := tp.ReadLine()
			if err != nil {
				return
			}
			cmd := strings.ToUpper(line)
			switch {
			case strings.HasPrefix(cmd, "EHLO"):
				_ = tp.PrintfLine("250-relay")
				_ = tp.PrintfLine("250 8BITMIME")
			case strings.HasPrefix(cmd, "RCPT TO:<NOBODY@"):
				_ = tp.PrintfLine("550 no such user")
			case strings.HasPrefix(cmd, "MAIL FROM"), strings.HasPrefix(cmd, "RCPT TO"):
				s.envelope = append(s.envelope, line)
				_ = tp.PrintfLine("250 ok")
			case cmd == "DATA":
				_ = tp.PrintfLine("354 go ahead")
				b, err := tp.ReadDotBytes()
				if err != nil {
					return
				}
				s.data = string(b)
				_ = tp.PrintfLine("250 queued")
			case cmd == "QUIT":
				r.sessions <- s
				_ = tp.PrintfLine("221 bye")
				return
			default:
				_ = tp.PrintfLine("502 unsupported")
			}
		}
	}()
	return r
}

func TestSMTP(t *testing.T) {
	r := startRelay(t, false)
	s := NewSMTP(SMTPConfig{Host: r.host, Port: r.port, From: "noreply@example.com"})

	err := s.Send(context.Background(), Channel{KindEmail, "bob@example.com"}, Message{Subject: "Hi\r\nBcc: evil@example.com", Body: "b", Link: "l"})
	require.NoError(t, err)

	got := <-r.sessions
	require.Len(t, got.envelope, 2)
	assert.Contains(t, got.envelope[0], "<noreply@example.com>")
	assert.Contains(t, got.envelope[1], "<bob@example.com>")
	assert.Contains(t, got.data, "Subject: HiBcc: evil@example.com\n")
	assert.NotContains(t, got.data, "\nBcc:")
	assert.Contains(t, got.data, "To: bob@example.com")

	assert.Error(t, s.Send(context.Background(), Channel{KindSMS, "+15550001234"}, Message{}))
}

func TestSMTP_RecipientRejected(t *testing.T) {
	r := startRelay(t, false)
	s := NewSMTP(SMTPConfig{Host: r.host, Port: r.port, From: "noreply@example.com"})

	err := s.Send(context.Background(), Channel{KindEmail, "nobody@example.com"}, Message{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such user")
}

func TestSMTP_Unreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	s := NewSMTP(SMTPConfig{Host: "127.0.0.1", Port: port})
	assert.Error(t, s.Send(context.Background(), Channel{KindEmail, "bob@example.com"}, Message{}))
}

func TestSMTP_DeadlineClosesStalledRelay(t *testing.T) {
	r := startRelay(t, true)
	s := NewSMTP(SMTPConfig{Host: r.host, Port: r.port})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := s.Send(ctx, Channel{KindEmail, "bob@example.com"}, Message{})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)

	select {
	case <-r.closed:
	case <-time.After(2 * time.Second):
		t.Fatal("relay connection left open after deadline")
	}
}

func TestSMTP_CancelClosesStalledRelay(t *testing.T) {
	r := startRelay(t, true)
	s := NewSMTP(SMTPConfig{Host: r.host, Port: r.port})

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	err := s.Send(ctx, Channel{KindEmail, "bob@example.com"}, Message{})
	assert.ErrorIs(t, err, context.Canceled)

	select {
	case <-r.closed:
	case <-time.After(2 * time.Second):
		t.Fatal("relay connection left open after cancel")
	}
}

func TestWebhook(t *testing.T) {
	var got webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		if got.To == "+10000000000" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	wh := NewWebhook(srv.URL, srv.Client())
	require.NoError(t, wh.Send(context.Background(), Channel{KindSMS, "+15550001234"}, Message{Body: "code", Link: "http://x"}))
	assert.Equal(t, "+15550001234", got.To)
	assert.True(t, strings.HasSuffix(got.Text, "http://x"))

	assert.Error(t, wh.Send(context.Background(), Channel{KindSMS, "+10000000000"}, Message{}))
}

func TestDispatcher(t *testing.T) {
	rec := &recorder{}
	d := NewDispatcher(rec, time.Second, logging.NewDiscard())

	ctx, cancel := context.WithCancel(context.Background())
	d.Dispatch(ctx, Channel{KindEmail, "bob@example.com"}, Message{Subject: "one"})
	cancel()
	d.Dispatch(ctx, Channel{KindEmail, "bob@example.com"}, Message{Subject: "two"})
	d.Wait()

	require.Len(t, rec.msgs, 2)
	for _, c := range rec.ctxs {
		_, hasDeadline := c.Deadline()
		assert.True(t, hasDeadline)
	}

	failing := &recorder{err: errors.New("down")}
	d = NewDispatcher(failing, time.Second, logging.NewDiscard())
	d.Dispatch(context.Background(), Channel{KindSMS, "+15550001234"}, Message{})
	d.Wait()
	assert.Len(t, failing.sent, 1)
}
