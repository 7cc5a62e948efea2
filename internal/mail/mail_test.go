package mail

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

func restoreDial() {
	dialAndSend = func(ctx context.Context, c *gomail.Client, msgs ...*gomail.Msg) error {
		return c.DialAndSendWithContext(ctx, msgs...)
	}
}

func TestBuildMsg(t *testing.T) {
	m, err := buildMsg("info@jdgkbsi.ph", Message{
		To:      []string{"sales@jdgkbsi.ph"},
		ReplyTo: "juan@example.com",
		Subject: "New contact",
		Body:    "hello",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	require.Contains(t, raw, "Subject: New contact")
	require.Contains(t, raw, "<sales@jdgkbsi.ph>")
	require.Contains(t, raw, "Reply-To: <juan@example.com>")
	require.Contains(t, raw, "hello")

	_, err = buildMsg("info@jdgkbsi.ph", Message{})
	require.Error(t, err)

	_, err = buildMsg("not an address", Message{To: []string{"a@b.com"}})
	require.ErrorContains(t, err, "mail from")
}

func TestSMTPSender_Send(t *testing.T) {
	t.Cleanup(restoreDial)
	var sent []*gomail.Msg
	dialAndSend = func(_ context.Context, _ *gomail.Client, msgs ...*gomail.Msg) error {
		sent = append(sent, msgs...)
		return nil
	}

	s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: 2525, Username: "u", Password: "p", From: "info@jdgkbsi.ph"})
	require.NoError(t, s.Send(context.Background(), Message{To: []string{"a@b.com"}, Subject: "s", Body: "b"}))
	require.Len(t, sent, 1)

	dialAndSend = func(context.Context, *gomail.Client, ...*gomail.Msg) error { return errors.New("connection refused") }
	err := s.Send(context.Background(), Message{To: []string{"a@b.com"}})
	require.ErrorContains(t, err, "smtp send")
}

func TestLogSender(t *testing.T) {
	var buf bytes.Buffer
	s := LogSender{Logger: slog.New(slog.NewTextHandler(&buf, nil))}
	require.NoError(t, s.Send(context.Background(), Message{To: []string{"a@b.com"}, Subject: "hi"}))
	require.True(t, strings.Contains(buf.String(), "subject=hi"))
}

func TestFakeSender(t *testing.T) {
	f := &FakeSender{}
	require.Panics(t, func() { _ = f.Send(context.Background(), Message{}) })
}
