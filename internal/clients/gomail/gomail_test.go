package gomail

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/guardbook/pkg/config"
)

func TestClient_compose(t *testing.T) {
	t.Parallel()

	c := New(config.Mailer{Host: "smtp.example.com", Port: 587, From: "payroll@example.com", FromName: "Guardbook"})

	msg := c.compose("Wage posted", "Guard ID: 7, Salary for the day: KES 1000", []string{"hr@example.com"}, "")

	require.Equal(t, []string{"Wage posted"}, msg.GetHeader("Subject"))
	require.Equal(t, []string{"hr@example.com"}, msg.GetHeader("To"))
	require.Equal(t, []string{`"Guardbook" <payroll@example.com>`}, msg.GetHeader("From"))

	var buf bytes.Buffer

	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Content-Type: text/plain; charset=UTF-8")
}

func TestIsHTML(t *testing.T) {
	t.Parallel()

	require.True(t, isHTML("<p>paid</p>"))
	require.False(t, isHTML("paid 5 < 6"))
}

func TestClient_SendMessage_Guards(t *testing.T) {
	t.Parallel()

	err := New(config.Mailer{}).SendMessage("s", "m", []string{"a@example.com"}, "")
	require.ErrorIs(t, err, ErrNotConfigured)

	err = New(config.Mailer{Host: "smtp.example.com"}).SendMessage("s", "m", nil, "")
	require.ErrorIs(t, err, ErrNoRecipients)
}
