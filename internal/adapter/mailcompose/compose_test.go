package mailcompose

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PAVAN4141/CA.ai/internal/config"
)

func TestGmail_Compose(t *testing.T) {
	t.Parallel()

	got := Gmail{}.Compose("sarah@techcorp.com", "Re: GST query", "Hi Sarah,\nfiled & done")
	assert.Equal(t,
		"https://mail.google.com/mail/?view=cm&fs=1&to=sarah%40techcorp.com&su=Re%3A%20GST%20query&body=Hi%20Sarah%2C%0Afiled%20%26%20done",
		got)

	u, err := url.Parse(got)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "sarah@techcorp.com", q.Get("to"))
	assert.Equal(t, "Re: GST query", q.Get("su"))
	assert.Equal(t, "Hi Sarah,\nfiled & done", q.Get("body"))
}

func TestMailto_Compose(t *testing.T) {
	t.Parallel()

	got := Mailto{}.Compose("a@b.com", "Re: x+y", "1 + 1")
	assert.Equal(t, "mailto:a%40b.com?subject=Re%3A%20x%2By&body=1%20%2B%201", got)
}

func TestNew(t *testing.T) {
	t.Parallel()

	c, err := New(config.MailConfig{Compose: "gmail"})
	require.NoError(t, err)
	assert.IsType(t, Gmail{}, c)

	c, err = New(config.MailConfig{Compose: "MAILTO"})
	require.NoError(t, err)
	assert.IsType(t, Mailto{}, c)

	_, err = New(config.MailConfig{Compose: "smtp"})
	assert.Error(t, err)
}
