package service

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStubBot mengarahkan klien bot ke server Bot API palsu dan merekam
// request method terakhir yang diterimanya.
func newStubBot(t *testing.T) (*BotSender, *string, *url.Values) {
	t.Helper()
	var lastMethod string
	var lastParams url.Values

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if strings.HasSuffix(r.URL.Path, "/getMe") {
			fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"absenku","username":"absenku_bot"}}`)
			return
		}
		parts := strings.Split(r.URL.Path, "/")
		lastMethod = parts[len(parts)-1]
		lastParams = r.Form
		fmt.Fprint(w, `{"ok":true,"result":true}`)
	}))
	t.Cleanup(ts.Close)

	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint("TOKEN", ts.URL+"/bot%s/%s")
	require.NoError(t, err)
	return &BotSender{Bot: bot}, &lastMethod, &lastParams
}

func TestSetWebhookSendsSecretToken(t *testing.T) {
	sender, method, params := newStubBot(t)

	require.NoError(t, sender.SetWebhook("https://example.com/adapters/telegram/webhook", "rahasia"))
	assert.Equal(t, "setWebhook", *method)
	assert.Equal(t, "https://example.com/adapters/telegram/webhook", params.Get("url"))
	assert.Equal(t, "rahasia", params.Get("secret_token"))
}

func TestSetWebhookOmitsEmptySecret(t *testing.T) {
	sender, method, params := newStubBot(t)

	require.NoError(t, sender.SetWebhook("https://example.com/webhook", ""))
	assert.Equal(t, "setWebhook", *method)
	assert.False(t, params.Has("secret_token"))
}

func TestDeleteWebhook(t *testing.T) {
	sender, method, _ := newStubBot(t)

	require.NoError(t, sender.DeleteWebhook())
	assert.Equal(t, "deleteWebhook", *method)
}
