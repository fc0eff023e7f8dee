package handlers_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MriyaDevelopment/pumba-server/messages"
)

func TestSendAlertIncludesProfileSummary(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "anna@example.com", "Anna")

	rec, out := s.post(t, "/sendAlert", token, echo.Map{"text": "App crashed on startup"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, messages.AlertSendSuccess, out["success"])

	require.Len(t, s.chat.sent, 1)
	msg := s.chat.sent[0]
	assert.Contains(t, msg, "email : anna@example.com")
	assert.Contains(t, msg, "name : Anna")
	assert.Contains(t, msg, "text : App crashed on startup")
}

func TestSendMessageRelaysVerbatim(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "anna@example.com", "Anna")

	rec, out := s.post(t, "/sendMessage", token, echo.Map{"text": "Hello there"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, messages.MessageSendSuccess, out["success"])

	require.Equal(t, []string{"Hello there"}, s.chat.sent)
}

func TestSendAlertRequiresText(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "anna@example.com", "Anna")

	rec, out := s.post(t, "/sendAlert", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, messages.AllFieldsError, out["error"])
	assert.Empty(t, s.chat.sent)
}
