package handlers_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MriyaDevelopment/pumba-server/messages"
)

func TestUpdateFcmToken(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "anna@example.com", "Anna")

	rec, out := s.post(t, "/updateFcmToken", token, echo.Map{"fcm_token": "device-123"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, messages.FcmUpdatedSuccess, out["success"])

	_, out = s.post(t, "/getProfile", token, nil)
	profile := out["profile"].(map[string]any)
	assert.Equal(t, "device-123", profile["fcm_token"])
}

func TestUpdateFcmTokenRequiresValue(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "anna@example.com", "Anna")

	rec, out := s.post(t, "/updateFcmToken", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, messages.AllFieldsError, out["error"])
}

func TestSendTestFCMMessage(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "anna@example.com", "Anna")

	rec, _ := s.post(t, "/updateFcmToken", token, echo.Map{"fcm_token": "device-123"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, out := s.post(t, "/sendTestFCMMessage", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, messages.FcmTestSuccess, out["success"])

	require.Len(t, s.pusher.pushed, 1)
	push := s.pusher.pushed[0]
	assert.Equal(t, "device-123", push.Token)
	assert.Equal(t, "Test", push.Note.Title)
	assert.Equal(t, "Test", push.Note.Body)
	assert.Equal(t, "default", push.Note.Sound)
}
