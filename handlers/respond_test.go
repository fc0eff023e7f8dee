package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MriyaDevelopment/pumba-server/database"
	"github.com/MriyaDevelopment/pumba-server/messages"
)

func TestStoreFailureFiresAlertAndStaysOpaque(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "anna@example.com", "Anna")

	// Sever the schema under a live handler; auth still resolves against
	// the intact users table.
	require.NoError(t, database.DB.Exec("DROP TABLE reminders").Error)

	rec, out := s.post(t, "/getReminders", token, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "error", out["result"])
	assert.Equal(t, messages.InternalError, out["error"])
	assert.NotContains(t, out, "data")

	// Exactly one report went to the chat relay, naming the failing method.
	require.Len(t, s.chat.sent, 1)
	assert.Contains(t, s.chat.sent[0], "/getReminders")
	assert.Contains(t, s.chat.sent[0], "Code : 500")
}
