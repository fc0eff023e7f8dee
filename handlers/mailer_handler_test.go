package handlers_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MriyaDevelopment/pumba-server/database"
	"github.com/MriyaDevelopment/pumba-server/messages"
	"github.com/MriyaDevelopment/pumba-server/models"
)

func TestSendLetterUnknownEmail(t *testing.T) {
	s := newServer(t)

	rec, out := s.post(t, "/sendLetter", "", echo.Map{"email": "nobody@example.com"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, messages.MailSearchError, out["error"])
	assert.Empty(t, s.mailer.sent)
}

func TestSendLetterDeliversCode(t *testing.T) {
	s := newServer(t)
	s.register(t, "anna@example.com", "Anna")

	rec, out := s.post(t, "/sendLetter", "", echo.Map{"email": "anna@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Verification code sent to anna@example.com", out["success"])

	require.Len(t, s.mailer.sent, 1)
	letter := s.mailer.sent[0]
	assert.Equal(t, "anna@example.com", letter.To)
	assert.Equal(t, "Password recovery", letter.Subject)
	assert.Contains(t, letter.Body, "Dear Anna,")

	var code models.Code
	require.NoError(t, database.DB.Where("email = ?", "anna@example.com").First(&code).Error)
	assert.Contains(t, letter.Body, "Confirmation code: "+code.Code)
	assert.GreaterOrEqual(t, len(code.Code), 3)
	assert.LessOrEqual(t, len(code.Code), 4)
}

func TestSendLetterReissueReplacesCode(t *testing.T) {
	s := newServer(t)
	s.register(t, "anna@example.com", "Anna")

	for i := 0; i < 2; i++ {
		rec, _ := s.post(t, "/sendLetter", "", echo.Map{"email": "anna@example.com"})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	var count int64
	require.NoError(t, database.DB.Model(&models.Code{}).
		Where("email = ?", "anna@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCheckCodeConsumesOnce(t *testing.T) {
	s := newServer(t)
	s.register(t, "anna@example.com", "Anna")

	rec, _ := s.post(t, "/sendLetter", "", echo.Map{"email": "anna@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)

	var code models.Code
	require.NoError(t, database.DB.Where("email = ?", "anna@example.com").First(&code).Error)

	rec, out := s.post(t, "/checkCode", "", echo.Map{"code": code.Code})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, messages.CodeSuccess, out["success"])

	// Second attempt fails: the code was consumed.
	rec, out = s.post(t, "/checkCode", "", echo.Map{"code": code.Code})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, messages.CodeError, out["error"])
}

func TestCheckCodeTooShort(t *testing.T) {
	s := newServer(t)

	rec, out := s.post(t, "/checkCode", "", echo.Map{"code": "12"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, messages.AllFieldsError, out["error"])
}
