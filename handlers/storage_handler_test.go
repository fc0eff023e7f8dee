package handlers_test

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal valid PNG header so content sniffing yields image/png.
var pngBytes = []byte("\x89PNG\r\n\x1a\n0000000000000000")

func TestStorageServesUploadedAvatar(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "anna@example.com", "Anna")

	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
	rec, _ := s.post(t, "/editProfile", token, echo.Map{"avatar": payload})
	require.Equal(t, http.StatusOK, rec.Code)

	_, out := s.post(t, "/getProfile", token, nil)
	name := out["profile"].(map[string]any)["avatar"].(string)
	require.NotEmpty(t, name)

	rec, _ = s.do(t, http.MethodGet, "/storage/"+name, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, pngBytes, rec.Body.Bytes())
}

func TestStorageUnknownFile(t *testing.T) {
	s := newServer(t)

	rec, _ := s.do(t, http.MethodGet, "/storage/missing.png", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
