package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MriyaDevelopment/pumba-server/database"
	"github.com/MriyaDevelopment/pumba-server/notify"
	"github.com/MriyaDevelopment/pumba-server/routes"
	"github.com/MriyaDevelopment/pumba-server/storage"
)

/* ====================== fakes ====================== */

type fakeChat struct {
	sent []string
}

func (f *fakeChat) Send(text string) error {
	f.sent = append(f.sent, text)
	return nil
}

type pushRecord struct {
	Token string
	Note  notify.Notification
}

type fakePusher struct {
	pushed []pushRecord
}

func (f *fakePusher) Push(token string, n notify.Notification) error {
	f.pushed = append(f.pushed, pushRecord{Token: token, Note: n})
	return nil
}

type letterRecord struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	sent []letterRecord
}

func (f *fakeMailer) Mail(to, subject, body string) error {
	f.sent = append(f.sent, letterRecord{To: to, Subject: subject, Body: body})
	return nil
}

/* ====================== harness ====================== */

type server struct {
	e      *echo.Echo
	chat   *fakeChat
	pusher *fakePusher
	mailer *fakeMailer
	store  *storage.Memory
}

// newServer builds the full route table against a fresh in-memory database.
// The database handle is global, so tests must not run in parallel.
func newServer(t *testing.T) *server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// In-memory sqlite is per-connection; a second pooled connection would
	// see an empty schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	database.DB = db

	s := &server{
		e:      echo.New(),
		chat:   &fakeChat{},
		pusher: &fakePusher{},
		mailer: &fakeMailer{},
		store:  storage.NewMemory(),
	}
	routes.Register(s.e, routes.Deps{
		Chat:  s.chat,
		Push:  s.pusher,
		Mail:  s.mailer,
		Store: s.store,
	})
	return s
}

func (s *server) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	out := map[string]any{}
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &out)
	}
	return rec, out
}

func (s *server) post(t *testing.T, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	return s.do(t, http.MethodPost, path, token, body)
}

// register creates an account and returns its api_token.
func (s *server) register(t *testing.T, email, name string) string {
	t.Helper()

	rec, out := s.post(t, "/register", "", echo.Map{
		"email":    email,
		"name":     name,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	token, _ := out["api_token"].(string)
	require.Len(t, token, 80)
	return token
}

// addChild creates a child and returns its id.
func (s *server) addChild(t *testing.T, token, name string) float64 {
	t.Helper()

	rec, _ := s.post(t, "/addChild", token, echo.Map{
		"name":   name,
		"gender": "Girl",
		"birth":  "01/01/2020",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, out := s.post(t, "/getChildren", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	children := out["children"].([]any)
	last := children[len(children)-1].(map[string]any)
	return last["id"].(float64)
}
