package handlers_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MriyaDevelopment/pumba-server/database"
	"github.com/MriyaDevelopment/pumba-server/messages"
	"github.com/MriyaDevelopment/pumba-server/models"
)

func TestAddChildSeedsDefaultMemories(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "anna@example.com", "Anna")

	childID := s.addChild(t, token, "Mila")

	rec, out := s.post(t, "/getMemories", token, echo.Map{
		"childId": strconv.Itoa(int(childID)),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	memories := out["memories"].([]any)
	require.Len(t, memories, 5)

	names := make([]string, 0, len(memories))
	for _, m := range memories {
		names = append(names, m.(map[string]any)["name"].(string))
	}
	assert.Contains(t, names, "Sleep in my bedroom")
	assert.Contains(t, names, "Hey! It’s my first step")
	assert.Contains(t, names, "Go to the zoo")
}

func TestAddChildMissingFields(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "anna@example.com", "Anna")

	rec, out := s.post(t, "/addChild", token, echo.Map{"name": "Mila"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, messages.AllFieldsError, out["error"])
}

func TestGetChildrenEmpty(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "anna@example.com", "Anna")

	rec, out := s.post(t, "/getChildren", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, out["children"])
	assert.NotNil(t, out["children"])
}

func TestChildrenRequireToken(t *testing.T) {
	s := newServer(t)

	rec, out := s.post(t, "/getChildren", "bogus", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, messages.UserError, out["error"])
}

func TestEditChild(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "anna@example.com", "Anna")
	childID := s.addChild(t, token, "Mila")

	rec, out := s.post(t, "/editChild", token, echo.Map{
		"id":   strconv.Itoa(int(childID)),
		"name": "Milana",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	child := out["child"].(map[string]any)
	assert.Equal(t, "Milana", child["name"])
	assert.Equal(t, "Girl", child["gender"])
}

func TestEditChildNoopDoesNotTouchRow(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "anna@example.com", "Anna")
	childID := s.addChild(t, token, "Mila")

	var before models.Child
	require.NoError(t, database.DB.First(&before, "id = ?", int(childID)).Error)

	rec, _ := s.post(t, "/editChild", token, echo.Map{
		"id":     strconv.Itoa(int(childID)),
		"name":   "Mila",
		"gender": "Girl",
		"birth":  "01/01/2020",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var after models.Child
	require.NoError(t, database.DB.First(&after, "id = ?", int(childID)).Error)
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
}

func TestEditChildNotFound(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "anna@example.com", "Anna")

	rec, out := s.post(t, "/editChild", token, echo.Map{
		"id":   "999",
		"name": "Ghost",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, messages.ChildError, out["error"])
}

func TestDeleteChild(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "anna@example.com", "Anna")
	childID := s.addChild(t, token, "Mila")

	rec, out := s.post(t, "/deleteChild", token, echo.Map{
		"id": strconv.Itoa(int(childID)),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, messages.ChildDeleteSuccess, out["success"])

	_, out = s.post(t, "/getChildren", token, nil)
	assert.Empty(t, out["children"])
}
