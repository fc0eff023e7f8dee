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

func TestGetSubCategoryGuides(t *testing.T) {
	s := newServer(t)

	for _, g := range []models.Guide{
		{Name: "First tooth care", Description: "Brush twice a day.", Category: "Health"},
		{Name: "Checkup schedule", Description: "Visit every six months.", Category: "Health"},
		{Name: "Bedtime routine", Description: "Same calm steps nightly.", Category: "Sleep"},
	} {
		require.NoError(t, database.DB.Create(&g).Error)
	}

	// No auth header: the catalog is public.
	rec, out := s.post(t, "/getSubCategoryGuides", "", echo.Map{"category": "Health"})
	require.Equal(t, http.StatusOK, rec.Code)

	guides := out["guides"].([]any)
	require.Len(t, guides, 2)
	assert.Equal(t, "Health", guides[0].(map[string]any)["category"])
}

func TestGetSubCategoryGuidesEmptyCategory(t *testing.T) {
	s := newServer(t)

	rec, out := s.post(t, "/getSubCategoryGuides", "", echo.Map{"category": "Unknown"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, out["guides"])
	assert.Empty(t, out["guides"])
}

func TestGetSubCategoryGuidesRequiresCategory(t *testing.T) {
	s := newServer(t)

	rec, out := s.post(t, "/getSubCategoryGuides", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, messages.AllFieldsError, out["error"])
}
