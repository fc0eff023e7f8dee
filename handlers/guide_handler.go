package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MriyaDevelopment/pumba-server/database"
	"github.com/MriyaDevelopment/pumba-server/messages"
	"github.com/MriyaDevelopment/pumba-server/models"
	"github.com/MriyaDevelopment/pumba-server/validation"
)

type GuideHandler struct{}

func NewGuideHandler() *GuideHandler { return &GuideHandler{} }

// POST /getSubCategoryGuides
func (h *GuideHandler) Get(c echo.Context) error {
	var req struct {
		Category string `json:"category"`
	}
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"category": "required|string",
	}); errs != nil {
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	var guides []models.Guide
	if err := database.DB.Where("category = ?", req.Category).Find(&guides).Error; err != nil {
		return sendFailure(c, "/getSubCategoryGuides", err)
	}
	if guides == nil {
		guides = []models.Guide{}
	}

	return sendResponse(c, "guides", guides)
}
