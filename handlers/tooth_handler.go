package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/MriyaDevelopment/pumba-server/database"
	"github.com/MriyaDevelopment/pumba-server/messages"
	"github.com/MriyaDevelopment/pumba-server/middlewares"
	"github.com/MriyaDevelopment/pumba-server/models"
	"github.com/MriyaDevelopment/pumba-server/validation"
)

type ToothHandler struct{}

func NewToothHandler() *ToothHandler { return &ToothHandler{} }

// POST /getDropedTeeth
func (h *ToothHandler) Get(c echo.Context) error {
	user := middlewares.CurrentUser(c)

	var req struct {
		ChildID string `json:"childId"`
	}
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"childId": "required|string",
	}); errs != nil {
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	var teeth []models.Tooth
	if err := database.DB.
		Where(`api_token = ? AND "childId" = ?`, user.APIToken, req.ChildID).
		Find(&teeth).Error; err != nil {
		return sendFailure(c, "/getDropedTeeth", err)
	}
	if teeth == nil {
		teeth = []models.Tooth{}
	}

	return sendResponse(c, "tooth", teeth)
}

// POST /setDropedTooth
// Toggle: an existing row means "dropped", so the call un-marks it; otherwise
// the row is created. Runs inside one transaction so concurrent toggles for
// the same (owner, child, tooth) cannot double-insert past the unique index.
func (h *ToothHandler) Set(c echo.Context) error {
	user := middlewares.CurrentUser(c)

	var req struct {
		ChildID string `json:"childId"`
		ToothID string `json:"toothId"`
	}
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"childId": "required|string",
		"toothId": "required|string",
	}); errs != nil {
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	isDroped := false
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var tooth models.Tooth
		err := tx.
			Where(`api_token = ? AND "childId" = ? AND "toothId" = ?`, user.APIToken, req.ChildID, req.ToothID).
			First(&tooth).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			isDroped = true
			return tx.Create(&models.Tooth{
				ChildID:  req.ChildID,
				ToothID:  req.ToothID,
				APIToken: user.APIToken,
			}).Error
		case err != nil:
			return err
		}
		return tx.Delete(&tooth).Error
	})
	if err != nil {
		return sendFailure(c, "/setDropedTooth", err)
	}

	return sendResponse(c, "toothInfo", echo.Map{
		"toothId":  req.ToothID,
		"isDroped": isDroped,
	})
}
