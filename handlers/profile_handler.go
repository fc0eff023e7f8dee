package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MriyaDevelopment/pumba-server/database"
	"github.com/MriyaDevelopment/pumba-server/messages"
	"github.com/MriyaDevelopment/pumba-server/middlewares"
	"github.com/MriyaDevelopment/pumba-server/models"
	"github.com/MriyaDevelopment/pumba-server/storage"
	"github.com/MriyaDevelopment/pumba-server/validation"
)

type ProfileHandler struct {
	uploader
}

func NewProfileHandler(store storage.Store) *ProfileHandler {
	return &ProfileHandler{uploader{store: store}}
}

type editProfileReq struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

type quizReq struct {
	Ages        string `json:"ages"`
	EnergyLevel string `json:"energy_level"`
	DoorType    string `json:"door_type"`
	Stuff       string `json:"stuff"`
	Time        string `json:"time"`
}

// POST /getProfile
func (h *ProfileHandler) Get(c echo.Context) error {
	return sendResponse(c, "profile", middlewares.CurrentUser(c))
}

// POST /editProfile
// Each changed field persists on its own; a mid-edit failure leaves the
// earlier fields applied.
func (h *ProfileHandler) Edit(c echo.Context) error {
	profile := middlewares.CurrentUser(c)

	var req editProfileReq
	if _, err := bindBody(c, &req); err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if !isEmpty(req.Name) && req.Name != profile.Name {
		profile.Name = req.Name
		if err := database.DB.Save(profile).Error; err != nil {
			return sendFailure(c, "/editProfile", err)
		}
	}

	if !isEmpty(req.Role) && req.Role != profile.Role {
		profile.Role = req.Role
		if err := database.DB.Save(profile).Error; err != nil {
			return sendFailure(c, "/editProfile", err)
		}
	}

	if req.Avatar == "null" {
		profile.Avatar = nil
		if err := database.DB.Save(profile).Error; err != nil {
			return sendFailure(c, "/editProfile", err)
		}
	} else if !isEmpty(req.Avatar) && (profile.Avatar == nil || req.Avatar != *profile.Avatar) {
		name, err := h.uploadImage(req.Avatar)
		if err != nil {
			return sendFailure(c, "/editProfile", err)
		}
		profile.Avatar = &name
		if err := database.DB.Save(profile).Error; err != nil {
			return sendFailure(c, "/editProfile", err)
		}
	}

	return sendSuccess(c, messages.ProfileEditedSuccess)
}

// POST /deleteProfile
// Cascade is best-effort sequential: a failed delete does not stop the rest.
func (h *ProfileHandler) Delete(c echo.Context) error {
	profile := middlewares.CurrentUser(c)
	token := profile.APIToken

	if err := database.DB.Delete(profile).Error; err != nil {
		return sendFailure(c, "/deleteProfile", err)
	}

	database.DB.Where("api_token = ?", token).Delete(&models.Child{})
	database.DB.Where("api_token = ?", token).Delete(&models.Memory{})
	database.DB.Where("api_token = ?", token).Delete(&models.Reminder{})
	database.DB.Where("api_token = ?", token).Delete(&models.Tooth{})

	return sendSuccess(c, messages.ProfileDeleteSuccess)
}

// POST /setResultQuiz
func (h *ProfileHandler) SetResultQuiz(c echo.Context) error {
	profile := middlewares.CurrentUser(c)

	var req quizReq
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"ages":         "required|string",
		"energy_level": "required|string",
		"door_type":    "required|string",
		"stuff":        "required|string",
		"time":         "required|string",
	}); errs != nil {
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	profile.Ages = req.Ages
	profile.EnergyLevel = req.EnergyLevel
	profile.DoorType = req.DoorType
	profile.Stuff = req.Stuff
	profile.Time = req.Time
	if err := database.DB.Save(profile).Error; err != nil {
		return sendFailure(c, "/setResultQuiz", err)
	}

	return sendSuccess(c, messages.ProfileFiltersAddSuccess)
}
