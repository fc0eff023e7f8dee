package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/MriyaDevelopment/pumba-server/database"
	"github.com/MriyaDevelopment/pumba-server/messages"
	"github.com/MriyaDevelopment/pumba-server/middlewares"
	"github.com/MriyaDevelopment/pumba-server/models"
	"github.com/MriyaDevelopment/pumba-server/storage"
	"github.com/MriyaDevelopment/pumba-server/validation"
)

type ChildHandler struct {
	uploader
}

func NewChildHandler(store storage.Store) *ChildHandler {
	return &ChildHandler{uploader{store: store}}
}

// Every new child starts with the same five memories.
var defaultMemories = []string{
	"Sleep in my bedroom",
	"Hey! It’s my first step",
	"Walk in park",
	"Go to the zoo",
	"Play with my favourite toys",
}

type addChildReq struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Birth  string `json:"birth"`
	Avatar string `json:"avatar"`
}

type editChildReq struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Birth  string `json:"birth"`
	Avatar string `json:"avatar"`
}

type deleteChildReq struct {
	ID string `json:"id"`
}

// POST /getChildren
func (h *ChildHandler) Get(c echo.Context) error {
	user := middlewares.CurrentUser(c)

	var children []models.Child
	if err := database.DB.Where("api_token = ?", user.APIToken).Find(&children).Error; err != nil {
		return sendFailure(c, "/getChildren", err)
	}
	if children == nil {
		children = []models.Child{}
	}

	return sendResponse(c, "children", children)
}

// POST /addChild
func (h *ChildHandler) Add(c echo.Context) error {
	user := middlewares.CurrentUser(c)

	var req addChildReq
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"name":   "required|string",
		"gender": "required|string",
		"birth":  "required|string",
	}); errs != nil {
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	var avatar *string
	if !isEmpty(req.Avatar) {
		name, err := h.uploadImage(req.Avatar)
		if err != nil {
			return sendFailure(c, "/addChild", err)
		}
		avatar = &name
	}

	child := models.Child{
		Name:     req.Name,
		Gender:   req.Gender,
		Birth:    req.Birth,
		Avatar:   avatar,
		APIToken: user.APIToken,
	}
	if err := database.DB.Create(&child).Error; err != nil {
		return sendFailure(c, "/addChild", err)
	}

	for _, name := range defaultMemories {
		memory := models.Memory{
			Name:     name,
			ChildID:  child.ID,
			APIToken: user.APIToken,
		}
		if err := database.DB.Create(&memory).Error; err != nil {
			return sendFailure(c, "/addChild", err)
		}
	}

	return sendSuccess(c, messages.ChildAddedSuccess)
}

// POST /editChild
func (h *ChildHandler) Edit(c echo.Context) error {
	var req editChildReq
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"id": "required|string",
	}); errs != nil {
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	var child models.Child
	if err := database.DB.First(&child, "id = ?", atoiOr(req.ID, 0)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return sendError(c, http.StatusNotFound, messages.ChildError)
		}
		return sendFailure(c, "/editChild", err)
	}

	if !isEmpty(req.Name) && req.Name != child.Name {
		child.Name = req.Name
		if err := database.DB.Save(&child).Error; err != nil {
			return sendFailure(c, "/editChild", err)
		}
	}

	if !isEmpty(req.Gender) && req.Gender != child.Gender {
		child.Gender = req.Gender
		if err := database.DB.Save(&child).Error; err != nil {
			return sendFailure(c, "/editChild", err)
		}
	}

	if !isEmpty(req.Birth) && req.Birth != child.Birth {
		child.Birth = req.Birth
		if err := database.DB.Save(&child).Error; err != nil {
			return sendFailure(c, "/editChild", err)
		}
	}

	if req.Avatar == "null" {
		child.Avatar = nil
		if err := database.DB.Save(&child).Error; err != nil {
			return sendFailure(c, "/editChild", err)
		}
	} else if !isEmpty(req.Avatar) && (child.Avatar == nil || req.Avatar != *child.Avatar) {
		name, err := h.uploadImage(req.Avatar)
		if err != nil {
			return sendFailure(c, "/editChild", err)
		}
		child.Avatar = &name
		if err := database.DB.Save(&child).Error; err != nil {
			return sendFailure(c, "/editChild", err)
		}
	}

	return sendResponse(c, "child", child)
}

// POST /deleteChild
func (h *ChildHandler) Delete(c echo.Context) error {
	var req deleteChildReq
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"id": "required|string",
	}); errs != nil {
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	var child models.Child
	if err := database.DB.First(&child, "id = ?", atoiOr(req.ID, 0)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return sendError(c, http.StatusNotFound, messages.ChildError)
		}
		return sendFailure(c, "/deleteChild", err)
	}

	if err := database.DB.Delete(&child).Error; err != nil {
		return sendFailure(c, "/deleteChild", err)
	}

	return sendSuccess(c, messages.ChildDeleteSuccess)
}
