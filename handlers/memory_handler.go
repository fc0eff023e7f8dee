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

type MemoryHandler struct {
	uploader
}

func NewMemoryHandler(store storage.Store) *MemoryHandler {
	return &MemoryHandler{uploader{store: store}}
}

type addMemoryReq struct {
	ChildID string `json:"childId"`
	Image   string `json:"image"`
	Name    string `json:"name"`
	Note    string `json:"note"`
	Color   string `json:"color"`
	Date    string `json:"date"`
}

type editMemoryReq struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Note  string `json:"note"`
	Color string `json:"color"`
	Date  string `json:"date"`
	Image string `json:"image"`
}

// POST /getMemories
func (h *MemoryHandler) Get(c echo.Context) error {
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

	var memories []models.Memory
	if err := database.DB.Where(`"childId" = ?`, atoiOr(req.ChildID, 0)).Find(&memories).Error; err != nil {
		return sendFailure(c, "/getMemories", err)
	}
	if memories == nil {
		memories = []models.Memory{}
	}

	return sendResponse(c, "memories", memories)
}

// POST /addMemory
func (h *MemoryHandler) Add(c echo.Context) error {
	user := middlewares.CurrentUser(c)

	var req addMemoryReq
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"childId": "required|string",
		"image":   "required|string",
		"name":    "required|string",
		"note":    "required|string",
		"color":   "required|string",
		"date":    "required|string",
	}); errs != nil {
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	image := ""
	if !isEmpty(req.Image) {
		image, err = h.uploadImage(req.Image)
		if err != nil {
			return sendFailure(c, "/addMemory", err)
		}
	}

	memory := models.Memory{
		ChildID:  uint(atoiOr(req.ChildID, 0)),
		APIToken: user.APIToken,
		Name:     req.Name,
		Note:     req.Note,
		Color:    req.Color,
		Date:     req.Date,
		Image:    image,
	}
	if err := database.DB.Create(&memory).Error; err != nil {
		return sendFailure(c, "/addMemory", err)
	}

	return sendSuccess(c, messages.MemoryAddedSuccess)
}

// POST /editMemory
func (h *MemoryHandler) Edit(c echo.Context) error {
	var req editMemoryReq
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"id": "required|string",
	}); errs != nil {
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	var memory models.Memory
	if err := database.DB.First(&memory, "id = ?", atoiOr(req.ID, 0)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return sendError(c, http.StatusNotFound, messages.MemoryError)
		}
		return sendFailure(c, "/editMemory", err)
	}

	if !isEmpty(req.Name) && req.Name != memory.Name {
		memory.Name = req.Name
		if err := database.DB.Save(&memory).Error; err != nil {
			return sendFailure(c, "/editMemory", err)
		}
	}

	if !isEmpty(req.Date) && req.Date != memory.Date {
		memory.Date = req.Date
		if err := database.DB.Save(&memory).Error; err != nil {
			return sendFailure(c, "/editMemory", err)
		}
	}

	if !isEmpty(req.Note) && req.Note != memory.Note {
		memory.Note = req.Note
		if err := database.DB.Save(&memory).Error; err != nil {
			return sendFailure(c, "/editMemory", err)
		}
	}

	if !isEmpty(req.Color) && req.Color != memory.Color {
		memory.Color = req.Color
		if err := database.DB.Save(&memory).Error; err != nil {
			return sendFailure(c, "/editMemory", err)
		}
	}

	if req.Image == "null" {
		memory.Image = ""
		if err := database.DB.Save(&memory).Error; err != nil {
			return sendFailure(c, "/editMemory", err)
		}
	} else if !isEmpty(req.Image) && req.Image != memory.Image {
		image, err := h.uploadImage(req.Image)
		if err != nil {
			return sendFailure(c, "/editMemory", err)
		}
		memory.Image = image
		if err := database.DB.Save(&memory).Error; err != nil {
			return sendFailure(c, "/editMemory", err)
		}
	}

	return sendSuccess(c, messages.MemoryEditedSuccess)
}

// POST /deleteMemory
func (h *MemoryHandler) Delete(c echo.Context) error {
	var req struct {
		ID string `json:"id"`
	}
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"id": "required|string",
	}); errs != nil {
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	if err := database.DB.Where("id = ?", atoiOr(req.ID, 0)).Delete(&models.Memory{}).Error; err != nil {
		return sendFailure(c, "/deleteMemory", err)
	}

	return sendSuccess(c, messages.MemoryDeleteSuccess)
}
