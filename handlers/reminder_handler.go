package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/MriyaDevelopment/pumba-server/database"
	"github.com/MriyaDevelopment/pumba-server/messages"
	"github.com/MriyaDevelopment/pumba-server/middlewares"
	"github.com/MriyaDevelopment/pumba-server/models"
	"github.com/MriyaDevelopment/pumba-server/validation"
)

type ReminderHandler struct{}

func NewReminderHandler() *ReminderHandler { return &ReminderHandler{} }

// reminderDateFormat is the literal-date wire format (dd/mm/yyyy).
const reminderDateFormat = "02/01/2006"

type addReminderReq struct {
	Name   string   `json:"name"`
	Note   string   `json:"note"`
	Time   string   `json:"time"`
	Date   string   `json:"date"`
	Enums  []string `json:"enums"`
	Repeat string   `json:"repeat"` // "1" | "0"
	Color  string   `json:"color"`
	Type   string   `json:"type"`
}

type editReminderReq struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Note   string   `json:"note"`
	Time   string   `json:"time"`
	Date   string   `json:"date"`
	Enums  []string `json:"enums"`
	Repeat *bool    `json:"repeat"`
	Color  string   `json:"color"`
	Type   string   `json:"type"`
}

// reminderView splits the stored date column back into its two shapes. The
// column holds either a literal date or a comma-joined weekday list; a strict
// parse probe decides which, exactly as the writers joined it.
func reminderView(r models.Reminder) echo.Map {
	var date any
	enums := []string{}

	if _, err := time.Parse(reminderDateFormat, r.Date); err == nil {
		date = r.Date
	} else {
		date = nil
		enums = strings.Split(r.Date, ",")
	}

	return echo.Map{
		"id":     r.ID,
		"name":   r.Name,
		"note":   r.Note,
		"time":   r.Time,
		"date":   date,
		"enums":  enums,
		"repeat": r.Repeat,
		"color":  r.Color,
		"type":   r.Type,
		"state":  r.State,
	}
}

// POST /getReminders
func (h *ReminderHandler) Get(c echo.Context) error {
	user := middlewares.CurrentUser(c)

	var reminders []models.Reminder
	if err := database.DB.Where("api_token = ?", user.APIToken).Find(&reminders).Error; err != nil {
		return sendFailure(c, "/getReminders", err)
	}

	list := make([]echo.Map, 0, len(reminders))
	for _, r := range reminders {
		list = append(list, reminderView(r))
	}

	return sendResponse(c, "reminders", list)
}

// POST /addReminder
func (h *ReminderHandler) Add(c echo.Context) error {
	user := middlewares.CurrentUser(c)

	var req addReminderReq
	if _, err := bindBody(c, &req); err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	// Either a literal date or a weekday list must be present.
	if isEmpty(req.Date) && len(req.Enums) == 0 {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	period := req.Date
	if isEmpty(req.Date) {
		period = strings.Join(req.Enums, ",")
	}

	reminder := models.Reminder{
		APIToken: user.APIToken,
		Name:     req.Name,
		Note:     req.Note,
		Time:     req.Time,
		Date:     period,
		Repeat:   req.Repeat == "1",
		Color:    req.Color,
		Type:     req.Type,
		State:    "On",
	}
	if err := database.DB.Create(&reminder).Error; err != nil {
		return sendFailure(c, "/addReminder", err)
	}

	return sendSuccess(c, messages.ReminderAddedSuccess)
}

// POST /editReminder
func (h *ReminderHandler) Edit(c echo.Context) error {
	var req editReminderReq
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"id": "required|string",
	}); errs != nil {
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	var reminder models.Reminder
	if err := database.DB.First(&reminder, "id = ?", atoiOr(req.ID, 0)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return sendError(c, http.StatusNotFound, messages.ReminderError)
		}
		return sendFailure(c, "/editReminder", err)
	}

	if !isEmpty(req.Name) && req.Name != reminder.Name {
		reminder.Name = req.Name
		if err := database.DB.Save(&reminder).Error; err != nil {
			return sendFailure(c, "/editReminder", err)
		}
	}

	if !isEmpty(req.Note) && req.Note != reminder.Note {
		reminder.Note = req.Note
		if err := database.DB.Save(&reminder).Error; err != nil {
			return sendFailure(c, "/editReminder", err)
		}
	}

	if !isEmpty(req.Time) && req.Time != reminder.Time {
		reminder.Time = req.Time
		if err := database.DB.Save(&reminder).Error; err != nil {
			return sendFailure(c, "/editReminder", err)
		}
	}

	if enums := strings.Join(req.Enums, ","); len(req.Enums) > 0 && enums != reminder.Date {
		reminder.Date = enums
		if err := database.DB.Save(&reminder).Error; err != nil {
			return sendFailure(c, "/editReminder", err)
		}
	}

	if !isEmpty(req.Date) && req.Date != reminder.Date {
		reminder.Date = req.Date
		if err := database.DB.Save(&reminder).Error; err != nil {
			return sendFailure(c, "/editReminder", err)
		}
	}

	if req.Repeat != nil && *req.Repeat != reminder.Repeat {
		reminder.Repeat = *req.Repeat
		if err := database.DB.Save(&reminder).Error; err != nil {
			return sendFailure(c, "/editReminder", err)
		}
	}

	if !isEmpty(req.Color) && req.Color != reminder.Color {
		reminder.Color = req.Color
		if err := database.DB.Save(&reminder).Error; err != nil {
			return sendFailure(c, "/editReminder", err)
		}
	}

	if !isEmpty(req.Type) && req.Type != reminder.Type {
		reminder.Type = req.Type
		if err := database.DB.Save(&reminder).Error; err != nil {
			return sendFailure(c, "/editReminder", err)
		}
	}

	return sendSuccess(c, messages.ReminderEditSuccess)
}

// POST /deleteReminder
func (h *ReminderHandler) Delete(c echo.Context) error {
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

	if err := database.DB.Where("id = ?", atoiOr(req.ID, 0)).Delete(&models.Reminder{}).Error; err != nil {
		return sendFailure(c, "/deleteReminder", err)
	}

	return sendSuccess(c, messages.ReminderDeleteSuccess)
}

// POST /stateChanged
func (h *ReminderHandler) StateChanged(c echo.Context) error {
	var req struct {
		ID string `json:"id"`
	}
	if _, err := bindBody(c, &req); err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	var reminder models.Reminder
	if err := database.DB.First(&reminder, "id = ?", atoiOr(req.ID, 0)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return sendError(c, http.StatusNotFound, messages.ReminderError)
		}
		return sendFailure(c, "/stateChanged", err)
	}

	if reminder.State == "On" {
		reminder.State = "Off"
	} else {
		reminder.State = "On"
	}
	if err := database.DB.Save(&reminder).Error; err != nil {
		return sendFailure(c, "/stateChanged", err)
	}

	return sendSuccess(c, messages.ReminderStateSuccess)
}
