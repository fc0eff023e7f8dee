package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MriyaDevelopment/pumba-server/messages"
	"github.com/MriyaDevelopment/pumba-server/middlewares"
	"github.com/MriyaDevelopment/pumba-server/notify"
	"github.com/MriyaDevelopment/pumba-server/validation"
)

type AlertHandler struct {
	chat notify.Notifier
}

func NewAlertHandler(chat notify.Notifier) *AlertHandler {
	return &AlertHandler{chat: chat}
}

// POST /sendAlert
// Relays the text together with the caller's profile summary.
func (h *AlertHandler) SendAlert(c echo.Context) error {
	user := middlewares.CurrentUser(c)

	var req struct {
		Text string `json:"text"`
	}
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"text": "required|string",
	}); errs != nil {
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	description := fmt.Sprintf(
		"api_token : %s\nname : %s\nrole : %s\nemail : %s\ntext : %s",
		user.APIToken, user.Name, user.Role, user.Email, req.Text,
	)
	if err := h.chat.Send(description); err != nil {
		c.Logger().Errorf("sendAlert: chat relay: %v", err)
	}

	return sendSuccess(c, messages.AlertSendSuccess)
}

// POST /sendMessage
// Relays caller-supplied text verbatim.
func (h *AlertHandler) SendMessage(c echo.Context) error {
	var req struct {
		Text string `json:"text"`
	}
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"text": "required|string",
	}); errs != nil {
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	if err := h.chat.Send(req.Text); err != nil {
		c.Logger().Errorf("sendMessage: chat relay: %v", err)
	}

	return sendSuccess(c, messages.MessageSendSuccess)
}
