package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MriyaDevelopment/pumba-server/database"
	"github.com/MriyaDevelopment/pumba-server/messages"
	"github.com/MriyaDevelopment/pumba-server/middlewares"
	"github.com/MriyaDevelopment/pumba-server/notify"
	"github.com/MriyaDevelopment/pumba-server/validation"
)

type FCMHandler struct {
	pusher notify.Pusher
}

func NewFCMHandler(pusher notify.Pusher) *FCMHandler {
	return &FCMHandler{pusher: pusher}
}

// POST /updateFcmToken
func (h *FCMHandler) UpdateFcmToken(c echo.Context) error {
	user := middlewares.CurrentUser(c)

	var req struct {
		FcmToken string `json:"fcm_token"`
	}
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"fcm_token": "required|string",
	}); errs != nil {
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	user.FcmToken = &req.FcmToken
	if err := database.DB.Save(user).Error; err != nil {
		return sendFailure(c, "/updateFcmToken", err)
	}

	return sendSuccess(c, messages.FcmUpdatedSuccess)
}

// POST /sendTestFCMMessage
func (h *FCMHandler) SendTestFCMMessage(c echo.Context) error {
	user := middlewares.CurrentUser(c)

	token := ""
	if user.FcmToken != nil {
		token = *user.FcmToken
	}

	// Fire-and-forget: push relay failure is logged, not surfaced.
	if err := h.pusher.Push(token, notify.Notification{
		Title: "Test",
		Body:  "Test",
		Sound: "default",
	}); err != nil {
		c.Logger().Errorf("sendTestFCMMessage: push relay: %v", err)
	}

	return sendSuccess(c, messages.FcmTestSuccess)
}
