package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MriyaDevelopment/pumba-server/messages"
	"github.com/MriyaDevelopment/pumba-server/notify"
)

// alerts receives failure reports; replaced during wiring and by tests.
var alerts notify.Notifier = notify.Noop{}

func SetAlertNotifier(n notify.Notifier) {
	if n != nil {
		alerts = n
	}
}

// sendResponse wraps a payload under a caller-chosen field name.
func sendResponse(c echo.Context, name string, payload any) error {
	return c.JSON(http.StatusOK, echo.Map{
		"result": "success",
		name:     payload,
	})
}

func sendSuccess(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, echo.Map{
		"result":  "success",
		"success": msg,
	})
}

func sendError(c echo.Context, code int, msg string) error {
	return c.JSON(code, echo.Map{
		"result": "error",
		"error":  msg,
	})
}

func sendErrorData(c echo.Context, code int, msg string, data any) error {
	return c.JSON(code, echo.Map{
		"result": "error",
		"error":  msg,
		"data":   data,
	})
}

// sendFailure reports an unexpected error to the chat channel and answers with
// an opaque 500 envelope. The relay is best-effort; its own failure is ignored.
func sendFailure(c echo.Context, method string, err error) error {
	_ = alerts.Send(fmt.Sprintf("Failure in %s\n\nCode : 500\n\nFailure : %v", method, err))
	return sendError(c, http.StatusInternalServerError, messages.InternalError)
}
