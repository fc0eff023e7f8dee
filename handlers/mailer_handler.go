package handlers

import (
	"fmt"
	"math/rand"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/MriyaDevelopment/pumba-server/database"
	"github.com/MriyaDevelopment/pumba-server/messages"
	"github.com/MriyaDevelopment/pumba-server/models"
	"github.com/MriyaDevelopment/pumba-server/notify"
	"github.com/MriyaDevelopment/pumba-server/validation"
)

type MailerHandler struct {
	mailer notify.Mailer
}

func NewMailerHandler(mailer notify.Mailer) *MailerHandler {
	return &MailerHandler{mailer: mailer}
}

// POST /sendLetter
// Reissuing replaces the previous code: at most one is active per email.
func (h *MailerHandler) SendLetter(c echo.Context) error {
	var req struct {
		Email string `json:"email"`
	}
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"email": "required|string",
	}); errs != nil {
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return sendError(c, http.StatusNotFound, messages.MailSearchError)
		}
		return sendFailure(c, "/sendLetter", err)
	}

	if err := database.DB.Where("email = ?", req.Email).Delete(&models.Code{}).Error; err != nil {
		return sendFailure(c, "/sendLetter", err)
	}

	// 999..9999. The lower bound really is three digits: such a code is
	// issued but CheckCode's min:4 rule rejects it. Keep the range and the
	// rule in sync when changing either.
	code := fmt.Sprintf("%d", rand.Intn(9001)+999)

	letter := fmt.Sprintf(
		"Dear %s, this is your personal 4-digit confirmation code. Do not share this code with anyone. Confirmation code: %s",
		user.Name, code,
	)
	// Best-effort: a relay outage must not block the code being issued.
	if err := h.mailer.Mail(req.Email, "Password recovery", letter); err != nil {
		c.Logger().Errorf("sendLetter: mail relay: %v", err)
	}

	if err := database.DB.Create(&models.Code{Email: req.Email, Code: code}).Error; err != nil {
		return sendFailure(c, "/sendLetter", err)
	}

	return sendSuccess(c, "Verification code sent to "+req.Email)
}

// POST /checkCode
// A matching code is consumed: it verifies exactly once.
func (h *MailerHandler) CheckCode(c echo.Context) error {
	var req struct {
		Code string `json:"code"`
	}
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"code": "required|string|min:4",
	}); errs != nil {
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	var verification models.Code
	if err := database.DB.Where("code = ?", req.Code).First(&verification).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return sendError(c, http.StatusNotFound, messages.CodeError)
		}
		return sendFailure(c, "/checkCode", err)
	}

	if err := database.DB.Delete(&verification).Error; err != nil {
		return sendFailure(c, "/checkCode", err)
	}

	return sendSuccess(c, messages.CodeSuccess)
}
