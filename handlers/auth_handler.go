package handlers

import (
	"crypto/rand"
	"math/big"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MriyaDevelopment/pumba-server/database"
	"github.com/MriyaDevelopment/pumba-server/messages"
	"github.com/MriyaDevelopment/pumba-server/models"
	"github.com/MriyaDevelopment/pumba-server/validation"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler { return &AuthHandler{} }

const tokenAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// newAPIToken mints the permanent 80-character bearer credential issued at
// registration. It never rotates.
func newAPIToken() string {
	b := make([]byte, 80)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err) // crypto/rand failure is unrecoverable
		}
		b[i] = tokenAlphabet[n.Int64()]
	}
	return string(b)
}

// uniquenessMessage maps a conflicting field to its client-facing string.
func uniquenessMessage(field string) string {
	switch field {
	case "name":
		return messages.UserRegisterNameValidator
	default:
		return messages.UserRegisterEmailValidator
	}
}

/* ====================== DTOs ====================== */

type loginReq struct {
	Email    string `json:"email"` // email or name
	Password string `json:"password"`
}

type registerReq struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type socialReq struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type changePasswordReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changeEmailReq struct {
	Email    string `json:"email"`
	OldEmail string `json:"old_email"`
}

/* ====================== Handlers ====================== */

// POST /login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"email":    "required|string|max:255",
		"password": "required|string",
	}); errs != nil {
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	var user models.User
	if err := database.DB.Where("email = ? OR name = ?", req.Email, req.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return sendError(c, http.StatusNotFound, messages.UserError)
		}
		return sendFailure(c, "/login", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return sendError(c, http.StatusUnauthorized, messages.UserPasswordError)
	}

	return sendResponse(c, "api_token", user.APIToken)
}

// POST /register
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"email":    "required|string|email|max:255|unique:users,email",
		"name":     "required|string|unique:users,name",
		"password": "required|string",
	}); errs != nil {
		if field, ok := errs.Conflict(); ok {
			return sendError(c, http.StatusConflict, uniquenessMessage(field))
		}
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return sendFailure(c, "/register", err)
	}

	token := newAPIToken()
	user := models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hash),
		APIToken: token,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return sendFailure(c, "/register", err)
	}

	return sendResponse(c, "api_token", token)
}

// POST /loginOrRegisterViaSocialNetworks
func (h *AuthHandler) LoginOrRegisterViaSocialNetworks(c echo.Context) error {
	var req socialReq
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"email": "required|string|email|max:255",
		"name":  "required|string",
	}); errs != nil {
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	var user models.User
	err = database.DB.Where("email = ?", req.Email).First(&user).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		user = models.User{
			Email:    req.Email,
			Name:     req.Name,
			APIToken: newAPIToken(),
		}
		if err := database.DB.Create(&user).Error; err != nil {
			return sendFailure(c, "/loginOrRegisterViaSocialNetworks", err)
		}
	case err != nil:
		return sendFailure(c, "/loginOrRegisterViaSocialNetworks", err)
	}

	return sendResponse(c, "api_token", user.APIToken)
}

// POST /changePassword
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordReq
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"email":    "required|string|email",
		"password": "required|string|min:6",
	}); errs != nil {
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return sendError(c, http.StatusNotFound, messages.MailSearchError)
		}
		return sendFailure(c, "/changePassword", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return sendFailure(c, "/changePassword", err)
	}
	user.Password = string(hash)
	if err := database.DB.Save(&user).Error; err != nil {
		return sendFailure(c, "/changePassword", err)
	}

	return sendSuccess(c, messages.UserChangePasswordSuccess)
}

// POST /changeEmail
func (h *AuthHandler) ChangeEmail(c echo.Context) error {
	var req changeEmailReq
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"email":     "required|string|email|max:255|unique:users,email",
		"old_email": "required|string",
	}); errs != nil {
		if _, ok := errs.Conflict(); ok {
			return sendError(c, http.StatusConflict, messages.UserRegisterEmailValidator)
		}
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.OldEmail).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return sendError(c, http.StatusNotFound, messages.MailSearchError)
		}
		return sendFailure(c, "/changeEmail", err)
	}

	user.Email = req.Email
	if err := database.DB.Save(&user).Error; err != nil {
		return sendFailure(c, "/changeEmail", err)
	}

	return sendSuccess(c, messages.UserChangeMailSuccess)
}
