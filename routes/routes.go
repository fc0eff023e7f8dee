package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/MriyaDevelopment/pumba-server/handlers"
	"github.com/MriyaDevelopment/pumba-server/messages"
	"github.com/MriyaDevelopment/pumba-server/middlewares"
	"github.com/MriyaDevelopment/pumba-server/notify"
	"github.com/MriyaDevelopment/pumba-server/storage"
)

// Deps carries the external relays the handlers talk to. Tests inject
// fakes here.
type Deps struct {
	Chat  notify.Notifier
	Push  notify.Pusher
	Mail  notify.Mailer
	Store storage.Store
}

func Register(e *echo.Echo, d Deps) {
	handlers.SetAlertNotifier(d.Chat)

	authHandler := handlers.NewAuthHandler()
	profileHandler := handlers.NewProfileHandler(d.Store)
	childHandler := handlers.NewChildHandler(d.Store)
	memoryHandler := handlers.NewMemoryHandler(d.Store)
	reminderHandler := handlers.NewReminderHandler()
	toothHandler := handlers.NewToothHandler()
	gameHandler := handlers.NewGameHandler()
	guideHandler := handlers.NewGuideHandler()
	mailerHandler := handlers.NewMailerHandler(d.Mail)
	fcmHandler := handlers.NewFCMHandler(d.Push)
	alertHandler := handlers.NewAlertHandler(d.Chat)
	storageHandler := handlers.NewStorageHandler(d.Store)

	// ===== Public =====
	e.POST("/login", authHandler.Login)
	e.POST("/register", authHandler.Register)
	e.POST("/loginOrRegisterViaSocialNetworks", authHandler.LoginOrRegisterViaSocialNetworks)
	e.POST("/changePassword", authHandler.ChangePassword)
	e.POST("/changeEmail", authHandler.ChangeEmail)
	e.POST("/sendLetter", mailerHandler.SendLetter)
	e.POST("/checkCode", mailerHandler.CheckCode)
	e.POST("/getSubCategoryGuides", guideHandler.Get)
	e.GET("/storage/:filename", storageHandler.Get)

	// ===== Profile & games =====
	profile := e.Group("", middlewares.RequireToken(messages.ProfileError))
	profile.POST("/getProfile", profileHandler.Get)
	profile.POST("/editProfile", profileHandler.Edit)
	profile.POST("/deleteProfile", profileHandler.Delete)
	profile.POST("/setResultQuiz", profileHandler.SetResultQuiz)
	profile.POST("/getGames", gameHandler.Get)
	profile.POST("/getGameById", gameHandler.GetByID)
	profile.POST("/saveGame", gameHandler.Save)
	profile.POST("/getSavedGames", gameHandler.GetSavedGames)

	// ===== Family data =====
	family := e.Group("", middlewares.RequireToken(messages.UserError))
	family.POST("/getChildren", childHandler.Get)
	family.POST("/addChild", childHandler.Add)
	family.POST("/editChild", childHandler.Edit)
	family.POST("/deleteChild", childHandler.Delete)
	family.POST("/getMemories", memoryHandler.Get)
	family.POST("/addMemory", memoryHandler.Add)
	family.POST("/editMemory", memoryHandler.Edit)
	family.POST("/deleteMemory", memoryHandler.Delete)
	family.POST("/getReminders", reminderHandler.Get)
	family.POST("/addReminder", reminderHandler.Add)
	family.POST("/editReminder", reminderHandler.Edit)
	family.POST("/deleteReminder", reminderHandler.Delete)
	family.POST("/stateChanged", reminderHandler.StateChanged)
	family.POST("/getDropedTeeth", toothHandler.Get)
	family.POST("/setDropedTooth", toothHandler.Set)
	family.POST("/updateFcmToken", fcmHandler.UpdateFcmToken)
	family.POST("/sendTestFCMMessage", fcmHandler.SendTestFCMMessage)
	family.POST("/sendAlert", alertHandler.SendAlert)
	family.POST("/sendMessage", alertHandler.SendMessage)
}
