package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/MriyaDevelopment/pumba-server/config"
	"github.com/MriyaDevelopment/pumba-server/database"
	"github.com/MriyaDevelopment/pumba-server/notify"
	"github.com/MriyaDevelopment/pumba-server/routes"
	"github.com/MriyaDevelopment/pumba-server/storage"
)

func main() {
	// .env is optional; real deployments pass env vars directly.
	_ = godotenv.Load()

	cfg := config.Load()

	// Connect fails fast if the DB is not up yet.
	database.Connect(cfg)

	store, err := storage.NewDisk(cfg.StoragePath)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	deps := routes.Deps{
		Chat:  notify.Notifier(notify.Noop{}),
		Push:  notify.Pusher(notify.Noop{}),
		Mail:  notify.Mailer(notify.Noop{}),
		Store: store,
	}
	if cfg.TelegramBotToken != "" {
		deps.Chat = notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
	}
	if cfg.FCMServerKey != "" {
		deps.Push = notify.NewFCM(cfg.FCMServerKey)
	}
	if cfg.SendgridAPIKey != "" {
		deps.Mail = notify.NewSendgrid(cfg.SendgridAPIKey, cfg.MailFrom, cfg.MailFromName)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, deps)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
