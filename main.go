package main

import (
	"flag"
	"log/slog"

	"chatguru/bot"
	"chatguru/impl/core"
	"chatguru/internal/config"
	"chatguru/internal/http-server/api"
	"chatguru/internal/lib/logger"
	"chatguru/internal/lib/sl"
	"chatguru/internal/service/sender"
	"chatguru/internal/ws"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	// Escalate warnings and errors to the admin chat if the bot is enabled
	if conf.Telegram.Enabled {
		alertBot, err := bot.NewAlertBot(conf.Telegram.BotName, conf.Telegram.ApiKey, conf.Telegram.AdminId, lg)
		if err != nil {
			lg.Error("failed to initialize telegram bot", sl.Err(err))
		} else {
			lg = logger.SetupTelegramHandler(lg, alertBot, slog.LevelWarn)
			lg.With(
				slog.String("bot_name", conf.Telegram.BotName),
			).Info("telegram alert bot initialized")
		}
	}

	lg.Info("starting chatguru", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	handler := core.New(lg)
	handler.SetAuthKey(conf.Listen.ApiKey)

	senderService := sender.NewSenderService(conf, lg)
	if senderService != nil {
		handler.SetSender(senderService)
		lg.With(
			slog.String("endpoint", conf.ChatGuru.Endpoint),
			slog.String("account_id", conf.ChatGuru.AccountId),
			sl.Secret("api_token", conf.ChatGuru.ApiToken),
		).Info("sender service initialized")
	}

	hub := ws.NewHub(lg)
	go hub.Run()
	handler.SetHub(hub)

	// *** blocking start with http server ***
	err := api.New(conf, lg, handler, hub)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}
