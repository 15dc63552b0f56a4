package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/pagimos/discord-bot1/pkg/cart"
	"github.com/pagimos/discord-bot1/pkg/config"
	"github.com/pagimos/discord-bot1/pkg/discord"
	"github.com/pagimos/discord-bot1/pkg/flow"
)

func main() {
	// .env is optional; the token can come from the real environment.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Init()
	if err != nil {
		logger.Fatal("config init failed", zap.Error(err))
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		logger.Fatal("creating discord session failed", zap.Error(err))
	}

	store := cart.NewStore()
	engine := flow.NewEngine(store, cfg, logger)
	registry := flow.NewRegistry()

	bot := discord.NewBot(session, engine, registry, cfg, logger)
	if err := bot.Start(); err != nil {
		logger.Fatal("bot start failed", zap.Error(err))
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	if err := bot.Stop(); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
