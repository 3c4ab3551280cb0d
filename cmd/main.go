package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/DanRulev/h5pboard.git/internal/bot"
	"github.com/DanRulev/h5pboard.git/internal/config"
	"github.com/DanRulev/h5pboard.git/internal/handler"
	"github.com/DanRulev/h5pboard.git/internal/repository"
	"github.com/DanRulev/h5pboard.git/internal/service"
	"github.com/DanRulev/h5pboard.git/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	opts, err := cfg.Leaderboard.RenderOptions()
	if err != nil {
		logger.Fatal("invalid leaderboard settings", zap.Error(err))
	}

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer db.Close()

	repos := repository.NewRepository(db, cfg.DB.TablePrefix)
	services := service.InitServices(repos, opts, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.BotToken != "" {
		telegram, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services, cfg.App.Timeout, logger)
		if err != nil {
			logger.Fatal("failed init telegram bot", zap.Error(err))
		}
		go telegram.Start(ctx)
		logger.Info("telegram bot started")
	}

	router := handler.NewRouter(handler.NewHandler(services, cfg.App.Timeout, logger), cfg.Env)
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", zap.Error(err))
	}
}
