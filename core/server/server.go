package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dancoopper/COMP3074-MobileApp/core/cache"
	"github.com/dancoopper/COMP3074-MobileApp/core/config"
	"github.com/dancoopper/COMP3074-MobileApp/core/constants"
	"github.com/dancoopper/COMP3074-MobileApp/core/database"
	"github.com/dancoopper/COMP3074-MobileApp/core/logger"
	"github.com/dancoopper/COMP3074-MobileApp/core/middleware"
	"github.com/dancoopper/COMP3074-MobileApp/core/storage"
	"github.com/dancoopper/COMP3074-MobileApp/modules/auth"
	"github.com/dancoopper/COMP3074-MobileApp/modules/availability"
	"github.com/dancoopper/COMP3074-MobileApp/modules/event"
	"github.com/dancoopper/COMP3074-MobileApp/modules/notification"
	"github.com/dancoopper/COMP3074-MobileApp/modules/profile"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run wires every layer together and serves until interrupted.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Server.LogLevel)
	defer logger.Sync()

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	c, err := cache.NewCache(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	defer c.Close()

	store := storage.NewS3Storage(cfg.Storage)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	mw := middleware.NewMiddleware(c)

	reminders, reminderWorker := notification.Init(cfg.Redis)
	defer reminders.Close()

	eventRepo := event.Init(e, db, mw, reminders)
	authRepo := auth.Init(e, db, c, mw)
	availability.Init(e, eventRepo, authRepo, c, mw)
	profile.Init(e, authRepo, store, mw)

	if err := reminderWorker.Start(); err != nil {
		return fmt.Errorf("start reminder worker: %w", err)
	}
	defer reminderWorker.Shutdown()

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultRequestTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
