package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"taskboard.com/taskboard/internal/api"
	config "taskboard.com/taskboard/internal/configs"
	httpapi "taskboard.com/taskboard/internal/http"
	repository "taskboard.com/taskboard/internal/repositories"
	"taskboard.com/taskboard/internal/services"
	"taskboard.com/taskboard/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web UI",
	Long:  "Starts the task board web UI in front of the remote tasks API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		sessions, closeSessions, err := openSessionStore(cfg)
		if err != nil {
			return err
		}
		defer closeSessions()

		client, err := api.NewClient(cfg.APIBaseURL, cfg.APITimeout, api.NewLogNotifier(log.Default()))
		if err != nil {
			return err
		}

		renderer, err := httpapi.NewRenderer()
		if err != nil {
			return err
		}

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		e.Renderer = renderer

		handler := httpapi.NewHandler(services.NewTaskService(client), sessions, httpapi.CookieOptions{
			TTL:    cfg.SessionTTL,
			Secure: cfg.SessionCookieSecure,
		})
		httpapi.Register(e, handler, sessions, cfg.RateLimit)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			log.Info("HTTP server listening", "addr", cfg.AppURL(), "api", cfg.APIBaseURL)
			if err := e.Start(cfg.AppURL()); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("server stopped", "err", err)
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Warn("HTTP server shutdown", "err", err)
		}

		log.Info("HTTP server shut down gracefully")
		return nil
	},
}

// openSessionStore returns the configured store and a func releasing it.
// The sqlite store runs an expiry sweeper for as long as it is open.
func openSessionStore(cfg config.Config) (session.Store, func(), error) {
	if cfg.SessionStore == config.SessionStoreRedis {
		redisClient, err := config.NewRedisClient(cfg.RedisAddr())
		if err != nil {
			return nil, nil, err
		}
		log.Info("using redis session store", "addr", cfg.RedisAddr())
		return repository.NewRedisSessionRepository(redisClient, cfg.RedisSessionPrefix), redisClient.Close, nil
	}

	db, err := config.NewDatabaseClient(cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	repo := repository.NewSessionRepository(db)

	sweeper, err := services.NewSessionSweeper(repo, cfg.SessionSweepInterval)
	if err != nil {
		return nil, nil, err
	}
	sweeper.Start()
	log.Info("using sqlite session store", "dsn", cfg.DatabaseDSN, "sweep", cfg.SessionSweepInterval)

	return repo, func() {
		sweeper.Stop()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
