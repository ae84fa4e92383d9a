package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/macrolog/internal/api"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := rt.openStore()
			if err != nil {
				return err
			}
			if rt.cfg.SecretKeyEphemeral {
				rt.logger.Warn("SECRET_KEY is not set; using a random key, sessions end on restart")
			}

			handler, err := api.NewHandler(store.database, rt.cfg.SecretKey, rt.cfg.Location, store.rules, rt.cfg.CookieSecure, rt.logger.Named("api"))
			if err != nil {
				return fmt.Errorf("handler init failed: %w", err)
			}
			app := newServerApp(handler, rt.logger)

			sigCtx, stopSignals := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stopSignals()

			go func() {
				<-sigCtx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := app.ShutdownWithContext(shutdownCtx); err != nil {
					rt.logger.Error("server shutdown failed", zap.Error(err))
				}
			}()

			rt.logger.Info("macrolog listening",
				zap.String("addr", "0.0.0.0:"+rt.cfg.Port),
				zap.String("db", rt.cfg.DBPath),
				zap.String("tz", rt.cfg.Location.String()),
			)
			if err := app.Listen(":" + rt.cfg.Port); err != nil {
				return fmt.Errorf("server exited: %w", err)
			}
			return nil
		},
	}
}

func newServerApp(handler *api.Handler, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "macrolog",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Output: zap.NewStdLog(log.Named("http")).Writer(),
	}))
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)
	return app
}
