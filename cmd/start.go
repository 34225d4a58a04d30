package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GiyoMoon/WitchTrade-BE/core/loader"
	"github.com/GiyoMoon/WitchTrade-BE/core/logger"
	"github.com/GiyoMoon/WitchTrade-BE/core/metrics"
	"github.com/GiyoMoon/WitchTrade-BE/core/middleware/auth"
	"github.com/GiyoMoon/WitchTrade-BE/core/middleware/rayid"
	"github.com/GiyoMoon/WitchTrade-BE/core/server"
	"github.com/GiyoMoon/WitchTrade-BE/core/storage"
	"github.com/GiyoMoon/WitchTrade-BE/feature/catalog"
	"github.com/GiyoMoon/WitchTrade-BE/feature/inventory"
	"github.com/GiyoMoon/WitchTrade-BE/feature/markets"
	"github.com/GiyoMoon/WitchTrade-BE/feature/notifications"
	"github.com/GiyoMoon/WitchTrade-BE/feature/offers"
	"github.com/GiyoMoon/WitchTrade-BE/feature/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "github.com/GiyoMoon/WitchTrade-BE/docs/swagger"
)

const shutdownTimeout = 10 * time.Second

// @title WitchTrade API
// @version 1.0
// @description Marketplace backend for trading Witch It items.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the marketplace server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.close()
		zap.ReplaceGlobals(rt.logger)

		store, err := storage.NewClient(rt.cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		app := server.NewApp(rt.cfg.Server)

		mgr := loader.NewManager(rt.logger)
		mgr.Register(users.NewFeature(rt.repo, rt.logger))
		mgr.Register(catalog.NewFeature(rt.repo, store, rt.cfg.Storage, rt.cache, rt.logger))
		mgr.Register(inventory.NewFeature(rt.repo, rt.logger))
		mgr.Register(markets.NewFeature(rt.repo, rt.logger))
		mgr.Register(notifications.NewFeature(rt.repo, rt.logger))
		mgr.Register(offers.NewFeature(rt.repo, rt.cache, rt.notifier(), rt.logger))

		// RayID first so every log line below can be traced
		app.Use(rayid.New())
		app.Use(requestLogger(rt.logger))

		app.Get("/metrics", metrics.Handler())
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			rt.logger.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			return app.Listen(":" + rt.cfg.Server.Port)
		})
		g.Go(func() error {
			<-ctx.Done()
			rt.logger.Info("Shutting down server...")
			return app.ShutdownWithTimeout(shutdownTimeout)
		})
		return g.Wait()
	},
}

func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Debug("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
