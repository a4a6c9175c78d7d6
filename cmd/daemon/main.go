package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/genricoloni/vidmode/internal/config"
	"github.com/genricoloni/vidmode/internal/display"
	"github.com/genricoloni/vidmode/internal/domain"
	"github.com/genricoloni/vidmode/internal/engine"
	"github.com/genricoloni/vidmode/internal/input"
	"github.com/genricoloni/vidmode/internal/input/cec"
	"github.com/genricoloni/vidmode/internal/power"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// AppOptions is the dependency graph of the daemon
var AppOptions = fx.Options(
	// Provide dependencies
	fx.Provide(
		newLogger,
		fx.Annotate(config.NewAppConfig, fx.As(new(domain.Settings))),
		newPowerController,
		newDisplayManager,
		input.NewKeyboard,
		newInputHub,
		fx.Annotate(engine.NewLogHandler, fx.As(new(domain.InputHandler))),
		newEngine,
	),

	// Lifecycle hooks
	fx.Invoke(registerHooks),
)

func main() {
	app := fx.New(
		// Logger configuration
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		AppOptions,
	)

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start the application
	if err := app.Start(ctx); err != nil {
		panic(err)
	}

	// Wait for interrupt signal
	<-ctx.Done()

	// Stop the application gracefully
	if err := app.Stop(context.Background()); err != nil {
		panic(err)
	}
}

// newLogger creates a new zap logger instance.
// VIDMODE_DEBUG=1 switches to the development configuration.
func newLogger() (*zap.Logger, error) {
	if os.Getenv("VIDMODE_DEBUG") == "1" {
		return zap.NewDevelopment()
	}
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

func newPowerController(lc fx.Lifecycle, logger *zap.Logger) domain.PowerController {
	ctl := power.NewController(logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return ctl.Close()
		},
	})
	return ctl
}

// newDisplayManager picks the native backend of the platform. The
// engine owns it from there and closes it on stop.
func newDisplayManager(logger *zap.Logger) domain.DisplayManager {
	dm, err := display.NewPlatformBackend(logger)
	if err != nil {
		logger.Warn("No native display backend, mode switching disabled", zap.Error(err))
		return display.NewFallbackBackend(logger)
	}
	return dm
}

func newInputHub(logger *zap.Logger, settings domain.Settings, pc domain.PowerController, kb *input.Keyboard) *input.Hub {
	return input.NewHub(logger, cec.NewInput(logger, settings, pc), kb)
}

func newEngine(
	logger *zap.Logger,
	settings domain.Settings,
	displays domain.DisplayManager,
	hub *input.Hub,
	handler domain.InputHandler,
) *engine.Engine {
	return engine.NewEngine(logger, settings, displays, hub, handler)
}

// registerHooks sets up application lifecycle hooks
func registerHooks(lc fx.Lifecycle, logger *zap.Logger, eng *engine.Engine, kb *input.Keyboard) {
	consoleCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Vidmode Daemon Started")
			if err := eng.Start(ctx); err != nil {
				return err
			}
			go newConsole(logger, eng, kb).run(consoleCtx, os.Stdin)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			cancel()
			return eng.Stop(ctx)
		},
	})
}
