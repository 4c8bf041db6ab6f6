package main

import (
	"context"
	"fmt"

	"EnronClassifier/internal/backend"
	"EnronClassifier/internal/config"
	"EnronClassifier/internal/crash"
	"EnronClassifier/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// App is bound to the front-end; every exported method is callable from JS.
type App struct {
	ctx      context.Context
	cfg      config.Config
	logger   *logrus.Logger
	reporter *crash.Reporter

	emit   logging.Emitter
	launch func(config.Config, *logrus.Logger) error
}

func NewApp(cfg config.Config, logger *logrus.Logger, reporter *crash.Reporter) *App {
	return &App{
		cfg:      cfg,
		logger:   logger,
		reporter: reporter,
		emit:     runtime.EventsEmit,
		launch:   startBackend,
	}
}

// startup runs from OnStartup, before the front-end loads. Binding
// generation (-tags bindings) never calls it, so the bindings step of
// `wails build` spawns no backend.
func (a *App) startup(ctx context.Context) {
	defer a.reporter.RecoverWithCrashReport("startup", nil)

	a.ctx = ctx
	a.logger.AddHook(&logging.EventHook{Ctx: ctx, Emit: a.emit})

	if err := a.launch(a.cfg, a.logger); err != nil {
		fatal(a.reporter, a.logger, "backend bootstrap", err, map[string]string{
			"resource":     a.cfg.Backend.Resource,
			"mode":         a.cfg.ResourceMode().String(),
			"resource_dir": a.cfg.Backend.ResourceDir,
		})
		return
	}
	a.logger.Debug("Front-end bridge ready")
}

// Greet returns a greeting for the given name
func (a *App) Greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from Rust!", name)
}

// startBackend resolves and spawns the backend. A shell without its backend
// has nothing to show, so any error here ends the process.
func startBackend(cfg config.Config, logger *logrus.Logger) error {
	_, err := backend.Startup(cfg, logger)
	return err
}
