package main

import (
	"embed"
	"os"

	"EnronClassifier/internal/config"
	"EnronClassifier/internal/crash"
	"EnronClassifier/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

//go:embed all:frontend/dist
var assets embed.FS

var exit = os.Exit

func main() {
	logger := logging.New("info")

	cfg, err := loadConfig(logger, crash.NewReporter(config.Config{}.CrashDir()))
	if err != nil {
		return
	}

	logger = logging.New(cfg.Log.Level)
	reporter := crash.NewReporter(cfg.CrashDir())
	defer reporter.RecoverWithCrashReport("shell", nil)

	app := NewApp(cfg, logger, reporter)
	err = wails.Run(&options.App{
		Title:  cfg.App.Title,
		Width:  cfg.App.Width,
		Height: cfg.App.Height,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 10, G: 25, B: 41, A: 1},
		OnStartup:        app.startup,
		Logger:           &logging.WailsLogger{Logger: logger},
		Bind: []interface{}{
			app,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyNever,
			ProgramName:         cfg.App.Title,
		},
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
			DisableWindowIcon:    false,
		},
	})
	if err != nil {
		logger.WithError(err).Fatal("Error while running application")
	}
}

// loadConfig reports a broken config the same way as a failed bootstrap.
// The returned error only tells main to stop.
func loadConfig(logger *logrus.Logger, reporter *crash.Reporter) (config.Config, error) {
	cfg, err := config.Load("")
	if err != nil {
		fatal(reporter, logger, "config", err, map[string]string{
			"config_path": os.Getenv(config.EnvConfigPath),
		})
		return config.Config{}, err
	}
	return cfg, nil
}

// fatal writes a crash report, logs err and exits with status 1.
func fatal(reporter *crash.Reporter, logger *logrus.Logger, component string, err error, extra map[string]string) {
	path, rerr := reporter.Report(component, err, extra)
	entry := logger.WithError(err).WithField("component", component)
	if rerr == nil {
		entry = entry.WithField("crash_report", path)
	} else {
		entry = entry.WithField("crash_report_error", rerr.Error())
	}
	entry.Error("Startup failed")
	exit(1)
}
