// Command launcher runs the desktop shell's backend bootstrap without a
// window. It is used to check a packaged or dev tree before shipping it.
package main

import (
	"io"
	"os"

	"EnronClassifier/internal/args"
	"EnronClassifier/internal/backend"
	"EnronClassifier/internal/config"
	"EnronClassifier/internal/crash"
	"EnronClassifier/internal/logging"

	"github.com/fatih/color"
)

var startup = backend.Startup

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	red := color.New(color.FgRed, color.Bold).FprintfFunc()
	green := color.New(color.FgGreen).FprintfFunc()

	parsed, err := args.ParseArgs("launcher", argv, stderr)
	if err != nil {
		return 2
	}

	cfg, err := config.Load(parsed.ConfigFilePath)
	if err != nil {
		red(stderr, "[x] Failed to load config: %v\n", err)
		return 1
	}
	if parsed.ResourceDir != "" {
		cfg.Backend.ResourceDir = parsed.ResourceDir
	}
	if parsed.Mode != "" {
		cfg.Backend.Mode = parsed.Mode
		if err := cfg.Validate(); err != nil {
			red(stderr, "[x] %v\n", err)
			return 1
		}
	}

	logger := logging.New(cfg.Log.Level)
	logger.SetOutput(stderr)

	reporter := crash.NewReporter(cfg.CrashDir())
	defer reporter.RecoverWithCrashReport("launcher", nil)

	if _, err := startup(cfg, logger); err != nil {
		red(stderr, "[x] Failed to launch backend: %v\n", err)
		if path, rerr := reporter.Report("launcher", err, map[string]string{
			"resource": cfg.Backend.Resource,
			"mode":     cfg.ResourceMode().String(),
		}); rerr == nil {
			red(stderr, "[x] Crash report written to: %s\n", path)
		}
		return 1
	}

	green(stdout, "[+] Backend %s launched (%s mode)\n", cfg.Backend.Resource, cfg.ResourceMode())
	return 0
}
