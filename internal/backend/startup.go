package backend

import (
	"fmt"

	"EnronClassifier/internal/config"
	"EnronClassifier/internal/resource"

	"github.com/sirupsen/logrus"
)

// Startup selects the resolver for cfg and launches the backend. Both the
// desktop entry point and the headless launcher abort on a non-nil error.
func Startup(cfg config.Config, logger *logrus.Logger) (*Bootstrapper, error) {
	mode := cfg.ResourceMode()
	resolver, err := resource.Select(mode, cfg.Backend.ResourceDir)
	if err != nil {
		return nil, fmt.Errorf("select %s resolver: %w", mode, err)
	}

	if logger != nil {
		logger.WithFields(logrus.Fields{
			"mode":     mode.String(),
			"resource": cfg.Backend.Resource,
		}).Info("Launching backend")
	}

	b := New(resolver, WithResource(cfg.Backend.Resource), WithLogger(logger))
	return b, b.Launch()
}
