package builder

import (
	"fmt"

	"go.uber.org/zap"
)

// setupLogger builds the process-wide zap logger. Development config for
// local runs, production JSON config otherwise.
func setupLogger(level, environment string) (*zap.Logger, error) {
	var cfg zap.Config
	switch environment {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg.Level = lvl

	return cfg.Build()
}
