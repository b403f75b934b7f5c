package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/zerowrap"
	"github.com/rs/zerolog"

	"github.com/bnema/infradeploy/internal/domain"
)

// initLogger builds the process logger from the logging section. When file
// logging is on, entries go to a rotated file as well and cleanup closes it;
// otherwise cleanup is nil.
func initLogger(cfg Config) (zerowrap.Logger, func(), error) {
	lc := cfg.Logging
	level := strings.ToLower(strings.TrimSpace(lc.Level))
	if _, err := zerolog.ParseLevel(level); err != nil {
		return zerowrap.Default(), nil, fmt.Errorf("%w: logging.level %q: %w", domain.ErrInvalidConfig, lc.Level, err)
	}
	base := zerowrap.Config{Level: level, Format: lc.Format}

	if !lc.File.Enabled {
		return zerowrap.New(base), nil, nil
	}

	path := lc.File.Path
	if path == "" {
		path = filepath.Join(DefaultStateDir(), "logs", "infradeploy.log")
	}
	log, cleanup, err := zerowrap.NewWithFile(base, zerowrap.FileConfig{
		Enabled:    true,
		Path:       path,
		MaxSize:    lc.File.MaxSize,
		MaxBackups: lc.File.MaxBackups,
		MaxAge:     lc.File.MaxAge,
		Compress:   lc.File.Compress,
	})
	if err != nil {
		return zerowrap.Default(), nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return log, cleanup, nil
}
