package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rshade/selectkit/internal/logging"
)

// ProjectConfigName is the per-project overlay file name.
const ProjectConfigName = ".selectkit.yaml"

// FindProjectConfig walks up from startDir looking for ProjectConfigName and
// returns its absolute path, or "" if none is found.
func FindProjectConfig(ctx context.Context, startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Err(err).
			Str("start_dir", startDir).
			Msg("failed to resolve absolute path for project config search")
		return ""
	}

	for {
		candidate := filepath.Join(dir, ProjectConfigName)
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// NewWithProjectConfig creates a Config by loading global config then
// shallow-merging the project overlay on top. If overlayPath is empty,
// behaves identically to New(). Environment overrides win over both files.
func NewWithProjectConfig(ctx context.Context, overlayPath string) *Config {
	cfg := New()

	if overlayPath == "" {
		return cfg
	}

	if _, err := os.Stat(overlayPath); err != nil {
		return cfg
	}

	cfgCopy := New()
	if err := ShallowMergeYAML(cfgCopy, overlayPath); err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using global defaults")
		return cfg
	}
	cfgCopy.ApplyEnvOverrides()

	return cfgCopy
}
