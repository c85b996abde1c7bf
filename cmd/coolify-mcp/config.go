package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bobmcallan/coolify-mcp/internal/common"
	"github.com/bobmcallan/coolify-mcp/internal/config"
)

const defaultConfigName = "coolify-mcp.toml"

// loadConfig resolves the config files to read, loads them and validates the
// result. Explicit files must exist; when none are given the first
// auto-discovered file is used, or defaults when none is found.
func loadConfig(opts *globalOptions, apply func(*config.Config)) (*config.Config, error) {
	files := opts.configFiles
	if len(files) == 0 {
		for _, path := range configSearchPaths() {
			if _, err := os.Stat(path); err == nil {
				files = []string{path}
				break
			}
		}
	}

	cfg, err := config.LoadFromFiles(files...)
	if err != nil {
		return nil, err
	}

	if apply != nil {
		apply(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// setupLogger creates an arbor logger based on config.
func setupLogger(cfg *config.Config) *common.Logger {
	return common.NewLoggerFromConfig(cfg.Logging)
}

// configSearchPaths returns config files to auto-discover (first match wins).
// Binary-relative paths are tried first, with CWD and Docker fallbacks after.
// Paths are deduplicated via filepath.Abs.
func configSearchPaths() []string {
	candidates := []string{
		defaultConfigName,
		filepath.Join("config", defaultConfigName),
		filepath.Join("docker", defaultConfigName),
	}

	exe, err := os.Executable()
	if err != nil {
		return candidates
	}
	binDir := filepath.Dir(exe)

	paths := []string{
		filepath.Join(binDir, defaultConfigName),
		filepath.Join(binDir, "config", defaultConfigName),
	}
	paths = append(paths, candidates...)

	seen := make(map[string]bool, len(paths))
	deduped := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true
		deduped = append(deduped, p)
	}
	return deduped
}
