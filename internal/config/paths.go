package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Path constants used by the CLI and loaders.
const (
	// ConfigFileName is the canonical configuration file name.
	ConfigFileName = "codecheck.yml"
	// OutputsDirName holds the check's output files below the base directory.
	OutputsDirName = "outputs"
)

// BaseDirFromConfigPath derives the certificate base directory from a config
// file path. Manifest paths resolve relative to it.
func BaseDirFromConfigPath(configPath string) string {
	return filepath.Dir(configPath)
}

// OutputsDir returns the output directory below the base directory.
func OutputsDir(baseDir string) string {
	return filepath.Join(baseDir, OutputsDirName)
}

// FindConfigPath searches upward from a directory for a codecheck.yml.
func FindConfigPath(startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	dir = abs

	for {
		configPath := filepath.Join(dir, ConfigFileName)
		info, err := os.Stat(configPath)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %q is a directory", configPath)
			}
			return configPath, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat config path %q: %w", configPath, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found in %s or parent directories", ConfigFileName, dir)
		}
		dir = parent
	}
}
