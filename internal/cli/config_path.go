package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"codecheck/internal/config"
)

// resolveConfigPath normalizes a --config value or searches upward from the
// working directory.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}
