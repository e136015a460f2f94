package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Studylog Configuration

# Where the local session ledger lives
# (default: $XDG_DATA_HOME/studylog/studylog.db)
# db_path: /path/to/studylog.db

# Interface language: "en" or "pl"
locale: en

# Remote spreadsheet store. Leave endpoint empty to keep sessions local.
remote:
  endpoint: ""
  token: ""

# Study locations offered in the session form
locations:
  - W domu
  - W szkole
  - Biblioteka

# Subjects and categories. When omitted, the built-in catalog is used.
# subjects:
#   - name: Matematyka
#     color: "#10B981"
#     icon: "∑"
#     active: true
# categories:
#   - name: Równania
#     subject: Matematyka
#     difficulty: medium
#     active: true
`
}

// WriteDefaultConfig writes the commented default config to path,
// creating parent directories as needed. Refuses to overwrite.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(DefaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// DefaultConfigPath returns ~/.config/studylog/config.yaml, honoring
// XDG_CONFIG_HOME when set.
func DefaultConfigPath() (string, error) {
	cfgHome := os.Getenv("XDG_CONFIG_HOME")
	if cfgHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		cfgHome = filepath.Join(home, ".config")
	}
	return filepath.Join(cfgHome, "studylog", "config.yaml"), nil
}
