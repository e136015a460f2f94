// Package config provides configuration types and defaults for studylog.
package config

// RemoteConfig points at the spreadsheet-backed remote store.
type RemoteConfig struct {
	// Endpoint is the HTTP URL writes are POSTed to. Empty disables
	// remote submission; sessions then persist to the local ledger only.
	Endpoint string `mapstructure:"endpoint"`
	Token    string `mapstructure:"token"`
}

// SubjectConfig defines one selectable subject.
type SubjectConfig struct {
	Name   string `mapstructure:"name"`
	Color  string `mapstructure:"color"` // hex color e.g. "#10B981"
	Icon   string `mapstructure:"icon"`
	Active bool   `mapstructure:"active"`
}

// CategoryConfig defines one task category within a subject.
type CategoryConfig struct {
	Name       string `mapstructure:"name"`
	Subject    string `mapstructure:"subject"`
	Difficulty string `mapstructure:"difficulty"` // "easy", "medium", "hard"
	Active     bool   `mapstructure:"active"`
}

// Config holds all configuration options for studylog.
type Config struct {
	DBPath     string           `mapstructure:"db_path"`
	Locale     string           `mapstructure:"locale"`
	Remote     RemoteConfig     `mapstructure:"remote"`
	Locations  []string         `mapstructure:"locations"`
	Subjects   []SubjectConfig  `mapstructure:"subjects"`
	Categories []CategoryConfig `mapstructure:"categories"`
}

// Defaults returns a Config with sensible default values. Subjects and
// categories left empty fall back to the built-in catalog.
func Defaults() Config {
	return Config{
		Locale:    "en",
		Locations: []string{"W domu", "W szkole", "Biblioteka"},
	}
}
