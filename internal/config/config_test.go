package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Locale != "en" {
		t.Errorf("locale = %q, want en", cfg.Locale)
	}
	if len(cfg.Locations) == 0 {
		t.Error("expected default locations")
	}
	if cfg.Remote.Endpoint != "" {
		t.Errorf("endpoint = %q, want empty (local-only by default)", cfg.Remote.Endpoint)
	}
}

func TestDefaultTemplateParses(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(DefaultConfigTemplate())); err != nil {
		t.Fatalf("default template is not valid yaml: %v", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.Locale != "en" {
		t.Errorf("locale = %q, want en", cfg.Locale)
	}
	if len(cfg.Locations) != 3 {
		t.Errorf("locations = %v, want 3 entries", cfg.Locations)
	}
}

func TestUnmarshalFullConfig(t *testing.T) {
	raw := `
db_path: /tmp/test.db
locale: pl
remote:
  endpoint: https://example.com/exec
  token: s3cret
subjects:
  - name: Matematyka
    color: "#10B981"
    icon: "∑"
    active: true
categories:
  - name: Równania
    subject: Matematyka
    difficulty: medium
    active: true
`
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(raw)); err != nil {
		t.Fatalf("read config: %v", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.Remote.Endpoint != "https://example.com/exec" {
		t.Errorf("endpoint = %q", cfg.Remote.Endpoint)
	}
	if len(cfg.Subjects) != 1 || cfg.Subjects[0].Name != "Matematyka" {
		t.Errorf("subjects = %+v", cfg.Subjects)
	}
	if len(cfg.Categories) != 1 || cfg.Categories[0].Difficulty != "medium" {
		t.Errorf("categories = %+v", cfg.Categories)
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if err := WriteDefaultConfig(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty config written")
	}

	// A second write must not clobber the existing file.
	if err := WriteDefaultConfig(path); err == nil {
		t.Fatal("expected error overwriting existing config")
	}
}
