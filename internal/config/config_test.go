package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	cfg "github.com/senachat/sena/internal/config"
)

func TestLoadConfig_NoFile_ReturnsDefaultsAndNotFound(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Chdir(tmp)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		t.Fatalf("expected ConfigFileNotFoundError, got %T %v", err, err)
	}
	if got.Database.Type != "sqlite" {
		t.Fatalf("expected default sqlite, got %q", got.Database.Type)
	}
	if got.Language != "en" {
		t.Fatalf("expected default language en, got %q", got.Language)
	}
}

func TestWriteConfigFile_CreatesFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)

	c := cfg.Config{}
	c.Database.Type = "sqlite"
	c.Database.Dsn = "./sena.db"
	c.Language = "pt-BR"

	written, err := cfg.WriteConfigFile(&c, false)
	if err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}

	path, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if written != path {
		t.Fatalf("expected written path %q, got %q", path, written)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s, stat error: %v", path, err)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := t.TempDir()
	yaml := "database:\n  type: postgres\n  dsn: postgresql://user@/db\nlanguage: de\ndark_mode: true\n"
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Database.Type != "postgres" {
		t.Fatalf("expected postgres, got %q", got.Database.Type)
	}
	if got.Language != "de" {
		t.Fatalf("expected de, got %q", got.Language)
	}
	if !got.DarkMode {
		t.Fatalf("expected dark_mode true from file")
	}
}

func TestLoadConfig_EnvAndFlagsOverrideFile(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte("language: de\nlog:\n  level: info\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("SENA_LOG_LEVEL", "debug")

	cmd := &cobra.Command{}
	cmd.Flags().String("language", "en", "")
	cmd.Flags().Bool("dark-mode", false, "")
	if err := cmd.Flags().Parse([]string{"--language", "pt-BR", "--dark-mode"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Log.Level != "debug" {
		t.Fatalf("expected env override debug, got %q", got.Log.Level)
	}
	if got.Language != "pt-BR" {
		t.Fatalf("expected flag override pt-BR, got %q", got.Language)
	}
	if !got.DarkMode {
		t.Fatalf("expected --dark-mode to set dark_mode")
	}
}

func TestLoadConfig_MalformedFileIsError(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte("language: [unterminated\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := cfg.LoadConfig[cfg.Config](nil, cfg.Defaults(), &file); err == nil {
		t.Fatalf("expected parse error for malformed config")
	}
}
