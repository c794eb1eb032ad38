package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ini "github.com/go-ini/ini"

	"github.com/gg582/hanjamo/internal/common"
)

// Config holds the settings shared by the jamo command and server.
type Config struct {
	Form     string
	Encoding string
	Role     string
	Socket   string
	LogLevel string
	Layout   string
}

const (
	FormSyllable = "syllable"
	FormJamo     = "jamo"
	FormHCJ      = "hcj"

	EncodingUTF8  = "utf-8"
	EncodingEUCKR = "euc-kr"
)

var (
	forms     = []string{FormSyllable, FormJamo, FormHCJ}
	encodings = []string{EncodingUTF8, EncodingEUCKR}
	roles     = []string{"", "lead", "tail"}
	levels    = []string{"debug", "info", "warn", "error"}
)

func Default() Config {
	return Config{
		Form:     FormSyllable,
		Encoding: EncodingUTF8,
		Socket:   common.DefaultSocketPath(),
		LogLevel: "info",
		Layout:   common.DefaultLayoutName,
	}
}

// DefaultPath is where `jamo config init` writes and where Load looks
// when no path is given.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "hanjamo", "jamo.ini")
	}
	return filepath.Join(os.TempDir(), "hanjamo", "jamo.ini")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config: %s is a directory", path)
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	output := file.Section("output")
	cfg.Form = output.Key("form").In(cfg.Form, forms)
	cfg.Encoding = output.Key("encoding").In(cfg.Encoding, encodings)
	cfg.Role = file.Section("hcj").Key("role").In(cfg.Role, roles)
	cfg.Socket = file.Section("server").Key("socket").MustString(cfg.Socket)
	cfg.LogLevel = file.Section("log").Key("level").In(cfg.LogLevel, levels)

	layout := file.Section("keyboard").Key("layout").MustString(cfg.Layout)
	if _, err := common.ResolveLayout(layout); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	cfg.Layout = layout
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	file := ini.Empty()
	sections := []struct {
		name string
		keys [][2]string
	}{
		{"output", [][2]string{{"form", cfg.Form}, {"encoding", cfg.Encoding}}},
		{"hcj", [][2]string{{"role", cfg.Role}}},
		{"server", [][2]string{{"socket", cfg.Socket}}},
		{"log", [][2]string{{"level", cfg.LogLevel}}},
		{"keyboard", [][2]string{{"layout", cfg.Layout}}},
	}
	for _, s := range sections {
		sec, err := file.NewSection(s.name)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		for _, kv := range s.keys {
			if _, err := sec.NewKey(kv[0], kv[1]); err != nil {
				return fmt.Errorf("config: %w", err)
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
