/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"endgame/internal/slides"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are treated as read-only overrides at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.

type UIConfig struct {
	SlideIntervalMs int    `yaml:"slide_interval_ms"`
	EnterDelayMs    int    `yaml:"enter_delay_ms"`
	ExitDelayMs     int    `yaml:"exit_delay_ms"`
	CancelKey       string `yaml:"cancel_key"`
}

type CatalogConfig struct {
	// Path to a JSON or YAML game list; empty means the embedded catalog.
	Path string `yaml:"path"`
}

type TelemetryConfig struct {
	OptIn bool `yaml:"opt_in"`
	// File receives events as JSON lines; empty routes them to the log.
	File string `yaml:"file"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int             `yaml:"config_version"`
	UI            UIConfig        `yaml:"ui"`
	Slides        []slides.Slide  `yaml:"slides,omitempty"`
	Catalog       CatalogConfig   `yaml:"catalog"`
	Telemetry     TelemetryConfig `yaml:"telemetry"`
	Logging       LoggingConfig   `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		UI:            UIConfig{SlideIntervalMs: 8000, EnterDelayMs: 10, ExitDelayMs: 300, CancelKey: "Escape"},
		Slides:        slides.DefaultSlides(),
		Logging:       LoggingConfig{Level: "info", Format: "console"},
	}
}

// Env var names used as overrides.
const (
	EnvConfigPath      = "EG_CONFIG"
	EnvSlideIntervalMs = "EG_SLIDE_INTERVAL_MS"
	EnvEnterDelayMs    = "EG_ENTER_DELAY_MS"
	EnvExitDelayMs     = "EG_EXIT_DELAY_MS"
	EnvCatalogPath     = "EG_CATALOG_PATH"
	EnvTelemetryOptIn  = "EG_TELEMETRY_OPT_IN"
	EnvTelemetryFile   = "EG_TELEMETRY_FILE"
	EnvLogLevel        = "EG_LOG_LEVEL"
	EnvLogFormat       = "EG_LOG_FORMAT"
	EnvLogSource       = "EG_LOG_SOURCE"
	EnvLogFile         = "EG_LOG_FILE"
)

// envKeys maps dotted config keys to the env var overriding them.
var envKeys = map[string]string{
	"ui.slide_interval_ms": EnvSlideIntervalMs,
	"ui.enter_delay_ms":    EnvEnterDelayMs,
	"ui.exit_delay_ms":     EnvExitDelayMs,
	"catalog.path":         EnvCatalogPath,
	"telemetry.opt_in":     EnvTelemetryOptIn,
	"telemetry.file":       EnvTelemetryFile,
	"logging.level":        EnvLogLevel,
	"logging.format":       EnvLogFormat,
	"logging.source":       EnvLogSource,
	"logging.file":         EnvLogFile,
}

// ConfigPath returns the per-user config file path. EG_CONFIG wins when set.
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "Endgame")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "Endgame")
	default:
		home := os.Getenv("HOME")
		if home == "" {
			return "", errors.New("cannot resolve config directory")
		}
		base = filepath.Join(home, ".config", "endgame")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and merges environment overrides.
// A missing file is not an error; a malformed one is reported but defaults are still returned.
func Load() (AppConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := Defaults()
		applyEnvOverrides(&cfg)
		return cfg, err
	}
	return LoadFile(path)
}

// LoadFile is Load for an explicit path.
func LoadFile(path string) (AppConfig, error) {
	cfg := Defaults()
	var loadErr error
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			loadErr = fmt.Errorf("config %s: %w", path, err)
		} else {
			mergeInto(&cfg, &fileCfg)
		}
	case !errors.Is(err, os.ErrNotExist):
		loadErr = fmt.Errorf("config %s: %w", path, err)
	}
	applyEnvOverrides(&cfg)
	return cfg, loadErr
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	// timings: non-positive values keep the default
	if src.UI.SlideIntervalMs > 0 {
		dst.UI.SlideIntervalMs = src.UI.SlideIntervalMs
	}
	if src.UI.EnterDelayMs > 0 {
		dst.UI.EnterDelayMs = src.UI.EnterDelayMs
	}
	if src.UI.ExitDelayMs > 0 {
		dst.UI.ExitDelayMs = src.UI.ExitDelayMs
	}
	if k := strings.TrimSpace(src.UI.CancelKey); k != "" {
		dst.UI.CancelKey = k
	}
	if len(src.Slides) > 0 {
		dst.Slides = append([]slides.Slide(nil), src.Slides...)
	}
	if p := strings.TrimSpace(src.Catalog.Path); p != "" {
		dst.Catalog.Path = p
	}
	// booleans: copy directly from src (file) so user preferences persist
	dst.Telemetry.OptIn = src.Telemetry.OptIn
	if f := strings.TrimSpace(src.Telemetry.File); f != "" {
		dst.Telemetry.File = f
	}
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	envPositiveInt(EnvSlideIntervalMs, &cfg.UI.SlideIntervalMs)
	envPositiveInt(EnvEnterDelayMs, &cfg.UI.EnterDelayMs)
	envPositiveInt(EnvExitDelayMs, &cfg.UI.ExitDelayMs)
	if v := strings.TrimSpace(os.Getenv(EnvCatalogPath)); v != "" {
		cfg.Catalog.Path = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTelemetryOptIn)); v != "" {
		cfg.Telemetry.OptIn = truthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvTelemetryFile)); v != "" {
		cfg.Telemetry.File = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = truthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

func envPositiveInt(name string, dst *int) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		*dst = n
	}
}

func truthy(v string) bool {
	lv := strings.ToLower(strings.TrimSpace(v))
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	name, ok := envKeys[key]
	if !ok || os.Getenv(name) == "" {
		return "", false
	}
	return name, true
}

// SlideInterval returns the rotation period, falling back to the default when unset.
func (u UIConfig) SlideInterval() time.Duration {
	return millis(u.SlideIntervalMs, Defaults().UI.SlideIntervalMs)
}

// EnterDelay returns the modal mount-to-visible delay.
func (u UIConfig) EnterDelay() time.Duration {
	return millis(u.EnterDelayMs, Defaults().UI.EnterDelayMs)
}

// ExitDelay returns the modal exit animation length.
func (u UIConfig) ExitDelay() time.Duration {
	return millis(u.ExitDelayMs, Defaults().UI.ExitDelayMs)
}

func millis(v, def int) time.Duration {
	if v <= 0 {
		v = def
	}
	return time.Duration(v) * time.Millisecond
}
