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
	"os"
	"path/filepath"
	"testing"
	"time"
)

func isolate(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(EnvConfigPath, path)
	for _, name := range envKeys {
		t.Setenv(name, "")
	}
	return path
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.UI.SlideInterval() != 8*time.Second || cfg.UI.EnterDelay() != 10*time.Millisecond || cfg.UI.ExitDelay() != 300*time.Millisecond {
		t.Fatalf("default timings wrong: %#v", cfg.UI)
	}
	if len(cfg.Slides) != 2 || cfg.Slides[0].Title != "Game on!" {
		t.Fatalf("default slides wrong: %#v", cfg.Slides)
	}
	if cfg.Telemetry.OptIn {
		t.Fatalf("telemetry must be off by default")
	}
}

func TestSaveThenLoad(t *testing.T) {
	isolate(t)
	cfg := Defaults()
	cfg.UI.ExitDelayMs = 150
	cfg.Catalog.Path = "/srv/games.yaml"
	cfg.Telemetry.OptIn = true
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.UI.ExitDelayMs != 150 || got.Catalog.Path != "/srv/games.yaml" || !got.Telemetry.OptIn {
		t.Fatalf("round trip lost fields: %#v", got)
	}
}

func TestNonPositiveTimingsFallBack(t *testing.T) {
	path := isolate(t)
	doc := "ui:\n  slide_interval_ms: -5\n  exit_delay_ms: 0\n  enter_delay_ms: 20\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.UI.SlideIntervalMs != 8000 || cfg.UI.ExitDelayMs != 300 || cfg.UI.EnterDelayMs != 20 {
		t.Fatalf("timings not sanitised: %#v", cfg.UI)
	}
	if (UIConfig{}).ExitDelay() != 300*time.Millisecond {
		t.Fatalf("zero UIConfig should yield default exit delay")
	}
}

func TestMalformedFileKeepsDefaults(t *testing.T) {
	path := isolate(t)
	if err := os.WriteFile(path, []byte("ui: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	if cfg.UI.SlideIntervalMs != 8000 {
		t.Fatalf("defaults not returned alongside error: %#v", cfg.UI)
	}
}

func TestMergeIncludesLogging(t *testing.T) {
	dst := Defaults()
	src := Defaults()
	src.Logging.Level = "DEBUG"
	src.Logging.Format = "json"
	src.Logging.Source = true
	src.Logging.File = "/tmp/eg.log"
	mergeInto(&dst, &src)
	if dst.Logging.Level != "debug" || dst.Logging.Format != "json" || !dst.Logging.Source || dst.Logging.File != "/tmp/eg.log" {
		t.Fatalf("logging fields not merged correctly: %#v", dst.Logging)
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvSlideIntervalMs, "1000")
	t.Setenv(EnvExitDelayMs, "-1")
	t.Setenv(EnvCatalogPath, "/data/games.json")
	t.Setenv(EnvTelemetryOptIn, "on")
	t.Setenv(EnvLogLevel, "ERROR")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.UI.SlideIntervalMs != 1000 || cfg.UI.ExitDelayMs != 300 {
		t.Fatalf("timing overrides wrong: %#v", cfg.UI)
	}
	if cfg.Catalog.Path != "/data/games.json" || !cfg.Telemetry.OptIn || cfg.Logging.Level != "error" {
		t.Fatalf("env overrides not applied: %#v", cfg)
	}
	if name, ok := EnvOverrideFor("catalog.path"); !ok || name != EnvCatalogPath {
		t.Fatalf("EnvOverrideFor(catalog.path) = %q, %v", name, ok)
	}
	if _, ok := EnvOverrideFor("logging.file"); ok {
		t.Fatalf("logging.file is not overridden")
	}
	if _, ok := EnvOverrideFor("no.such.key"); ok {
		t.Fatalf("unknown key reported as overridden")
	}
}
