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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"beziercurve/internal/vector"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if diff := cmp.Diff(Defaults(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMergesPartialFile(t *testing.T) {
	p := writeConfig(t, `
window:
  width: 800
display:
  show_functions: true
  curve_color: [1, 1, 0]
`)
	cfg, err := LoadFrom(p)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	want := Defaults()
	want.Window.Width = 800
	want.Display.ShowFunctions = true
	want.Display.CurveColor = RGB{1, 1, 0}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	// keys absent from the file keep their defaults
	if !cfg.Display.ShowControlLines || cfg.Window.Height != 450 {
		t.Fatalf("defaults lost during merge: %#v", cfg)
	}
}

func TestLoadRejectsSchemaViolation(t *testing.T) {
	p := writeConfig(t, `
curve:
  sample_step: 2
display:
  line_color: [1, 0]
`)
	cfg, err := LoadFrom(p)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "invalid config") {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Curve.SampleStep != Defaults().Curve.SampleStep {
		t.Fatalf("invalid file must fall back to defaults, got step %v", cfg.Curve.SampleStep)
	}
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	p := writeConfig(t, "window: [unclosed\n")
	cfg, err := LoadFrom(p)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg.Window.Width != 450 {
		t.Fatalf("expected default width, got %d", cfg.Window.Width)
	}
}

func TestValidateEmptyDocument(t *testing.T) {
	if err := Validate(nil); err != nil {
		t.Fatalf("empty document should validate: %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Defaults()
	cfg.Window.Title = "Curves"
	cfg.Display.PointColor = RGB{0.5, 0.25, 1}
	if err := SaveTo(p, cfg); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if err := Validate(data); err != nil {
		t.Fatalf("saved config does not validate: %v", err)
	}
	got, err := LoadFrom(p)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeRepairsNonsense(t *testing.T) {
	cfg := AppConfig{Window: WindowConfig{Width: -1}, Logging: LoggingConfig{Level: " DEBUG "}}
	cfg.normalize()
	d := Defaults()
	if cfg.Window.Width != d.Window.Width || cfg.Window.Height != d.Window.Height {
		t.Fatalf("window not repaired: %#v", cfg.Window)
	}
	if cfg.Window.Title != d.Window.Title || cfg.Curve.SampleStep != d.Curve.SampleStep || cfg.Curve.CapacityHint != d.Curve.CapacityHint {
		t.Fatalf("defaults not applied: %#v", cfg)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level not normalized: %q", cfg.Logging.Level)
	}
}

func TestEnvOverridesWindowAndCurve(t *testing.T) {
	t.Setenv(EnvWindowWidth, "640")
	t.Setenv(EnvWindowHeight, "480")
	t.Setenv(EnvSampleStep, "0.1")
	t.Setenv(EnvShowFunctions, "yes")
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != 480 {
		t.Fatalf("window override failed: %#v", cfg.Window)
	}
	if cfg.Curve.SampleStep != 0.1 || !cfg.Display.ShowFunctions {
		t.Fatalf("curve/display override failed: %#v %#v", cfg.Curve, cfg.Display)
	}
}

func TestEnvOverridesBeatFile(t *testing.T) {
	p := writeConfig(t, "window:\n  width: 800\n")
	t.Setenv(EnvWindowWidth, "300")
	cfg, err := LoadFrom(p)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Window.Width != 300 {
		t.Fatalf("Window.Width = %d, want 300", cfg.Window.Width)
	}
}

func TestEnvOverridesLogging(t *testing.T) {
	t.Setenv(EnvLogLevel, "ERROR")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvLogSource, "1")
	t.Setenv(EnvLogFile, "/tmp/bzc.log")
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Logging.Level != "error" || cfg.Logging.Format != "json" || !cfg.Logging.Source || cfg.Logging.File != "/tmp/bzc.log" {
		t.Fatalf("logging env overrides not applied: %#v", cfg.Logging)
	}
	lo := cfg.LogOptions()
	if lo.Level != "error" || lo.Format != "json" || !lo.AddSource || lo.File != "/tmp/bzc.log" {
		t.Fatalf("LogOptions mismatch: %#v", lo)
	}
}

func TestEnvOverrideFor(t *testing.T) {
	t.Setenv(EnvSampleStep, "0.05")
	t.Setenv(EnvLogLevel, "")
	if env, ok := EnvOverrideFor("curve.sample_step"); !ok || env != EnvSampleStep {
		t.Fatalf("EnvOverrideFor(curve.sample_step) = %q, %v", env, ok)
	}
	if _, ok := EnvOverrideFor("logging.level"); ok {
		t.Fatalf("empty env must not count as override")
	}
	if _, ok := EnvOverrideFor("unknown.key"); ok {
		t.Fatalf("unknown key must not report an override")
	}
}

func TestConfigPathEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/bzc.yaml")
	p, err := ConfigPath()
	if err != nil || p != "/etc/bzc.yaml" {
		t.Fatalf("ConfigPath() = %q, %v", p, err)
	}
}

func TestSceneOptions(t *testing.T) {
	cfg := Defaults()
	cfg.Display.ShowControlPoints = false
	o := cfg.SceneOptions()
	if !o.ShowControlLines || o.ShowControlPoints || o.ShowFunctions {
		t.Fatalf("flags mismatch: %#v", o)
	}
	if o.CurveColor != vector.Green || o.LineColor != vector.Red || o.PointColor != vector.Cyan {
		t.Fatalf("colors mismatch: %#v", o)
	}
}

func TestOverridableKeysAllResolve(t *testing.T) {
	for _, env := range []string{EnvWindowWidth, EnvWindowHeight, EnvSampleStep, EnvShowFunctions, EnvLogLevel, EnvLogFormat, EnvLogSource, EnvLogFile} {
		t.Setenv(env, "1")
	}
	for _, key := range OverridableKeys {
		if _, ok := EnvOverrideFor(key); !ok {
			t.Fatalf("key %q listed as overridable but EnvOverrideFor does not know it", key)
		}
	}
}
