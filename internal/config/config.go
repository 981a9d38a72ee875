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
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"beziercurve/internal/bezier"
	applog "beziercurve/internal/log"
	"beziercurve/internal/scene"
	"beziercurve/internal/vector"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are treated as read-only overrides at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.
type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Window        WindowConfig  `yaml:"window"`
	Curve         CurveConfig   `yaml:"curve"`
	Display       DisplayConfig `yaml:"display"`
	Logging       LoggingConfig `yaml:"logging"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type CurveConfig struct {
	SampleStep   float64 `yaml:"sample_step"`
	CapacityHint int     `yaml:"capacity_hint"`
}

// RGB is a color as three channels in [0, 1].
type RGB [3]float64

func (c RGB) Color() vector.Color { return vector.Color{R: c[0], G: c[1], B: c[2]} }

func rgbOf(c vector.Color) RGB { return RGB{c.R, c.G, c.B} }

type DisplayConfig struct {
	ShowControlLines  bool `yaml:"show_control_lines"`
	ShowControlPoints bool `yaml:"show_control_points"`
	ShowFunctions     bool `yaml:"show_functions"`
	CurveColor        RGB  `yaml:"curve_color,flow"`
	LineColor         RGB  `yaml:"line_color,flow"`
	PointColor        RGB  `yaml:"point_color,flow"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

//go:embed schema.json
var schemaJSON []byte

// Defaults returns the application defaults. Display defaults follow scene.DefaultOptions.
func Defaults() AppConfig {
	d := scene.DefaultOptions()
	return AppConfig{
		ConfigVersion: 1,
		Window:        WindowConfig{Width: 450, Height: 450, Title: "Bezier Curve"},
		Curve:         CurveConfig{SampleStep: bezier.DefaultStep, CapacityHint: 1000},
		Display: DisplayConfig{
			ShowControlLines:  d.ShowControlLines,
			ShowControlPoints: d.ShowControlPoints,
			ShowFunctions:     d.ShowFunctions,
			CurveColor:        rgbOf(d.CurveColor),
			LineColor:         rgbOf(d.LineColor),
			PointColor:        rgbOf(d.PointColor),
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Env var names used as overrides.
const (
	EnvConfigPath    = "BZC_CONFIG"
	EnvWindowWidth   = "BZC_WINDOW_WIDTH"
	EnvWindowHeight  = "BZC_WINDOW_HEIGHT"
	EnvSampleStep    = "BZC_SAMPLE_STEP"
	EnvShowFunctions = "BZC_SHOW_FUNCTIONS"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "BZC_LOG_LEVEL"
	EnvLogFormat = "BZC_LOG_FORMAT"
	EnvLogSource = "BZC_LOG_SOURCE"
	EnvLogFile   = "BZC_LOG_FILE"
)

// ConfigPath returns the per-user config file path. BZC_CONFIG overrides it.
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "beziercurve", "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults and merges environment overrides.
// A broken or invalid file is reported through the error while the returned config still
// carries defaults plus overrides, so callers can log and continue.
func Load() (AppConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := Defaults()
		applyEnvOverrides(&cfg)
		return cfg, err
	}
	return LoadFrom(path)
}

// LoadFrom is Load for an explicit path. A missing file is not an error.
func LoadFrom(path string) (AppConfig, error) {
	cfg := Defaults()
	var loadErr error
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		loadErr = fmt.Errorf("read config %s: %w", path, err)
	default:
		if fileCfg, err := parse(data); err != nil {
			loadErr = fmt.Errorf("config %s: %w", path, err)
		} else {
			cfg = fileCfg
		}
	}
	applyEnvOverrides(&cfg)
	cfg.normalize()
	return cfg, loadErr
}

// parse validates data against the embedded schema and decodes it over the defaults,
// so absent keys keep their default values.
func parse(data []byte) (AppConfig, error) {
	if err := Validate(data); err != nil {
		return AppConfig{}, err
	}
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

// SaveTo writes cfg as YAML to path, creating parent directories.
func SaveTo(path string, cfg AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// normalize replaces values that would break the demo with defaults.
func (c *AppConfig) normalize() {
	d := Defaults()
	if c.Window.Width <= 0 {
		c.Window.Width = d.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = d.Window.Height
	}
	if strings.TrimSpace(c.Window.Title) == "" {
		c.Window.Title = d.Window.Title
	}
	if c.Curve.SampleStep <= 0 || c.Curve.SampleStep > 1 {
		c.Curve.SampleStep = d.Curve.SampleStep
	}
	if c.Curve.CapacityHint <= 0 {
		c.Curve.CapacityHint = d.Curve.CapacityHint
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.File = strings.TrimSpace(c.Logging.File)
}

func parseBool(v string) bool {
	lv := strings.ToLower(strings.TrimSpace(v))
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvWindowWidth)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Window.Width = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvWindowHeight)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Window.Height = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvSampleStep)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Curve.SampleStep = f
		}
	}
	if v := os.Getenv(EnvShowFunctions); strings.TrimSpace(v) != "" {
		cfg.Display.ShowFunctions = parseBool(v)
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogSource); strings.TrimSpace(v) != "" {
		cfg.Logging.Source = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// OverridableKeys lists the dotted config keys that have an environment override.
var OverridableKeys = []string{
	"window.width",
	"window.height",
	"curve.sample_step",
	"display.show_functions",
	"logging.level",
	"logging.format",
	"logging.source",
	"logging.file",
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	var env string
	switch key {
	case "window.width":
		env = EnvWindowWidth
	case "window.height":
		env = EnvWindowHeight
	case "curve.sample_step":
		env = EnvSampleStep
	case "display.show_functions":
		env = EnvShowFunctions
	case "logging.level":
		env = EnvLogLevel
	case "logging.format":
		env = EnvLogFormat
	case "logging.source":
		env = EnvLogSource
	case "logging.file":
		env = EnvLogFile
	default:
		return "", false
	}
	if os.Getenv(env) != "" {
		return env, true
	}
	return "", false
}

// LogOptions converts the logging section for log.Init.
func (c AppConfig) LogOptions() applog.Options {
	return applog.Options{Level: c.Logging.Level, Format: c.Logging.Format, AddSource: c.Logging.Source, File: c.Logging.File}
}

// SceneOptions converts the display section into the initial display options.
func (c AppConfig) SceneOptions() scene.Options {
	return scene.Options{
		ShowControlLines:  c.Display.ShowControlLines,
		ShowControlPoints: c.Display.ShowControlPoints,
		ShowFunctions:     c.Display.ShowFunctions,
		CurveColor:        c.Display.CurveColor.Color(),
		LineColor:         c.Display.LineColor.Color(),
		PointColor:        c.Display.PointColor.Color(),
	}
}
