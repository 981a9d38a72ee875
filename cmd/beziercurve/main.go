/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"beziercurve/internal/bezier"
	"beziercurve/internal/config"
	"beziercurve/internal/crash"
	applog "beziercurve/internal/log"
	"beziercurve/internal/ui"
	"beziercurve/internal/vector"
	"beziercurve/internal/version"
)

// errUsage marks invalid command lines; main prints usage and exits 2.
var errUsage = errors.New("invalid arguments")

func usage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Bezier Curve - interactive de Casteljau demo")
	_, _ = fmt.Fprintf(w, "Version: %s\n", version.String())
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Usage:")
	_, _ = fmt.Fprintln(w, "  beziercurve [ui]                            Open the demo window (build with -tags fyne)")
	_, _ = fmt.Fprintln(w, "  beziercurve eval <t> x,y [x,y...]           Print the curve point at parameter t")
	_, _ = fmt.Fprintln(w, "  beziercurve sample [-step s] x,y [x,y...]   Print the sampled polyline")
	_, _ = fmt.Fprintln(w, "  beziercurve config [show|path|init]         Show, locate or create the config file")
	_, _ = fmt.Fprintln(w, "  beziercurve version|-v|--version            Show version")
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout))
}

// realMain runs the command line and returns the process exit code, so that
// deferred cleanup has finished before main exits.
func realMain(args []string, out io.Writer) int {
	cfg, cfgErr := config.Load()
	applog.Init(cfg.LogOptions())
	defer func() { _ = applog.Close() }()
	l := applog.WithComponent("cli")
	if cfgErr != nil {
		l.Warn("config ignored, using defaults", slog.Any("err", cfgErr))
	}
	defer crash.Recover(nil)

	l.Debug("start", slog.Int("args", len(args)))
	err := run(args, cfg, out)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		_, _ = fmt.Fprintln(out, "Error:", err)
		usage(out)
		return 2
	default:
		l.Error("command failed", slog.Any("err", err))
		_, _ = fmt.Fprintln(out, "Error:", err)
		return 1
	}
}

func run(args []string, cfg config.AppConfig, out io.Writer) error {
	cmd := "ui"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}
	applog.WithOperation(applog.WithComponent("cli"), cmd).Debug("run command", slog.Int("args", len(args)))
	switch cmd {
	case "version", "--version", "-v":
		_, _ = fmt.Fprintln(out, "Bezier Curve")
		_, _ = fmt.Fprintln(out, version.String())
		return nil
	case "help", "-h", "--help":
		usage(out)
		return nil
	case "ui":
		return ui.Run(cfg)
	case "eval":
		return runEval(args, out)
	case "sample":
		return runSample(args, cfg.Curve.SampleStep, out)
	case "config":
		return runConfig(args, cfg, out)
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

func runEval(args []string, out io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: eval requires <t> and at least one point", errUsage)
	}
	t, err := strconv.ParseFloat(args[0], 64)
	if err != nil || t < 0 || t > 1 {
		return fmt.Errorf("%w: t must be a number in [0,1], got %q", errUsage, args[0])
	}
	pts, err := parsePoints(args[1:])
	if err != nil {
		return err
	}
	p := bezier.Evaluate(pts, t)
	_, _ = fmt.Fprintf(out, "%s\n", formatPoint(p))
	return nil
}

func runSample(args []string, defaultStep float64, out io.Writer) error {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	step := fs.Float64("step", defaultStep, "parameter increment in (0,1]")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *step <= 0 || *step > 1 {
		return fmt.Errorf("%w: step must be in (0,1], got %g", errUsage, *step)
	}
	pts, err := parsePoints(fs.Args())
	if err != nil {
		return err
	}
	for i, p := range bezier.NewSampler(*step).Sample(pts) {
		_, _ = fmt.Fprintf(out, "%d\t%s\n", i, formatPoint(p))
	}
	return nil
}

func runConfig(args []string, cfg config.AppConfig, out io.Writer) error {
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
	}
	switch sub {
	case "show":
		if err := writeYAML(out, cfg); err != nil {
			return err
		}
		for _, key := range config.OverridableKeys {
			if env, ok := config.EnvOverrideFor(key); ok {
				_, _ = fmt.Fprintf(out, "# %s is overridden by %s\n", key, env)
			}
		}
		return nil
	case "path":
		p, err := config.ConfigPath()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, p)
		return nil
	case "init":
		p, err := config.ConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(p); err == nil {
			return fmt.Errorf("config already exists at %s", p)
		}
		if err := config.SaveTo(p, config.Defaults()); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, "Wrote default config to", p)
		return nil
	}
	return fmt.Errorf("%w: unknown config subcommand %q", errUsage, sub)
}

// parsePoints reads "x,y" arguments.
func parsePoints(args []string) ([]vector.Pt, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: at least one control point x,y is required", errUsage)
	}
	pts := make([]vector.Pt, 0, len(args))
	for _, a := range args {
		xs, ys, ok := strings.Cut(a, ",")
		if !ok {
			return nil, fmt.Errorf("%w: point %q is not x,y", errUsage, a)
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: point %q is not numeric", errUsage, a)
		}
		p := vector.P(x, y)
		if !p.IsFinite() {
			return nil, fmt.Errorf("%w: point %q is not finite", errUsage, a)
		}
		pts = append(pts, p)
	}
	return pts, nil
}

func formatPoint(p vector.Pt) string {
	return strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64)
}

func writeYAML(out io.Writer, cfg config.AppConfig) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
