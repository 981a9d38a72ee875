/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package crash turns a panic in the demo into a report file and a non-zero exit.
package crash

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	applog "beziercurve/internal/log"
	"beziercurve/internal/vector"
	"beziercurve/internal/version"
)

// exitFn is used to allow testing of Recover without terminating the test process.
var exitFn = os.Exit

// closeLogs flushes the log file before the process exits.
var closeLogs = applog.Close

// reportDir returns the directory crash reports are written to.
var reportDir = os.TempDir

// maxListedPoints caps the control points printed in a report.
const maxListedPoints = 32

// StateSource exposes the curve state that goes into a crash report.
type StateSource interface {
	Points() []vector.Pt
	Size() vector.Size
}

// Recover captures a panic, logs an error with stacktrace,
// writes an error report file including the current control points (if a source is provided),
// closes the log file and exits with code 2.
//
// Usage: defer crash.Recover(ctrl)
func Recover(src StateSource) {
	if r := recover(); r != nil {
		l := applog.WithComponent("crash")
		stack := debug.Stack()
		l.Error("panic recovered", slog.Any("panic", r), slog.String("stack", string(stack)))

		reportPath, err := writeReport(src, r, stack)
		if err != nil {
			l.Error("write crash report failed", slog.Any("err", err), slog.String("path", reportPath))
		}

		if _, err := fmt.Fprintf(os.Stderr, "A fatal error occurred. A crash report was saved to: %s\n", reportPath); err != nil {
			l.Error("failed to write crash message to stderr", slog.Any("err", err))
		}
		if _, err := fmt.Fprintf(os.Stderr, "Version: %s\nOS/Arch: %s/%s\n", version.String(), runtime.GOOS, runtime.GOARCH); err != nil {
			l.Error("failed to write version info to stderr", slog.Any("err", err))
		}
		if err := closeLogs(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "closing log file failed: %v\n", err)
		}
		exitFn(2)
	}
}

func writeReport(src StateSource, panicVal any, stack []byte) (string, error) {
	dir := reportDir()
	stamp := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("crash-%s.log", stamp))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return path, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			applog.WithComponent("crash").Error("failed to close crash report file", slog.Any("err", err), slog.String("path", path))
		}
	}()

	var buf bytes.Buffer
	_, _ = fmt.Fprintf(&buf, "Bezier Curve Crash Report\n")
	_, _ = fmt.Fprintf(&buf, "Timestamp: %s\n", time.Now().Format(time.RFC3339))
	_, _ = fmt.Fprintf(&buf, "Version: %s\n", version.String())
	_, _ = fmt.Fprintf(&buf, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	if src != nil {
		writeState(&buf, src)
	}
	_, _ = fmt.Fprintf(&buf, "\nPanic: %v\n\n", panicVal)
	_, _ = fmt.Fprintf(&buf, "Stack:\n%s\n", string(stack))

	if _, err := f.Write(buf.Bytes()); err != nil {
		return path, err
	}
	_ = f.Sync()
	return path, nil
}

func writeState(buf *bytes.Buffer, src StateSource) {
	sz := src.Size()
	pts := src.Points()
	_, _ = fmt.Fprintf(buf, "Window: %gx%g\n", sz.W, sz.H)
	_, _ = fmt.Fprintf(buf, "ControlPoints: %d\n", len(pts))
	for i, p := range pts {
		if i == maxListedPoints {
			_, _ = fmt.Fprintf(buf, "  ... %d more\n", len(pts)-maxListedPoints)
			break
		}
		_, _ = fmt.Fprintf(buf, "  %d: (%g, %g)\n", i, p.X, p.Y)
	}
}
