/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package app holds the demo's session state and the controller that turns
// pointer, key and resize events into state changes and redraw requests.
//
// All methods are meant to be called from the single UI event goroutine; the
// controller does no locking of its own.
package app

import (
	"log/slog"

	"beziercurve/internal/bezier"
	applog "beziercurve/internal/log"
	"beziercurve/internal/scene"
	"beziercurve/internal/vector"
	"beziercurve/internal/viewport"
)

// DefaultCapacity is the initial capacity reserved for control points.
const DefaultCapacity = 1000

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota + 1
	ButtonSecondary
)

// State is the complete session state. It lives as long as the window does.
type State struct {
	Points   []vector.Pt
	Options  scene.Options
	Geometry viewport.Geometry
}

// Config configures a new Controller.
type Config struct {
	Width, Height float64
	Options       scene.Options
	SampleStep    float64
	Capacity      int
	// Redraw is invoked after every event that requires a repaint. May be nil.
	Redraw func()
}

// Controller processes input events against a State.
type Controller struct {
	state   State
	sampler *bezier.Sampler
	redraw  func()
	l       *slog.Logger
}

// NewController returns a controller for an empty curve in a window of the configured size.
func NewController(cfg Config) *Controller {
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Controller{
		state: State{
			Points:   make([]vector.Pt, 0, capacity),
			Options:  cfg.Options,
			Geometry: viewport.New(cfg.Width, cfg.Height),
		},
		sampler: bezier.NewSampler(cfg.SampleStep),
		redraw:  cfg.Redraw,
		l:       applog.WithComponent("controller"),
	}
}

// SetRedraw replaces the redraw hook.
func (c *Controller) SetRedraw(fn func()) { c.redraw = fn }

func (c *Controller) requestRedraw() {
	if c.redraw != nil {
		c.redraw()
	}
}

// Points returns a copy of the control points.
func (c *Controller) Points() []vector.Pt { return append([]vector.Pt(nil), c.state.Points...) }

// Options returns the current display options.
func (c *Controller) Options() scene.Options { return c.state.Options }

// Size returns the current window size.
func (c *Controller) Size() vector.Size { return c.state.Geometry.Size() }

// OnPointerButton handles a button event at window coordinates (x, rawY),
// where rawY grows downwards. Only presses inside the active quadrant count:
// primary appends a control point, secondary removes the last one.
// It reports whether the control points changed.
func (c *Controller) OnPointerButton(b Button, pressed bool, x, rawY float64) bool {
	if !pressed {
		return false
	}
	p := vector.Pt{X: x, Y: c.state.Geometry.Height - rawY}
	if !c.state.Geometry.ActiveQuadrant().Contains(p) {
		return false
	}
	switch b {
	case ButtonPrimary:
		c.state.Points = append(c.state.Points, p)
		c.l.Debug("control point added", slog.Float64("x", p.X), slog.Float64("y", p.Y), slog.Int("count", len(c.state.Points)))
	case ButtonSecondary:
		n := len(c.state.Points)
		if n == 0 {
			return false
		}
		c.state.Points = c.state.Points[:n-1]
		c.l.Debug("control point removed", slog.Int("count", n-1))
	default:
		return false
	}
	c.requestRedraw()
	return true
}

// OnKey applies a key binding and always requests a redraw afterwards.
// It reports whether the key was bound.
func (c *Controller) OnKey(r rune) bool {
	handled := ApplyKey(&c.state.Options, r)
	if handled {
		c.l.Debug("key applied", slog.String("key", string(r)))
	}
	c.requestRedraw()
	return handled
}

// OnResize rescales the control points to the new window size and recomputes
// the axis geometry before requesting a redraw. Non-positive sizes are ignored.
func (c *Controller) OnResize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	old := c.state.Geometry
	if old.Width == w && old.Height == h {
		return
	}
	c.state.Geometry = old.Resize(w, h, c.state.Points)
	c.l.Debug("viewport resized",
		slog.Float64("from_w", old.Width), slog.Float64("from_h", old.Height),
		slog.Float64("w", w), slog.Float64("h", h))
	c.requestRedraw()
}

// Frame computes the picture for the current state.
func (c *Controller) Frame() scene.Frame {
	return scene.Build(scene.Input{
		Geometry: c.state.Geometry,
		Points:   c.state.Points,
		Options:  c.state.Options,
		Sampler:  c.sampler,
	})
}
