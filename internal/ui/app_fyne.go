//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"image"
	"log/slog"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"beziercurve/internal/app"
	"beziercurve/internal/config"
	"beziercurve/internal/crash"
	applog "beziercurve/internal/log"
	"beziercurve/internal/raster"
	"beziercurve/internal/version"
)

// Minimum window edge restored from preferences.
const minWindowEdge = 100

// Run opens the demo window and blocks until it is closed.
func Run(cfg config.AppConfig) error {
	l := applog.WithComponent("ui")
	l.Info("starting UI", slog.String("version", version.String()))

	fyneApp := fyneapp.NewWithID("beziercurve")
	prefs := fyneApp.Preferences()
	winW := prefs.IntWithFallback("window.width", cfg.Window.Width)
	winH := prefs.IntWithFallback("window.height", cfg.Window.Height)
	if winW < minWindowEdge {
		winW = cfg.Window.Width
	}
	if winH < minWindowEdge {
		winH = cfg.Window.Height
	}

	ctrl := app.NewController(app.Config{
		Width:      float64(winW),
		Height:     float64(winH),
		Options:    cfg.SceneOptions(),
		SampleStep: cfg.Curve.SampleStep,
		Capacity:   cfg.Curve.CapacityHint,
	})
	defer crash.Recover(ctrl)

	w := fyneApp.NewWindow(cfg.Window.Title)
	cc := NewCurveCanvas(ctrl)
	w.SetContent(cc)
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))
	w.Canvas().SetOnTypedRune(cc.TypedRune)

	// Persist the window size on close
	w.SetCloseIntercept(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
		l.Info("closing UI", slog.Int("points", len(ctrl.Points())))
		w.Close()
	})

	w.ShowAndRun()
	return nil
}

// CurveCanvas shows the rendered scene of a controller and forwards
// pointer and keyboard input to it.
type CurveCanvas struct {
	widget.BaseWidget

	ctrl    *app.Controller
	surface *raster.Surface
}

var _ desktop.Mouseable = (*CurveCanvas)(nil)

func NewCurveCanvas(ctrl *app.Controller) *CurveCanvas {
	sz := ctrl.Size()
	cc := &CurveCanvas{
		ctrl:    ctrl,
		surface: raster.New(int(sz.W), int(sz.H)),
	}
	ctrl.SetRedraw(cc.Refresh)
	cc.ExtendBaseWidget(cc)
	return cc
}

// CreateRenderer wraps a raster that draws the controller's current frame.
func (c *CurveCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := canvas.NewRaster(c.render)
	return &curveCanvasRenderer{cc: c, raster: r, objects: []fyne.CanvasObject{r}}
}

func (c *CurveCanvas) render(_, _ int) image.Image {
	img := c.surface.Render(c.ctrl.Frame())
	if err := c.surface.Err(); err != nil {
		applog.WithComponent("ui").Warn("render failed", slog.Any("err", err))
	}
	return img
}

// MouseDown adds (primary) or removes (secondary) a control point on press.
func (c *CurveCanvas) MouseDown(e *desktop.MouseEvent) { c.pointer(e, true) }

// MouseUp is forwarded so releases are seen and ignored by the controller.
func (c *CurveCanvas) MouseUp(e *desktop.MouseEvent) { c.pointer(e, false) }

func (c *CurveCanvas) pointer(e *desktop.MouseEvent, pressed bool) {
	b, ok := buttonOf(e.Button)
	if !ok {
		return
	}
	c.ctrl.OnPointerButton(b, pressed, float64(e.Position.X), float64(e.Position.Y))
}

func buttonOf(b desktop.MouseButton) (app.Button, bool) {
	switch b {
	case desktop.MouseButtonPrimary:
		return app.ButtonPrimary, true
	case desktop.MouseButtonSecondary:
		return app.ButtonSecondary, true
	}
	return 0, false
}

// TypedRune handles the display keys; it is installed on the window canvas.
func (c *CurveCanvas) TypedRune(r rune) { c.ctrl.OnKey(r) }

type curveCanvasRenderer struct {
	cc      *CurveCanvas
	raster  *canvas.Raster
	objects []fyne.CanvasObject
}

func (r *curveCanvasRenderer) Destroy()                     { _ = r.cc.surface.Close() }
func (r *curveCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *curveCanvasRenderer) MinSize() fyne.Size           { return fyne.NewSize(minWindowEdge, minWindowEdge) }
func (r *curveCanvasRenderer) Refresh()                     { canvas.Refresh(r.raster) }

// Layout fills the widget and rescales the control points to the new size.
func (r *curveCanvasRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
	r.raster.Move(fyne.NewPos(0, 0))
	r.cc.ctrl.OnResize(float64(size.Width), float64(size.Height))
}
