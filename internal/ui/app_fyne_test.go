//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// These tests validate the Fyne-based UI components. They are gated behind the
// "fyne" build tag so CI (which is headless) does not need Fyne or a display.
// To run locally:
//
//	go test -tags fyne ./internal/ui
//
// Ensure you have the Fyne dependencies installed and a working OS driver.
package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"beziercurve/internal/app"
	"beziercurve/internal/scene"
)

func mouse(x, y float32, b desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}, Button: b}
}

func newTestCanvas(t *testing.T) (*CurveCanvas, *app.Controller) {
	t.Helper()
	test.NewApp()
	ctrl := app.NewController(app.Config{Width: 450, Height: 450, Options: scene.DefaultOptions()})
	return NewCurveCanvas(ctrl), ctrl
}

func TestCurveCanvas_PressAddsAndRemoves(t *testing.T) {
	cc, ctrl := newTestCanvas(t)

	cc.MouseDown(mouse(300, 100, desktop.MouseButtonPrimary))
	pts := ctrl.Points()
	if len(pts) != 1 || pts[0].X != 300 || pts[0].Y != 350 {
		t.Fatalf("expected one flipped point (300,350) on press, got %v", pts)
	}
	// releases never change the curve
	cc.MouseUp(mouse(300, 100, desktop.MouseButtonPrimary))
	if n := len(ctrl.Points()); n != 1 {
		t.Fatalf("release changed the point count to %d", n)
	}
	// lower-left quadrant is inactive
	cc.MouseDown(mouse(10, 400, desktop.MouseButtonPrimary))
	if n := len(ctrl.Points()); n != 1 {
		t.Fatalf("click outside quadrant added a point, have %d", n)
	}
	cc.MouseDown(mouse(400, 50, desktop.MouseButtonTertiary))
	if n := len(ctrl.Points()); n != 1 {
		t.Fatalf("middle button must be ignored, have %d", n)
	}
	cc.MouseDown(mouse(400, 50, desktop.MouseButtonSecondary))
	if n := len(ctrl.Points()); n != 0 {
		t.Fatalf("secondary press should remove the point, have %d", n)
	}
}

func TestCurveCanvas_TypedRuneToggles(t *testing.T) {
	cc, ctrl := newTestCanvas(t)
	cc.TypedRune('d')
	if !ctrl.Options().ShowFunctions {
		t.Fatalf("'d' should enable the derived functions")
	}
}

func TestCurveCanvas_LayoutRescalesPoints(t *testing.T) {
	cc, ctrl := newTestCanvas(t)
	cc.MouseDown(mouse(300, 100, desktop.MouseButtonPrimary))

	r, ok := cc.CreateRenderer().(*curveCanvasRenderer)
	if !ok {
		t.Fatalf("expected curveCanvasRenderer, got %T", cc.CreateRenderer())
	}
	r.Layout(fyne.NewSize(900, 225))
	sz := ctrl.Size()
	if sz.W != 900 || sz.H != 225 {
		t.Fatalf("controller size = %v, want 900x225", sz)
	}
	p := ctrl.Points()[0]
	if p.X != 600 || p.Y != 175 {
		t.Fatalf("point not rescaled: %v", p)
	}
	if r.raster.Size() != fyne.NewSize(900, 225) {
		t.Fatalf("raster not resized: %v", r.raster.Size())
	}
}

func TestCurveCanvas_RenderMatchesControllerSize(t *testing.T) {
	cc, _ := newTestCanvas(t)
	img := cc.render(0, 0)
	if b := img.Bounds(); b.Dx() != 450 || b.Dy() != 450 {
		t.Fatalf("rendered bounds = %v, want 450x450", b)
	}
}
