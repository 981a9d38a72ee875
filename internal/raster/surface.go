/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package raster draws scene frames into an RGBA image with the gg software renderer.
// The surface is what the desktop window blits; it also backs headless rendering in tests.
package raster

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	applog "beziercurve/internal/log"
	"beziercurve/internal/scene"
	"beziercurve/internal/vector"
)

// LabelSize is the axis label font size in pixels.
const LabelSize = 18

var (
	fontOnce sync.Once
	fontSrc  *text.FontSource
	fontErr  error
)

func labelFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		gg.SetLogger(applog.WithComponent("gg"))
		fontSrc, fontErr = text.NewFontSource(goregular.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("load label font: %w", fontErr)
		}
	})
	return fontSrc, fontErr
}

// Surface is a scene.Canvas backed by a gg context. It converts the y-up
// window coordinates of the scene into image coordinates.
type Surface struct {
	dc   *gg.Context
	w, h int
	face text.Face
	flip vector.Affine2D
	err  error
	l    *slog.Logger
}

var _ scene.Canvas = (*Surface)(nil)

// New creates a surface of w×h pixels. Sizes below one pixel are clamped to one.
func New(w, h int) *Surface {
	w, h = clampDim(w), clampDim(h)
	s := &Surface{
		dc:   gg.NewContext(w, h),
		w:    w,
		h:    h,
		flip: vector.FlipY(float64(h)),
		l:    applog.WithComponent("raster"),
	}
	src, err := labelFont()
	if err != nil {
		s.l.Warn("labels disabled", slog.Any("err", err))
	} else {
		s.face = src.Face(LabelSize)
		s.dc.SetFont(s.face)
	}
	return s
}

func clampDim(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// Size returns the pixel dimensions of the surface.
func (s *Surface) Size() (int, int) { return s.w, s.h }

// Resize reallocates the backing image when the dimensions change.
func (s *Surface) Resize(w, h int) error {
	w, h = clampDim(w), clampDim(h)
	if w == s.w && h == s.h {
		return nil
	}
	if err := s.dc.Resize(w, h); err != nil {
		return fmt.Errorf("resize surface: %w", err)
	}
	s.w, s.h = w, h
	s.flip = vector.FlipY(float64(h))
	return nil
}

// Render draws f onto the surface, resizing it to the frame size first, and
// returns the resulting image. Drawing errors are kept for Err.
func (s *Surface) Render(f scene.Frame) image.Image {
	s.err = nil
	if f.Size.Valid() {
		if err := s.Resize(int(math.Round(f.Size.W)), int(math.Round(f.Size.H))); err != nil {
			s.fail(err)
		}
	}
	f.Draw(s)
	if s.err != nil {
		s.l.Warn("frame rendered with errors", slog.Any("err", s.err), slog.Int("ops", len(f.Ops)))
	}
	return s.dc.Image()
}

// Err returns the first error of the last Render call.
func (s *Surface) Err() error { return s.err }

// Close releases the gg context.
func (s *Surface) Close() error { return s.dc.Close() }

func (s *Surface) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

func (s *Surface) toImage(p vector.Pt) (float64, float64) {
	q := s.flip.Apply(p)
	return q.X, q.Y
}

// setColor clamps channels to [0, 1] before handing them to gg.
func (s *Surface) setColor(c vector.Color) { s.dc.SetColor(c.RGBA()) }

func (s *Surface) Clear(c vector.Color) {
	s.dc.ClearWithColor(gg.RGB(c.R, c.G, c.B))
}

// DrawPoint fills a size×size square centred on p.
func (s *Surface) DrawPoint(p vector.Pt, size float64, c vector.Color) {
	x, y := s.toImage(p)
	half := size / 2
	s.setColor(c)
	s.dc.DrawRectangle(x-half, y-half, size, size)
	if err := s.dc.Fill(); err != nil {
		s.fail(fmt.Errorf("fill point: %w", err))
	}
}

func (s *Surface) DrawLineSegment(a, b vector.Pt, width float64, c vector.Color) {
	x1, y1 := s.toImage(a)
	x2, y2 := s.toImage(b)
	s.setColor(c)
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(x1, y1, x2, y2)
	if err := s.dc.Stroke(); err != nil {
		s.fail(fmt.Errorf("stroke line: %w", err))
	}
}

// DrawLabel draws text with its baseline starting at at.
func (s *Surface) DrawLabel(txt string, at vector.Pt, c vector.Color) {
	if s.face == nil {
		return
	}
	x, y := s.toImage(at)
	s.setColor(c)
	s.dc.DrawString(txt, x, y)
}
