/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package viewport derives the coordinate-axis geometry from the window size
// and rescales control points when the window is resized.
package viewport

import "beziercurve/internal/vector"

const (
	// LabelOffset is the distance of each axis label from the axis end it annotates.
	LabelOffset = 15
	// ArrowSize is the leg length of the arrowheads drawn at each axis end.
	ArrowSize = 10
)

// Axis is a straight axis line.
type Axis struct{ Start, End vector.Pt }

// Label is a single character placed next to an axis end.
type Label struct {
	Text string
	Pos  vector.Pt
}

// Geometry is the derived layout of the coordinate system for one window size.
// It has no state of its own; New recomputes everything from width and height.
type Geometry struct {
	Width, Height float64
	XAxis, YAxis  Axis
	Labels        [4]Label
	// Arrows holds two strokes per axis end: right, left, top, bottom.
	Arrows [8]Axis
}

// New computes the axis layout for a window of w by h pixels.
// The x-axis spans [0, w] at height h/2, the y-axis spans [0, h] at x = w/2.
func New(w, h float64) Geometry {
	g := Geometry{Width: w, Height: h}
	midY := h / 2
	midX := w / 2
	g.XAxis = Axis{Start: vector.P(0, midY), End: vector.P(w, midY)}
	g.YAxis = Axis{Start: vector.P(midX, 0), End: vector.P(midX, h)}

	g.Labels = [4]Label{
		{Text: "x", Pos: vector.P(g.XAxis.End.X-LabelOffset, midY+LabelOffset)},
		{Text: "y", Pos: vector.P(midX+LabelOffset, g.YAxis.End.Y-LabelOffset)},
		{Text: "T", Pos: vector.P(g.XAxis.Start.X+LabelOffset, midY+LabelOffset)},
		{Text: "T", Pos: vector.P(midX+LabelOffset, g.YAxis.Start.Y+LabelOffset)},
	}

	xe, xs := g.XAxis.End, g.XAxis.Start
	ye, ys := g.YAxis.End, g.YAxis.Start
	g.Arrows = [8]Axis{
		{Start: xe, End: vector.P(xe.X-ArrowSize, xe.Y+ArrowSize)},
		{Start: xe, End: vector.P(xe.X-ArrowSize, xe.Y-ArrowSize)},
		{Start: xs, End: vector.P(xs.X+ArrowSize, xs.Y+ArrowSize)},
		{Start: xs, End: vector.P(xs.X+ArrowSize, xs.Y-ArrowSize)},
		{Start: ye, End: vector.P(ye.X+ArrowSize, ye.Y-ArrowSize)},
		{Start: ye, End: vector.P(ye.X-ArrowSize, ye.Y-ArrowSize)},
		{Start: ys, End: vector.P(ys.X+ArrowSize, ys.Y+ArrowSize)},
		{Start: ys, End: vector.P(ys.X-ArrowSize, ys.Y+ArrowSize)},
	}
	return g
}

// Size returns the window size the geometry was computed for.
func (g Geometry) Size() vector.Size { return vector.Size{W: g.Width, H: g.Height} }

// ActiveQuadrant is the region accepting pointer input: the upper right
// quarter of the window in y-up coordinates, edges included.
func (g Geometry) ActiveQuadrant() vector.Rect {
	return vector.R(g.Width/2, g.Height/2, g.Width/2, g.Height/2)
}

// Rescale scales every point by newW/oldW horizontally and newH/oldH
// vertically, in place, and returns pts. Aspect ratio is not preserved.
// A zero old dimension leaves that coordinate unchanged.
func Rescale(oldW, oldH, newW, newH float64, pts []vector.Pt) []vector.Pt {
	sx, sy := 1.0, 1.0
	if oldW != 0 {
		sx = newW / oldW
	}
	if oldH != 0 {
		sy = newH / oldH
	}
	m := vector.Scale(sx, sy)
	for i := range pts {
		pts[i] = m.Apply(pts[i])
	}
	return pts
}

// Resize rescales pts from g's size to w by h and returns the geometry for the new size.
func (g Geometry) Resize(w, h float64, pts []vector.Pt) Geometry {
	Rescale(g.Width, g.Height, w, h, pts)
	return New(w, h)
}
