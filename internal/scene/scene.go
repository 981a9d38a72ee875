/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package scene turns the application state into an ordered list of draw
// operations. Building a frame is pure; drawing it is delegated to a Canvas,
// so the layout can be checked without a graphics context.
package scene

import (
	"beziercurve/internal/bezier"
	"beziercurve/internal/projector"
	"beziercurve/internal/vector"
	"beziercurve/internal/viewport"
)

// Stroke widths and point size used by the demo.
const (
	AxisWidth    = 1
	ControlWidth = 1
	CurveWidth   = 2
	PointSize    = 6
)

// Options are the user-toggleable display settings.
type Options struct {
	ShowControlLines  bool
	ShowControlPoints bool
	ShowFunctions     bool

	CurveColor vector.Color
	LineColor  vector.Color
	PointColor vector.Color
}

// DefaultOptions returns the settings the demo starts with.
func DefaultOptions() Options {
	return Options{
		ShowControlLines:  true,
		ShowControlPoints: true,
		ShowFunctions:     false,
		CurveColor:        vector.Green,
		LineColor:         vector.Red,
		PointColor:        vector.Cyan,
	}
}

// Canvas is implemented by drawing backends. Coordinates are window pixels
// with the origin at the bottom-left corner.
type Canvas interface {
	Clear(c vector.Color)
	DrawPoint(p vector.Pt, size float64, c vector.Color)
	DrawLineSegment(a, b vector.Pt, width float64, c vector.Color)
	DrawLabel(text string, at vector.Pt, c vector.Color)
}

// OpKind identifies a draw operation.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpLine
	OpPoint
	OpLabel
)

// Layer tags each operation with the part of the picture it belongs to.
type Layer uint8

const (
	LayerBackground Layer = iota
	LayerAxes
	LayerControlLines
	LayerControlPoints
	LayerCurve
	LayerXFunction
	LayerYFunction
)

// Op is one draw call. A and B are used by lines; A alone by points and labels.
type Op struct {
	Kind  OpKind
	Layer Layer
	A, B  vector.Pt
	Width float64 // line width or point size
	Color vector.Color
	Text  string
}

// Frame is a fully computed picture for one window size.
type Frame struct {
	Size vector.Size
	Ops  []Op
}

// Input is everything a frame is computed from.
type Input struct {
	Geometry viewport.Geometry
	Points   []vector.Pt
	Options  Options
	// Sampler is optional; nil samples with bezier.DefaultStep.
	Sampler *bezier.Sampler
}

// Build computes the frame for in. Control points are drawn on top of the
// control lines; the curve is drawn last within each group.
func Build(in Input) Frame {
	b := builder{sampler: in.Sampler, opts: in.Options}
	if b.sampler == nil {
		b.sampler = bezier.NewSampler(bezier.DefaultStep)
	}
	b.ops = append(b.ops, Op{Kind: OpClear, Layer: LayerBackground, Color: vector.Black})
	b.axes(in.Geometry)

	b.curveGroup(in.Points, LayerCurve)
	if in.Options.ShowFunctions && len(in.Points) > 0 {
		xs, ys := projector.Project(in.Points, in.Geometry.Size())
		b.curveGroup(xs, LayerXFunction)
		b.curveGroup(ys, LayerYFunction)
	}
	return Frame{Size: in.Geometry.Size(), Ops: b.ops}
}

type builder struct {
	ops     []Op
	opts    Options
	sampler *bezier.Sampler
}

func (b *builder) line(layer Layer, a, c vector.Pt, width float64, col vector.Color) {
	b.ops = append(b.ops, Op{Kind: OpLine, Layer: layer, A: a, B: c, Width: width, Color: col})
}

func (b *builder) axes(g viewport.Geometry) {
	b.line(LayerAxes, g.XAxis.Start, g.XAxis.End, AxisWidth, vector.White)
	b.line(LayerAxes, g.YAxis.Start, g.YAxis.End, AxisWidth, vector.White)
	for _, a := range g.Arrows {
		b.line(LayerAxes, a.Start, a.End, AxisWidth, vector.White)
	}
	for _, l := range g.Labels {
		b.ops = append(b.ops, Op{Kind: OpLabel, Layer: LayerAxes, A: l.Pos, Color: vector.White, Text: l.Text})
	}
}

// curveGroup emits control lines, control points and the sampled curve for
// one control polygon. Derived polygons keep all three on their own layer.
func (b *builder) curveGroup(pts []vector.Pt, curveLayer Layer) {
	n := len(pts)
	if n == 0 {
		return
	}
	lineLayer, pointLayer := LayerControlLines, LayerControlPoints
	if curveLayer != LayerCurve {
		lineLayer, pointLayer = curveLayer, curveLayer
	}
	if n > 1 && b.opts.ShowControlLines {
		for i := 0; i+1 < n; i++ {
			b.line(lineLayer, pts[i], pts[i+1], ControlWidth, b.opts.LineColor)
		}
	}
	if b.opts.ShowControlPoints {
		for _, p := range pts {
			b.ops = append(b.ops, Op{Kind: OpPoint, Layer: pointLayer, A: p, Width: PointSize, Color: b.opts.PointColor})
		}
	}
	// A single control point is a stationary curve; there is nothing to stroke.
	if n < 2 {
		return
	}
	for _, s := range bezier.Segments(b.sampler.Sample(pts)) {
		b.line(curveLayer, s.A, s.B, CurveWidth, b.opts.CurveColor)
	}
}

// Draw replays the frame on c in order.
func (f Frame) Draw(c Canvas) {
	for _, op := range f.Ops {
		switch op.Kind {
		case OpClear:
			c.Clear(op.Color)
		case OpLine:
			c.DrawLineSegment(op.A, op.B, op.Width, op.Color)
		case OpPoint:
			c.DrawPoint(op.A, op.Width, op.Color)
		case OpLabel:
			c.DrawLabel(op.Text, op.A, op.Color)
		}
	}
}
