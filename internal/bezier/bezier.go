/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package bezier evaluates and samples Bézier curves of arbitrary degree.
//
// Evaluation uses the de Casteljau scheme: level 0 holds the control points,
// every following level interpolates neighbouring points of the previous one
// at parameter t, and the single point left at level n is the curve point.
// The levels are computed bottom-up in one scratch buffer instead of through
// the exponential recursive formulation; the arithmetic per point is the same,
// so the results match the recursive definition.
package bezier

import (
	"math"

	"beziercurve/internal/vector"
)

// DefaultStep is the parameter increment used when sampling a curve for display.
const DefaultStep = 0.02

// Evaluate returns the point of the curve defined by pts at parameter t.
// pts must not be empty; callers guard with len(pts) > 0.
func Evaluate(pts []vector.Pt, t float64) vector.Pt {
	if len(pts) == 0 {
		panic("bezier: Evaluate called with no control points")
	}
	return evaluate(make([]vector.Pt, len(pts)), pts, t)
}

// evaluate runs de Casteljau over pts using scratch, which must hold at least len(pts) points.
func evaluate(scratch, pts []vector.Pt, t float64) vector.Pt {
	n := len(pts) - 1
	level := scratch[:len(pts)]
	copy(level, pts)
	for r := 1; r <= n; r++ {
		for i := 0; i <= n-r; i++ {
			level[i] = level[i].Lerp(level[i+1], t)
		}
	}
	return level[0]
}

// SampleCount returns how many samples a sweep of t over [0, 1] with the given step produces.
// When step does not divide 1 an extra final sample at t = 1 is included.
func SampleCount(step float64) int {
	step = normalizeStep(step)
	// The epsilon keeps steps such as 0.02, whose reciprocal is not exact in binary, from losing the last sample.
	n := int(math.Floor(1/step + 1e-9))
	if float64(n)*step < 1-1e-9 {
		return n + 2
	}
	return n + 1
}

func normalizeStep(step float64) float64 {
	if step <= 0 || step > 1 || math.IsNaN(step) {
		return DefaultStep
	}
	return step
}

// Sampler turns control points into a polyline approximating the curve.
type Sampler struct {
	// Step is the parameter increment; values outside (0, 1] fall back to DefaultStep.
	Step float64

	scratch []vector.Pt
}

// NewSampler returns a Sampler with the given step.
func NewSampler(step float64) *Sampler { return &Sampler{Step: normalizeStep(step)} }

// Sample evaluates the curve at t = 0, Step, 2*Step, ... and always ends at t = 1.
// The first point is always pts[0]. An empty input yields nil.
func (s *Sampler) Sample(pts []vector.Pt) []vector.Pt {
	if len(pts) == 0 {
		return nil
	}
	step := normalizeStep(s.Step)
	count := SampleCount(step)
	if cap(s.scratch) < len(pts) {
		s.scratch = make([]vector.Pt, len(pts))
	}
	out := make([]vector.Pt, count)
	out[0] = pts[0]
	for i := 1; i < count; i++ {
		t := math.Min(float64(i)*step, 1)
		out[i] = evaluate(s.scratch, pts, t)
	}
	return out
}

// Segment is one straight piece of a polyline.
type Segment struct{ A, B vector.Pt }

// Segments pairs up consecutive polyline points. Fewer than two points yield nil.
func Segments(polyline []vector.Pt) []Segment {
	if len(polyline) < 2 {
		return nil
	}
	out := make([]Segment, 0, len(polyline)-1)
	for i := 0; i+1 < len(polyline); i++ {
		out = append(out, Segment{A: polyline[i], B: polyline[i+1]})
	}
	return out
}
