/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package projector maps control points onto the auxiliary control polygons
// used to visualise the component functions x(t) and y(t).
//
// For n control points and i = 1..n, the x(t) polygon keeps each point's x
// and stacks the points downwards from the horizontal axis in steps of
// (h/2)/n; the y(t) polygon keeps each point's y and lays the points out
// leftwards from the vertical axis in steps of (w/2)/n. Both polygons are
// then treated as ordinary Bézier control points.
package projector

import "beziercurve/internal/vector"

// XSeries returns the control polygon of x(t) for a window of height h.
func XSeries(pts []vector.Pt, h float64) []vector.Pt {
	n := len(pts)
	if n == 0 {
		return nil
	}
	half := h / 2
	step := half / float64(n)
	out := make([]vector.Pt, n)
	for i := 1; i <= n; i++ {
		out[i-1] = vector.Pt{X: pts[i-1].X, Y: half - float64(i)*step}
	}
	return out
}

// YSeries returns the control polygon of y(t) for a window of width w.
func YSeries(pts []vector.Pt, w float64) []vector.Pt {
	n := len(pts)
	if n == 0 {
		return nil
	}
	half := w / 2
	step := half / float64(n)
	out := make([]vector.Pt, n)
	for i := 1; i <= n; i++ {
		out[i-1] = vector.Pt{X: half - float64(i)*step, Y: pts[i-1].Y}
	}
	return out
}

// Project returns both series for a window of the given size.
func Project(pts []vector.Pt, size vector.Size) (xs, ys []vector.Pt) {
	return XSeries(pts, size.H), YSeries(pts, size.W)
}
