/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package app

import "beziercurve/internal/scene"

// Key bindings.
const (
	KeyToggleLines     = 'c'
	KeyTogglePoints    = 'p'
	KeyToggleFunctions = 'd'
)

// CycleChannel steps a color channel down by 0.1, wrapping to 1 once it drops below 0.1.
func CycleChannel(v float64) float64 {
	if v < 0.1 {
		return 1
	}
	return v - 0.1
}

// ApplyKey mutates opts according to the key binding for r and reports
// whether r is bound.
//
//	c p d   toggle control lines, control points, x(t)/y(t) functions
//	1 2 3   curve red, blue, green
//	4 5 6   control line red, blue, green
//	7 8 9   control point red, blue, green
func ApplyKey(opts *scene.Options, r rune) bool {
	switch r {
	case KeyToggleLines:
		opts.ShowControlLines = !opts.ShowControlLines
	case KeyTogglePoints:
		opts.ShowControlPoints = !opts.ShowControlPoints
	case KeyToggleFunctions:
		opts.ShowFunctions = !opts.ShowFunctions
	case '1':
		opts.CurveColor.R = CycleChannel(opts.CurveColor.R)
	case '2':
		opts.CurveColor.B = CycleChannel(opts.CurveColor.B)
	case '3':
		opts.CurveColor.G = CycleChannel(opts.CurveColor.G)
	case '4':
		opts.LineColor.R = CycleChannel(opts.LineColor.R)
	case '5':
		opts.LineColor.B = CycleChannel(opts.LineColor.B)
	case '6':
		opts.LineColor.G = CycleChannel(opts.LineColor.G)
	case '7':
		opts.PointColor.R = CycleChannel(opts.PointColor.R)
	case '8':
		opts.PointColor.B = CycleChannel(opts.PointColor.B)
	case '9':
		opts.PointColor.G = CycleChannel(opts.PointColor.G)
	default:
		return false
	}
	return true
}
