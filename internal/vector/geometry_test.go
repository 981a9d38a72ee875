/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import "testing"

func TestRectContainsEdges(t *testing.T) {
	r := R(10, 20, 100, 50)
	if !r.Contains(Pt{10, 20}) || !r.Contains(Pt{110, 70}) {
		t.Fatalf("expected edge points to be contained")
	}
	if r.Contains(Pt{9.99, 20}) || r.Contains(Pt{110, 70.01}) {
		t.Fatalf("expected points outside to be rejected")
	}
}

func TestScaleApply(t *testing.T) {
	p := Scale(2, 0.5).Apply(Pt{10, 8})
	if p.X != 20 || p.Y != 4 {
		t.Fatalf("unexpected transform result: %+v", p)
	}
}

func TestFlipYIsInvolution(t *testing.T) {
	f := FlipY(450)
	p := f.Apply(Pt{30, 100})
	if p.X != 30 || p.Y != 350 {
		t.Fatalf("unexpected flip: %+v", p)
	}
	if back := f.Apply(p); back != (Pt{30, 100}) {
		t.Fatalf("flip twice should be identity, got %+v", back)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a, b := P(0, 10), P(20, -10)
	if got := a.Lerp(b, 0); got != a {
		t.Fatalf("Lerp(0) = %+v, want %+v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Fatalf("Lerp(1) = %+v, want %+v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != P(10, 0) {
		t.Fatalf("Lerp(0.5) = %+v", got)
	}
}

func TestSizeValid(t *testing.T) {
	if (Size{W: 0, H: 10}).Valid() {
		t.Fatalf("zero width must be invalid")
	}
	if !(Size{W: 450, H: 300}).Valid() {
		t.Fatalf("positive size must be valid")
	}
}

func TestColorRGBAClamps(t *testing.T) {
	c := Color{R: -0.2, G: 0.5, B: 1.7}.RGBA()
	if c.R != 0 || c.G != 128 || c.B != 255 || c.A != 255 {
		t.Fatalf("unexpected conversion: %+v", c)
	}
}
