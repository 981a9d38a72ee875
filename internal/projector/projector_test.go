package projector

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"beziercurve/internal/bezier"
	"beziercurve/internal/vector"
)

func TestXSeries(t *testing.T) {
	pts := []vector.Pt{vector.P(300, 260), vector.P(400, 420)}
	got := XSeries(pts, 400)
	want := []vector.Pt{vector.P(300, 100), vector.P(400, 0)}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("x series mismatch (-want +got):\n%s", d)
	}
}

func TestYSeries(t *testing.T) {
	pts := []vector.Pt{vector.P(300, 260), vector.P(400, 420), vector.P(250, 300), vector.P(260, 330)}
	got := YSeries(pts, 800)
	want := []vector.Pt{vector.P(300, 260), vector.P(200, 420), vector.P(100, 300), vector.P(0, 330)}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("y series mismatch (-want +got):\n%s", d)
	}
}

func TestProjectEmpty(t *testing.T) {
	xs, ys := Project(nil, vector.Size{W: 450, H: 450})
	if xs != nil || ys != nil {
		t.Fatalf("expected nil series for no control points")
	}
}

func TestProjectDoesNotMutateAndKeepsCount(t *testing.T) {
	pts := []vector.Pt{vector.P(230, 240), vector.P(300, 440), vector.P(410, 260)}
	orig := append([]vector.Pt(nil), pts...)
	xs, ys := Project(pts, vector.Size{W: 450, H: 450})
	if len(xs) != len(pts) || len(ys) != len(pts) {
		t.Fatalf("series length mismatch: %d %d", len(xs), len(ys))
	}
	if d := cmp.Diff(orig, pts); d != "" {
		t.Fatalf("input mutated:\n%s", d)
	}
	// The derived polygons are sampled like any other curve.
	if n := len(bezier.NewSampler(bezier.DefaultStep).Sample(xs)); n != 51 {
		t.Fatalf("sampled x(t) has %d points", n)
	}
}
