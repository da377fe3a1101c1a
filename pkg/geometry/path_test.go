package geometry

import (
	"strings"
	"testing"
)

func TestBezierPath(t *testing.T) {
	tests := []struct {
		name           string
		sx, sy, tx, ty float64
		want           string
	}{
		{"diagonal", 0, 0, 100, 50, "M 0 0 C 50 0, 50 50, 100 50"},
		{"horizontal degenerates to straight line", 0, 10, 100, 10, "M 0 10 C 50 10, 50 10, 100 10"},
		{"fractional coordinates keep decimals", 0, 0, 25, 10, "M 0 0 C 12.5 0, 12.5 10, 25 10"},
		{"right to left", 100, 50, 0, 0, "M 100 50 C 50 50, 50 0, 0 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BezierPath(tt.sx, tt.sy, tt.tx, tt.ty)
			if got != tt.want {
				t.Errorf("BezierPath(%v,%v,%v,%v) = %q, want %q", tt.sx, tt.sy, tt.tx, tt.ty, got, tt.want)
			}
		})
	}
}

func TestSmoothStepPath_Downward(t *testing.T) {
	got := SmoothStepPath(10, 20, 100, 80, 5)

	if !strings.HasPrefix(got, "M 10 20") {
		t.Errorf("path should start at source: %q", got)
	}
	if !strings.HasSuffix(got, "H 100") {
		t.Errorf("path should end with horizontal run to target: %q", got)
	}

	want := "M 10 20 H 50 Q 55 20, 55 25 V 75 Q 55 80, 60 80 H 100"
	if got != want {
		t.Errorf("SmoothStepPath = %q, want %q", got, want)
	}
}

func TestSmoothStepPath_Upward(t *testing.T) {
	// Target above source curves upward: the first corner bends toward
	// decreasing y.
	got := SmoothStepPath(10, 80, 100, 20, 5)

	want := "M 10 80 H 50 Q 55 80, 55 75 V 25 Q 55 20, 60 20 H 100"
	if got != want {
		t.Errorf("SmoothStepPath = %q, want %q", got, want)
	}
}

func TestSmoothStepPath_SameLevel(t *testing.T) {
	got := SmoothStepPath(0, 30, 80, 30, 5)
	if got != "M 0 30 H 80" {
		t.Errorf("same-level path should be a straight run, got %q", got)
	}
}

func TestArrowPath(t *testing.T) {
	tests := []struct {
		name             string
		tx, ty           float64
		size, offset     float64
		want             string
	}{
		{"at target", 20, 20, 4, 0, "M 20 20 L 16 18 L 16 22 Z"},
		{"with offset", 20, 20, 4, 2, "M 18 20 L 14 18 L 14 22 Z"},
		{"odd size splits base", 10, 10, 3, 0, "M 10 10 L 7 8.5 L 7 11.5 Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ArrowPath(tt.tx, tt.ty, tt.size, tt.offset)
			if got != tt.want {
				t.Errorf("ArrowPath(%v,%v,%v,%v) = %q, want %q", tt.tx, tt.ty, tt.size, tt.offset, got, tt.want)
			}
		})
	}
}

func TestPath_Dispatch(t *testing.T) {
	from, to := Point{0, 0}, Point{100, 50}

	if got := Path(CurveBezier, from, to, 0); got != BezierPath(0, 0, 100, 50) {
		t.Errorf("Path(bezier) = %q", got)
	}
	if got := Path(CurveSmoothStep, from, to, 5); got != SmoothStepPath(0, 0, 100, 50, 5) {
		t.Errorf("Path(smoothstep) = %q", got)
	}
	// Unknown kinds fall back to bezier.
	if got := Path(Curve("squiggle"), from, to, 0); got != BezierPath(0, 0, 100, 50) {
		t.Errorf("Path(unknown) = %q", got)
	}
	// Zero radius picks up the default.
	if got := Path(CurveSmoothStep, from, to, 0); got != SmoothStepPath(0, 0, 100, 50, DefaultStepRadius) {
		t.Errorf("Path(smoothstep, radius 0) = %q", got)
	}
}
