package geometry

import "testing"

func TestRectAnchors(t *testing.T) {
	r := Rect{Left: 10, Right: 110, Top: 20, Bottom: 60}

	if got, want := r.Width(), 100.0; got != want {
		t.Errorf("Width = %v, want %v", got, want)
	}
	if got, want := r.Height(), 40.0; got != want {
		t.Errorf("Height = %v, want %v", got, want)
	}
	if got, want := r.CenterX(), 60.0; got != want {
		t.Errorf("CenterX = %v, want %v", got, want)
	}
	if got, want := r.CenterY(), 40.0; got != want {
		t.Errorf("CenterY = %v, want %v", got, want)
	}

	if got, want := r.RightCenter(), (Point{110, 40}); got != want {
		t.Errorf("RightCenter = %v, want %v", got, want)
	}
	if got, want := r.LeftCenter(), (Point{10, 40}); got != want {
		t.Errorf("LeftCenter = %v, want %v", got, want)
	}
	if got, want := r.TopCenter(), (Point{60, 20}); got != want {
		t.Errorf("TopCenter = %v, want %v", got, want)
	}
	if got, want := r.BottomCenter(), (Point{60, 60}); got != want {
		t.Errorf("BottomCenter = %v, want %v", got, want)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 0, Right: 10, Top: 0, Bottom: 10}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{5, 5}, true},
		{"edge inclusive", Point{10, 10}, true},
		{"left of rect", Point{-1, 5}, false},
		{"below rect", Point{5, 11}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestFmtNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{50, "50"},
		{12.5, "12.5"},
		{0, "0"},
		{-3.25, "-3.25"},
	}

	for _, tt := range tests {
		if got := fmtNum(tt.in); got != tt.want {
			t.Errorf("fmtNum(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
