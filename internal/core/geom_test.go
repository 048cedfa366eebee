package core

import "testing"

func TestRectOverlap(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Rect
		dx, dy float64
	}{
		{"partial", NewRect(0, 0, 10, 10), NewRect(6, 3, 10, 10), 4, 7},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 8), 5, 8},
		{"apart", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), -5, 10},
		{"touching", NewRect(0, 0, 10, 10), NewRect(10, 10, 5, 5), 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy := tc.a.Overlap(tc.b)
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Overlap() = (%v, %v), expected (%v, %v)", dx, dy, tc.dx, tc.dy)
			}
			rdx, rdy := tc.b.Overlap(tc.a)
			if rdx != dx || rdy != dy {
				t.Errorf("Overlap() is not symmetric: (%v, %v) vs (%v, %v)", dx, dy, rdx, rdy)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(10, 20, 30, 40).Inset(4, 4)
	want := NewRect(14, 24, 22, 32)
	if r != want {
		t.Errorf("Inset() = %+v, expected %+v", r, want)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
}

func TestNearestColor(t *testing.T) {
	tests := []struct {
		in   RGB
		want Color
	}{
		{RGB{255, 0, 0}, ColorBrightRed},
		{RGB{250, 250, 250}, ColorBrightWhite},
		{RGB{0, 0, 0}, ColorBlack},
		{RGB{250, 130, 10}, ColorOrange},
	}

	for _, tc := range tests {
		if got := NearestColor(tc.in); got != tc.want {
			t.Errorf("NearestColor(%v) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}
