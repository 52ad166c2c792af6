package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
		{
			name:     "zero-height rect never intersects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(2, 5, 4, 0),
			expected: false,
		},
		{
			name:     "zero-width rect never intersects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 2, 0, 4),
			expected: false,
		},
		{
			name:     "collapsed hitbox never intersects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 0, 10, 10).Inset(6),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(150, 300, 35, 35).Inset(5)
	if r.X != 155 || r.Y != 305 || r.W != 25 || r.H != 25 {
		t.Errorf("Inset(5) = %+v, expected {155 305 25 25}", r)
	}

	collapsed := NewRect(0, 0, 4, 4).Inset(10)
	if collapsed.W != 0 || collapsed.H != 0 {
		t.Errorf("Inset larger than size should collapse, got %+v", collapsed)
	}
	if cx, cy := collapsed.Center(); cx != 2 || cy != 2 {
		t.Errorf("collapsed rect should keep center (2, 2), got (%v, %v)", cx, cy)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
