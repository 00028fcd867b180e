package core

import "testing"

func TestRectContains(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		x, y     int
		expected bool
	}{
		{
			name:     "inside",
			r:        NewRect(2, 3, 10, 5),
			x:        5,
			y:        4,
			expected: true,
		},
		{
			name:     "top-left corner is inside",
			r:        NewRect(2, 3, 10, 5),
			x:        2,
			y:        3,
			expected: true,
		},
		{
			name:     "right edge is exclusive",
			r:        NewRect(2, 3, 10, 5),
			x:        12,
			y:        4,
			expected: false,
		},
		{
			name:     "bottom edge is exclusive",
			r:        NewRect(2, 3, 10, 5),
			x:        5,
			y:        8,
			expected: false,
		},
		{
			name:     "outside left",
			r:        NewRect(2, 3, 10, 5),
			x:        1,
			y:        4,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Rect%v.Contains(%d, %d) = %v, want %v", tt.r, tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 10, 20)
	if r.Right() != 13 {
		t.Errorf("Right() = %d, want 13", r.Right())
	}
	if r.Bottom() != 24 {
		t.Errorf("Bottom() = %d, want 24", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(-7) != 7 || Abs(7) != 7 || Abs(0) != 0 {
		t.Error("Abs returned wrong values")
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min returned wrong values")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max returned wrong values")
	}
}
