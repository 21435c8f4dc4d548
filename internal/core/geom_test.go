package core

import "testing"

func TestPointAddNeg(t *testing.T) {
	p := Pt(3, -2)

	if got := p.Add(Pt(1, 1)); got != Pt(4, -1) {
		t.Errorf("Add() = %v, expected (4, -1)", got)
	}
	if got := p.Neg(); got != Pt(-3, 2) {
		t.Errorf("Neg() = %v, expected (-3, 2)", got)
	}
	if p.Add(p.Neg()) != (Point{}) {
		t.Error("p + (-p) should be the origin")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"last cell", 29, 24, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
			if r.ContainsPoint(Pt(tc.x, tc.y)) != tc.expected {
				t.Errorf("ContainsPoint(%d, %d) disagrees with Contains", tc.x, tc.y)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	if r.Area() != 300 {
		t.Errorf("Area() = %d, expected 300", r.Area())
	}
	if NewRect(0, 0, -1, 4).Area() != 0 {
		t.Error("Area() of a degenerate rect should be 0")
	}
}
