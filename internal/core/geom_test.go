package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestVecReflect(t *testing.T) {
	tests := []struct {
		name     string
		d, n     Vec
		expected Vec
	}{
		{"off floor", V(1, -1).Normalize(), V(0, 1), V(1, 1).Normalize()},
		{"off ceiling", V(0.6, 0.8), V(0, -1), V(0.6, -0.8)},
		{"off right wall", V(0.8, 0.6), V(-1, 0), V(-0.8, 0.6)},
		{"head on", V(0, 1), V(0, -1), V(0, -1)},
		{"grazing", V(1, 0), V(0, 1), V(1, 0)},
		{"diagonal normal", V(1, 0), V(-1, 1).Normalize(), V(0, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.d.Reflect(tc.n)
			if !near(got.X, tc.expected.X) || !near(got.Y, tc.expected.Y) || !near(got.Z, tc.expected.Z) {
				t.Errorf("Reflect() = %+v, expected %+v", got, tc.expected)
			}
			if !near(got.Len(), tc.d.Len()) {
				t.Errorf("Reflect() changed length: %f -> %f", tc.d.Len(), got.Len())
			}
		})
	}
}

func TestVecReflectPreservesLengthSweep(t *testing.T) {
	for i := 0; i < 360; i += 7 {
		for j := 0; j < 360; j += 11 {
			a := float64(i) * math.Pi / 180
			b := float64(j) * math.Pi / 180
			d := V(math.Cos(a), math.Sin(a))
			n := V(math.Cos(b), math.Sin(b))

			got := d.Reflect(n)
			want := d.Sub(n.Scale(2 * d.Dot(n)))
			if !near(got.X, want.X) || !near(got.Y, want.Y) {
				t.Fatalf("Reflect(%v, %v) = %v, expected %v", d, n, got, want)
			}
			if !near(got.Len(), 1) {
				t.Fatalf("Reflect(%v, %v) length = %f, expected 1", d, n, got.Len())
			}
		}
	}
}

func TestVecNormalize(t *testing.T) {
	v := V(3, 4).Normalize()
	if !near(v.X, 0.6) || !near(v.Y, 0.8) {
		t.Errorf("Normalize() = %+v, expected (0.6, 0.8)", v)
	}

	zero := Vec{}.Normalize()
	if !zero.IsZero() {
		t.Errorf("Normalize() of zero vector should stay zero, got %+v", zero)
	}
}

func TestBoxCircleContact(t *testing.T) {
	box := NewBox(V(0, 0), 2, 1) // x in [-1, 1], y in [-0.5, 0.5]

	tests := []struct {
		name     string
		center   Vec
		radius   float64
		hit      bool
		expected Vec
	}{
		{"above", V(0, 0.6), 0.2, true, V(0, 1)},
		{"below", V(0.5, -0.6), 0.2, true, V(0, -1)},
		{"left", V(-1.1, 0), 0.2, true, V(-1, 0)},
		{"right", V(1.15, 0.1), 0.2, true, V(1, 0)},
		{"far away", V(3, 3), 0.2, false, Vec{}},
		{"just out of reach", V(0, 0.75), 0.2, false, Vec{}},
		{"inside near top", V(0, 0.4), 0.2, true, V(0, 1)},
		{"inside near left", V(-0.95, 0), 0.2, true, V(-1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, hit := box.CircleContact(tc.center, tc.radius)
			if hit != tc.hit {
				t.Fatalf("CircleContact() hit = %v, expected %v", hit, tc.hit)
			}
			if hit && (!near(n.X, tc.expected.X) || !near(n.Y, tc.expected.Y)) {
				t.Errorf("CircleContact() normal = %+v, expected %+v", n, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(V(1, 2), 4, 2)
	if b.MinX() != -1 || b.MaxX() != 3 {
		t.Errorf("x edges = [%f, %f], expected [-1, 3]", b.MinX(), b.MaxX())
	}
	if b.MinY() != 1 || b.MaxY() != 3 {
		t.Errorf("y edges = [%f, %f], expected [1, 3]", b.MinY(), b.MaxY())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
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
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %f, expected 5", got)
	}
	if got := Lerp(0, 10, 3); got != 10 {
		t.Errorf("Lerp should clamp t above 1, got %f", got)
	}
	if got := Lerp(4, 10, -1); got != 4 {
		t.Errorf("Lerp should clamp t below 0, got %f", got)
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
