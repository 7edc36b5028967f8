package vecmath

import (
	"math"
	"testing"
)

func TestMagnitude(t *testing.T) {
	if got := Magnitude([]float32{3, 4}); got != 5 {
		t.Errorf("Magnitude = %v, want 5", got)
	}
	if got := Magnitude([]float32{0, 0}); got != 0 {
		t.Errorf("Magnitude of zero vector = %v, want 0", got)
	}
}

func TestCosine(t *testing.T) {
	cases := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"scaled", []float32{2, 0}, []float32{7, 0}, 1},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
		{"length mismatch", []float32{1, 2}, []float32{1, 2, 3}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Cosine(tc.a, tc.b); math.Abs(got-tc.want) > 1e-6 {
				t.Errorf("Cosine = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCosineWithMagnitudes(t *testing.T) {
	a := []float32{1, 0, 0}
	b := []float32{1, 1, 0}

	got := CosineWithMagnitudes(a, Magnitude(a), b, Magnitude(b))
	want := math.Sqrt2 / 2
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("CosineWithMagnitudes = %v, want %v", got, want)
	}

	if got := CosineWithMagnitudes(a, 0, b, Magnitude(b)); got != 0 {
		t.Errorf("zero magnitude should yield 0, got %v", got)
	}
}
