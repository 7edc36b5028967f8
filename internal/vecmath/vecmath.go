// Package vecmath provides the similarity primitives shared by the vector
// index implementations and the retriever.
package vecmath

import "github.com/viant/vec/search"

// Magnitude returns the Euclidean norm of v.
func Magnitude(v []float32) float32 {
	return search.Float32s(v).Magnitude()
}

// Cosine returns the cosine similarity between a and b.
// Mismatched or zero vectors yield 0.
func Cosine(a, b []float32) float64 {
	return CosineWithMagnitudes(a, Magnitude(a), b, Magnitude(b))
}

// CosineWithMagnitudes is Cosine with precomputed norms, for callers that
// score one vector against many stored entries.
func CosineWithMagnitudes(a []float32, ma float32, b []float32, mb float32) float64 {
	if len(a) != len(b) || ma == 0 || mb == 0 {
		return 0
	}
	return 1 - float64(cosineDistance(a, ma, b, mb))
}
