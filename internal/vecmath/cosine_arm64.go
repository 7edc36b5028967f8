//go:build arm64

package vecmath

import "github.com/viant/vec/search"

func cosineDistance(a []float32, ma float32, b []float32, mb float32) float32 {
	return search.Float32s(a).CosineDistanceWithMagnitude(b, ma, mb)
}
