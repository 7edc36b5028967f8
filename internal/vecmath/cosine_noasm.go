//go:build !arm64

package vecmath

import "github.com/viant/vec/search"

// The precomputed-magnitudes variant is exported under a Neon-suffixed name
// on non-arm64 builds of viant/vec; it dispatches to the portable scalar
// implementation there.
func cosineDistance(a []float32, ma float32, b []float32, mb float32) float32 {
	return search.Float32s(a).CosineDistanceWithMagnitudesNeon(b, ma, mb)
}
