package orbit

import "github.com/mlanner/orbview/pkg/math"

// Normalize computes the centering translation and uniform scale that
// fit the given bounds into a cube of side targetSize centered at the
// origin. Source files arrive in arbitrary unit systems; this makes
// every loaded model displayable at a consistent size.
//
// The translation is applied before the scale: p' = (p + translation) * scale.
// A degenerate box (zero extent, e.g. a single point) keeps scale 1.
func Normalize(bounds math.Box3, targetSize float32) (translation math.Vec3, scale float32) {
	translation = bounds.Center().Neg()
	extent := bounds.MaxExtent()
	if extent <= 0 {
		return translation, 1.0
	}
	return translation, targetSize / extent
}
