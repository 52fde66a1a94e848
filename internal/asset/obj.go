package asset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/g3n/engine/loader/obj"

	"github.com/mlanner/orbview/pkg/math"
)

// decodeOBJ reads a Wavefront .obj file. All objects are merged into a
// single mesh over the shared vertex array; polygon faces are
// triangulated with a fan.
func decodeOBJ(path string) (MeshSet, error) {
	dec, err := obj.Decode(path, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}

	positions := make([]math.Vec3, 0, len(dec.Vertices)/3)
	for i := 0; i+2 < len(dec.Vertices); i += 3 {
		positions = append(positions, math.Vec3{
			X: dec.Vertices[i],
			Y: dec.Vertices[i+1],
			Z: dec.Vertices[i+2],
		})
	}

	var indices []uint32
	for _, object := range dec.Objects {
		for _, face := range object.Faces {
			if len(face.Vertices) < 3 {
				continue
			}
			for i := 1; i < len(face.Vertices)-1; i++ {
				indices = append(indices,
					uint32(face.Vertices[0]),
					uint32(face.Vertices[i]),
					uint32(face.Vertices[i+1]),
				)
			}
		}
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return MeshSet{{Name: name, Positions: positions, Indices: indices}}, nil
}
