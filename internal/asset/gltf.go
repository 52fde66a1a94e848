package asset

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/mlanner/orbview/pkg/math"
)

// decodeGLTF reads a .gltf or .glb file. Only triangle primitives with
// positions are kept; materials and textures are ignored here.
func decodeGLTF(path string) (MeshSet, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}

	var set MeshSet
	for _, mesh := range doc.Meshes {
		for _, primitive := range mesh.Primitives {
			if primitive.Mode != gltf.PrimitiveTriangles {
				continue
			}
			posIdx, ok := primitive.Attributes[gltf.POSITION]
			if !ok {
				continue
			}

			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("%w: positions: %v", ErrParseFailure, err)
			}

			var indices []uint32
			if primitive.Indices != nil {
				indices, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("%w: indices: %v", ErrParseFailure, err)
				}
			} else {
				indices = make([]uint32, len(positions))
				for i := range indices {
					indices[i] = uint32(i)
				}
			}

			m := Mesh{Name: mesh.Name, Indices: indices}
			m.Positions = make([]math.Vec3, len(positions))
			for i, p := range positions {
				m.Positions[i] = math.Vec3{X: p[0], Y: p[1], Z: p[2]}
			}
			set = append(set, m)
		}
	}
	return set, nil
}
