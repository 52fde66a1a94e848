package asset

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/g3n/engine/core"
	"github.com/g3n/engine/graphic"
	"github.com/g3n/engine/loader/collada"
	"github.com/g3n/engine/math32"

	"github.com/mlanner/orbview/pkg/math"
)

// decodeDAE reads a Collada .dae file by building the decoder's scene
// graph and harvesting geometry from every graphic node. Node
// transforms and materials are ignored; normalization handles placement.
func decodeDAE(path string) (MeshSet, error) {
	dec, err := collada.Decode(path)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	dec.SetDirImages(filepath.Dir(path))

	scene, err := dec.NewScene()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}

	var set MeshSet
	collectGraphics(scene, &set)
	return set, nil
}

// collectGraphics walks the node tree appending one mesh per graphic.
func collectGraphics(n core.INode, set *MeshSet) {
	if igr, ok := n.(graphic.IGraphic); ok {
		geom := igr.GetGeometry()

		var positions []math.Vec3
		geom.ReadVertices(func(v math32.Vector3) bool {
			positions = append(positions, math.Vec3{X: v.X, Y: v.Y, Z: v.Z})
			return false
		})

		indices := make([]uint32, 0, len(geom.Indices()))
		indices = append(indices, geom.Indices()...)
		if len(indices) == 0 {
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		if len(positions) > 0 {
			*set = append(*set, Mesh{
				Name:      n.GetNode().Name(),
				Positions: positions,
				Indices:   indices,
			})
		}
	}

	for _, child := range n.GetNode().Children() {
		collectGraphics(child, set)
	}
}
