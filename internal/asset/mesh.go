package asset

import "github.com/mlanner/orbview/pkg/math"

// Mesh is one renderable submesh: a triangle list over shared positions.
type Mesh struct {
	Name      string
	Positions []math.Vec3
	Indices   []uint32
}

// MeshSet is all submeshes of one loaded asset.
type MeshSet []Mesh

// Points returns every vertex position of the set, for bounds
// computation.
func (ms MeshSet) Points() []math.Vec3 {
	var n int
	for _, m := range ms {
		n += len(m.Positions)
	}
	points := make([]math.Vec3, 0, n)
	for _, m := range ms {
		points = append(points, m.Positions...)
	}
	return points
}

// TriangleCount returns the total triangle count of the set.
func (ms MeshSet) TriangleCount() int {
	var n int
	for _, m := range ms {
		n += len(m.Indices) / 3
	}
	return n
}

// PlaceholderCube returns the deterministic fallback shown when a load
// fails: a solid unit cube centered at the origin.
func PlaceholderCube() MeshSet {
	positions := []math.Vec3{
		{X: -0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: 0.5, Z: -0.5},
		{X: -0.5, Y: 0.5, Z: -0.5},
		{X: -0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: 0.5, Z: 0.5},
		{X: -0.5, Y: 0.5, Z: 0.5},
	}
	indices := []uint32{
		0, 2, 1, 0, 3, 2, // back
		4, 5, 6, 4, 6, 7, // front
		0, 4, 7, 0, 7, 3, // left
		1, 6, 5, 1, 2, 6, // right
		3, 7, 6, 3, 6, 2, // top
		0, 1, 5, 0, 5, 4, // bottom
	}
	return MeshSet{{Name: "placeholder", Positions: positions, Indices: indices}}
}
