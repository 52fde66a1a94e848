package math

import "errors"

// ErrNoPoints is returned when bounds are requested for empty geometry.
var ErrNoPoints = errors.New("no points to bound")

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min Vec3
	Max Vec3
}

// ComputeBounds returns the axis-aligned bounding box of the given
// points. Returns ErrNoPoints for an empty slice; callers are expected
// to skip normalization and keep an identity transform in that case.
func ComputeBounds(points []Vec3) (Box3, error) {
	if len(points) == 0 {
		return Box3{}, ErrNoPoints
	}

	b := Box3{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b, nil
}

// ExpandByPoint grows the box to include p.
func (b *Box3) ExpandByPoint(p Vec3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// Center returns the center point of the box.
func (b Box3) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the dimensions of the box.
func (b Box3) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// MaxExtent returns the longest side of the box.
func (b Box3) MaxExtent() float32 {
	s := b.Size()
	e := s.X
	if s.Y > e {
		e = s.Y
	}
	if s.Z > e {
		e = s.Z
	}
	return e
}

// Corners returns the eight corners of the box.
func (b Box3) Corners() [8]Vec3 {
	return [8]Vec3{
		{b.Min.X, b.Min.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z},
		{b.Max.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z},
		{b.Max.X, b.Max.Y, b.Max.Z},
	}
}
