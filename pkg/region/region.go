// Package region defines the integer axis-aligned bounding volume used
// throughout voxgeom. A Region is described by its lower corner (X, Y, Z)
// and per-axis extents (Width, Height, Depth); the box spans
// [origin, origin+extent) along each axis. Regions are plain values:
// copy freely, mutate in place, no internal locking.
package region

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/voxgeom/pkg/volume"
)

// IVec is an integer 3-vector for corner coordinates.
type IVec struct {
	X, Y, Z int32
}

// Region is an integer-originated axis-aligned box. A well-formed region
// has non-negative extents; none of the constructors enforce that.
type Region struct {
	X      int32
	Y      int32
	Z      int32
	Width  int32
	Height int32
	Depth  int32
}

// NewRegion creates a region from an explicit origin and extent.
// The six scalars are stored verbatim, no validation.
func NewRegion(x, y, z, width, height, depth int32) Region {
	return Region{X: x, Y: y, Z: z, Width: width, Height: height, Depth: depth}
}

// NewRegionFromSize creates a region of the given size with its lower
// corner at the origin. Components are truncated to integers.
func NewRegionFromSize(size v3.Vec) Region {
	return Region{
		Width:  int32(size.X),
		Height: int32(size.Y),
		Depth:  int32(size.Z),
	}
}

// NewRegionFromCorners creates a region from a lower and upper corner.
//
// The extent is computed as lower minus upper, so the conventional call
// with upper >= lower yields negative extents. This matches the behavior
// of existing archives and callers; do not reorder the subtraction.
func NewRegionFromCorners(lower, upper v3.Vec) Region {
	return Region{
		X:      int32(lower.X),
		Y:      int32(lower.Y),
		Z:      int32(lower.Z),
		Width:  int32(lower.X - upper.X),
		Height: int32(lower.Y - upper.Y),
		Depth:  int32(lower.Z - upper.Z),
	}
}

// NewRegionFromCornersInt is NewRegionFromCorners for integer corners.
// It carries the same lower-minus-upper extent computation.
func NewRegionFromCornersInt(lower, upper IVec) Region {
	return Region{
		X:      lower.X,
		Y:      lower.Y,
		Z:      lower.Z,
		Width:  lower.X - upper.X,
		Height: lower.Y - upper.Y,
		Depth:  lower.Z - upper.Z,
	}
}

// NewRegionFromVoxel converts a volume-space corner-pair region. The
// extent is taken from the volume region's width/height/depth accessors
// rather than recomputed from the raw corners.
func NewRegionFromVoxel(vr volume.Region) Region {
	return Region{
		X:      vr.LowerX(),
		Y:      vr.LowerY(),
		Z:      vr.LowerZ(),
		Width:  vr.WidthInVoxels(),
		Height: vr.HeightInVoxels(),
		Depth:  vr.DepthInVoxels(),
	}
}

// VoxelRegion converts to the volume-space corner-pair representation,
// with lower = origin and upper = origin + extent. For regions with
// non-negative extents this is the exact inverse of NewRegionFromVoxel.
func (r Region) VoxelRegion() volume.Region {
	return volume.NewRegion(r.X, r.Y, r.Z, r.X+r.Width, r.Y+r.Height, r.Z+r.Depth)
}

// Min returns the lower corner.
func (r Region) Min() v3.Vec {
	return v3.Vec{X: float64(r.X), Y: float64(r.Y), Z: float64(r.Z)}
}

// Max returns the upper corner.
func (r Region) Max() v3.Vec {
	return v3.Vec{
		X: float64(r.X + r.Width),
		Y: float64(r.Y + r.Height),
		Z: float64(r.Z + r.Depth),
	}
}

// GetLower returns the lower corner.
func (r Region) GetLower() v3.Vec { return r.Min() }

// GetUpper returns the upper corner.
func (r Region) GetUpper() v3.Vec { return r.Max() }

// GetLowerInt returns the lower corner as integers.
func (r Region) GetLowerInt() IVec {
	return IVec{X: r.X, Y: r.Y, Z: r.Z}
}

// GetUpperInt returns the upper corner as integers.
func (r Region) GetUpperInt() IVec {
	return IVec{X: r.X + r.Width, Y: r.Y + r.Height, Z: r.Z + r.Depth}
}

// Size returns the per-axis extents.
func (r Region) Size() v3.Vec {
	return v3.Vec{X: float64(r.Width), Y: float64(r.Height), Z: float64(r.Depth)}
}

// GetCenter returns the center of the region. Each component is
// origin + extent/2 in integer arithmetic, truncating toward zero.
func (r Region) GetCenter() v3.Vec {
	return v3.Vec{
		X: float64(r.X + r.Width/2),
		Y: float64(r.Y + r.Height/2),
		Z: float64(r.Z + r.Depth/2),
	}
}

// Bounds returns the region's continuous bounds as an sdf.Box3 for
// handing to SDF-based consumers.
func (r Region) Bounds() sdf.Box3 {
	return sdf.Box3{Min: r.Min(), Max: r.Max()}
}

// Grow expands the region symmetrically about its center by the given
// amount per axis. Negative amounts shrink it.
func (r *Region) Grow(width, height, depth int32) {
	r.X -= width
	r.Y -= height
	r.Z -= depth
	r.Width += width * 2
	r.Height += height * 2
	r.Depth += depth * 2
}

// GrowUnified grows the region by the same amount in every direction.
func (r *Region) GrowUnified(amount int32) {
	r.Grow(amount, amount, amount)
}

// ShiftUpperCorner moves the lower corner by (x, y, z) while holding the
// upper corner fixed.
func (r *Region) ShiftUpperCorner(x, y, z int32) {
	r.X += x
	r.Y += y
	r.Z += z
	r.Width -= x
	r.Height -= y
	r.Depth -= z
}

// ShiftLowerCorner moves the upper corner by (x, y, z) while holding the
// lower corner fixed.
func (r *Region) ShiftLowerCorner(x, y, z int32) {
	r.Width += x
	r.Height += y
	r.Depth += z
}

func (r Region) String() string {
	min := r.Min()
	max := r.Max()
	return fmt.Sprintf("Min=[%g,%g,%g] Max=[%g,%g,%g]",
		min.X, min.Y, min.Z, max.X, max.Y, max.Z)
}
