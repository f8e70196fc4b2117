// Package volume provides voxel volume storage and the corner-pair
// region representation used by volume containers. Volume regions store
// an explicit lower and upper corner; derived widths are always obtained
// through the accessor methods, which is the contract other packages
// convert against.
package volume

import "fmt"

// Region is a volume-space region described by its lower and upper
// corner coordinates. It is the storage-side counterpart of
// region.Region, which uses an origin plus per-axis extents instead.
type Region struct {
	lowerX, lowerY, lowerZ int32
	upperX, upperY, upperZ int32
}

// NewRegion creates a region from explicit lower and upper corner
// coordinates. The corners are stored verbatim.
func NewRegion(lowerX, lowerY, lowerZ, upperX, upperY, upperZ int32) Region {
	return Region{
		lowerX: lowerX, lowerY: lowerY, lowerZ: lowerZ,
		upperX: upperX, upperY: upperY, upperZ: upperZ,
	}
}

// LowerX returns the lower corner X coordinate.
func (r Region) LowerX() int32 { return r.lowerX }

// LowerY returns the lower corner Y coordinate.
func (r Region) LowerY() int32 { return r.lowerY }

// LowerZ returns the lower corner Z coordinate.
func (r Region) LowerZ() int32 { return r.lowerZ }

// UpperX returns the upper corner X coordinate.
func (r Region) UpperX() int32 { return r.upperX }

// UpperY returns the upper corner Y coordinate.
func (r Region) UpperY() int32 { return r.upperY }

// UpperZ returns the upper corner Z coordinate.
func (r Region) UpperZ() int32 { return r.upperZ }

// WidthInVoxels returns the region width derived from the corner pair.
func (r Region) WidthInVoxels() int32 { return r.upperX - r.lowerX }

// HeightInVoxels returns the region height derived from the corner pair.
func (r Region) HeightInVoxels() int32 { return r.upperY - r.lowerY }

// DepthInVoxels returns the region depth derived from the corner pair.
func (r Region) DepthInVoxels() int32 { return r.upperZ - r.lowerZ }

// SetLowerCorner replaces the lower corner.
func (r *Region) SetLowerCorner(x, y, z int32) {
	r.lowerX, r.lowerY, r.lowerZ = x, y, z
}

// SetUpperCorner replaces the upper corner.
func (r *Region) SetUpperCorner(x, y, z int32) {
	r.upperX, r.upperY, r.upperZ = x, y, z
}

func (r Region) String() string {
	return fmt.Sprintf("Lower=[%d,%d,%d] Upper=[%d,%d,%d]",
		r.lowerX, r.lowerY, r.lowerZ, r.upperX, r.upperY, r.upperZ)
}
