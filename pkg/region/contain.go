package region

import v3 "github.com/deadsy/sdfx/vec/v3"

// ContainmentType classifies how two bounding volumes relate.
type ContainmentType int

const (
	// Disjoint indicates no overlap between the two volumes.
	Disjoint ContainmentType = iota
	// Contains indicates the first volume completely contains the second.
	Contains
	// Intersects indicates the volumes partially overlap.
	Intersects
)

func (c ContainmentType) String() string {
	switch c {
	case Disjoint:
		return "disjoint"
	case Contains:
		return "contains"
	case Intersects:
		return "intersects"
	default:
		return "unknown"
	}
}

// Classify returns the three-way containment relation of r2 against r1.
//
// The disjoint test compares continuous bounds with inclusive upper
// faces, so two regions touching face-to-face classify as Intersects.
// Point containment (ContainsPoint) uses a different, exclusive upper
// convention; the two are not interchangeable.
func Classify(r1, r2 Region) ContainmentType {
	lower1 := r1.GetLower()
	upper1 := r1.GetUpper()
	lower2 := r2.GetLower()
	upper2 := r2.GetUpper()

	if upper2.X < lower1.X || lower2.X > upper1.X ||
		upper2.Y < lower1.Y || lower2.Y > upper1.Y ||
		upper2.Z < lower1.Z || lower2.Z > upper1.Z {
		return Disjoint
	}

	if lower2.X >= lower1.X && upper2.X <= upper1.X &&
		lower2.Y >= lower1.Y && upper2.Y <= upper1.Y &&
		lower2.Z >= lower1.Z && upper2.Z <= upper1.Z {
		return Contains
	}

	return Intersects
}

// ContainsPoint reports whether the point lies within the region. The
// upper bound is exclusive by one unit on each axis: a region of extent
// 1 contains exactly one coordinate value per axis.
func ContainsPoint(r Region, p v3.Vec) bool {
	lower := r.GetLower()
	upper := r.GetUpper()
	if p.X < lower.X || p.X > upper.X-1 ||
		p.Y < lower.Y || p.Y > upper.Y-1 ||
		p.Z < lower.Z || p.Z > upper.Z-1 {
		return false
	}
	return true
}

// Intersect reports whether the two regions partially overlap. A region
// fully contained in the other classifies as Contains, not Intersects,
// so Intersect returns false for it; this is not a plain overlap test.
func Intersect(r1, r2 Region) bool {
	return Classify(r1, r2) == Intersects
}
