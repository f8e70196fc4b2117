package volume

// Voxel is a single cell in a volume. Material selects the voxel type
// (0 is empty) and Density its occupancy, 255 being fully solid.
type Voxel struct {
	Material uint8
	Density  uint8
}

// Empty reports whether the voxel holds no material.
func (v Voxel) Empty() bool { return v.Material == 0 && v.Density == 0 }

// RawVolume is a dense voxel store over a region. Voxels outside the
// enclosing region read as the zero voxel; writes outside are dropped.
type RawVolume struct {
	region Region
	data   []Voxel
}

// NewRawVolume creates a volume covering the given region. All voxels
// start empty.
func NewRawVolume(region Region) *RawVolume {
	v := &RawVolume{}
	v.Resize(region)
	return v
}

// Enclosing returns the region this volume covers.
func (v *RawVolume) Enclosing() Region { return v.region }

// Resize replaces the volume's enclosing region and clears all voxels.
func (v *RawVolume) Resize(region Region) {
	v.region = region
	n := int(region.WidthInVoxels()) * int(region.HeightInVoxels()) * int(region.DepthInVoxels())
	if n < 0 {
		n = 0
	}
	v.data = make([]Voxel, n)
}

// index maps volume coordinates to a slice offset, or -1 if the
// coordinates fall outside the enclosing region.
func (v *RawVolume) index(x, y, z int32) int {
	w := v.region.WidthInVoxels()
	h := v.region.HeightInVoxels()
	d := v.region.DepthInVoxels()

	lx := x - v.region.LowerX()
	ly := y - v.region.LowerY()
	lz := z - v.region.LowerZ()
	if lx < 0 || lx >= w || ly < 0 || ly >= h || lz < 0 || lz >= d {
		return -1
	}
	return int(lx) + int(ly)*int(w) + int(lz)*int(w)*int(h)
}

// Voxel returns the voxel at (x, y, z), or the zero voxel if the
// coordinates are outside the volume.
func (v *RawVolume) Voxel(x, y, z int32) Voxel {
	i := v.index(x, y, z)
	if i < 0 {
		return Voxel{}
	}
	return v.data[i]
}

// SetVoxel stores a voxel at (x, y, z). It reports whether the
// coordinates were inside the volume.
func (v *RawVolume) SetVoxel(x, y, z int32, voxel Voxel) bool {
	i := v.index(x, y, z)
	if i < 0 {
		return false
	}
	v.data[i] = voxel
	return true
}

// VoxelCount returns the number of non-empty voxels.
func (v *RawVolume) VoxelCount() int {
	count := 0
	for _, vox := range v.data {
		if !vox.Empty() {
			count++
		}
	}
	return count
}
