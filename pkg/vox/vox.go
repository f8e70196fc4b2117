// Package vox reads MagicaVoxel .vox model files. A decoded model
// carries the grid size, the sparse voxel list, and the palette, and
// can be materialized into a dense volume with its enclosing region.
package vox

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/chazu/voxgeom/pkg/region"
	"github.com/chazu/voxgeom/pkg/volume"
)

// Version is the only .vox file version this reader accepts.
const Version = 150

// Chunk identifiers, little-endian four-byte tags.
var (
	idVox  = tag('V', 'O', 'X', ' ')
	idMain = tag('M', 'A', 'I', 'N')
	idSize = tag('S', 'I', 'Z', 'E')
	idXYZI = tag('X', 'Y', 'Z', 'I')
	idRGBA = tag('R', 'G', 'B', 'A')
)

func tag(a, b, c, d byte) int32 {
	return int32(a) | int32(b)<<8 | int32(c)<<16 | int32(d)<<24
}

func tagString(id int32) string {
	return string([]byte{byte(id), byte(id >> 8), byte(id >> 16), byte(id >> 24)})
}

// Color is an RGBA palette entry.
type Color struct {
	R, G, B, A uint8
}

// Voxel is one occupied cell of a model: grid coordinates plus a
// palette index.
type Voxel struct {
	X, Y, Z    uint8
	ColorIndex uint8
}

// Model is a decoded .vox file.
type Model struct {
	SizeX, SizeY, SizeZ int32
	Voxels              []Voxel
	Palette             [256]Color
	CustomPalette       bool
}

// chunkHeader precedes every chunk in the file.
type chunkHeader struct {
	ID           int32
	ContentSize  int32
	ChildrenSize int32
}

// Decode reads a .vox model from r.
func Decode(r io.Reader) (*Model, error) {
	var magic, version int32
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return nil, fmt.Errorf("vox: read magic: %w", err)
	}
	if magic != idVox {
		return nil, fmt.Errorf("vox: bad magic %q, want %q", tagString(magic), tagString(idVox))
	}
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("vox: read version: %w", err)
	}
	if version != Version {
		return nil, fmt.Errorf("vox: unsupported version %d, want %d", version, Version)
	}

	var main chunkHeader
	if err := binary.Read(r, binary.LittleEndian, &main); err != nil {
		return nil, fmt.Errorf("vox: read main chunk: %w", err)
	}
	if main.ID != idMain {
		return nil, fmt.Errorf("vox: expected MAIN chunk, got %q", tagString(main.ID))
	}

	m := &Model{}
	for {
		var sub chunkHeader
		err := binary.Read(r, binary.LittleEndian, &sub)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("vox: read chunk header: %w", err)
		}

		switch sub.ID {
		case idSize:
			var size [3]int32
			if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
				return nil, fmt.Errorf("vox: read SIZE chunk: %w", err)
			}
			m.SizeX, m.SizeY, m.SizeZ = size[0], size[1], size[2]

		case idXYZI:
			var numVoxels int32
			if err := binary.Read(r, binary.LittleEndian, &numVoxels); err != nil {
				return nil, fmt.Errorf("vox: read voxel count: %w", err)
			}
			if numVoxels < 0 {
				return nil, fmt.Errorf("vox: negative voxel count %d", numVoxels)
			}
			m.Voxels = make([]Voxel, numVoxels)
			if err := binary.Read(r, binary.LittleEndian, m.Voxels); err != nil {
				return nil, fmt.Errorf("vox: read XYZI chunk: %w", err)
			}

		case idRGBA:
			// The file stores 256 colors but the last entry is reserved;
			// entry 0 of the palette stays empty and entries shift up by one.
			m.CustomPalette = true
			var colors [255]Color
			if err := binary.Read(r, binary.LittleEndian, &colors); err != nil {
				return nil, fmt.Errorf("vox: read RGBA chunk: %w", err)
			}
			copy(m.Palette[1:], colors[:])
			var reserved Color
			if err := binary.Read(r, binary.LittleEndian, &reserved); err != nil {
				return nil, fmt.Errorf("vox: read reserved palette entry: %w", err)
			}

		default:
			// Unknown chunk (PACK, MATT, ...): skip content and children.
			skip := int64(sub.ContentSize) + int64(sub.ChildrenSize)
			if skip < 0 {
				return nil, fmt.Errorf("vox: chunk %q has negative size", tagString(sub.ID))
			}
			if _, err := io.CopyN(io.Discard, r, skip); err != nil {
				return nil, fmt.Errorf("vox: skip chunk %q: %w", tagString(sub.ID), err)
			}
		}
	}

	if !m.CustomPalette {
		for i, packed := range defaultPalette {
			m.Palette[i] = unpackColor(packed)
		}
	}
	return m, nil
}

// unpackColor expands a packed 0xAABBGGRR palette entry.
func unpackColor(packed uint32) Color {
	return Color{
		R: uint8(packed),
		G: uint8(packed >> 8),
		B: uint8(packed >> 16),
		A: uint8(packed >> 24),
	}
}

// Region returns the model's enclosing region, anchored at the origin.
func (m *Model) Region() region.Region {
	return region.NewRegion(0, 0, 0, m.SizeX, m.SizeY, m.SizeZ)
}

// Volume materializes the sparse voxel list into a dense volume. Every
// occupied cell becomes a solid voxel; colors stay with the model's
// palette, addressed by each voxel's ColorIndex.
func (m *Model) Volume() *volume.RawVolume {
	v := volume.NewRawVolume(m.Region().VoxelRegion())
	for _, vox := range m.Voxels {
		v.SetVoxel(int32(vox.X), int32(vox.Y), int32(vox.Z), volume.Voxel{Material: 1, Density: 255})
	}
	return v
}

// VoxelColor returns the palette color for a voxel of the model.
func (m *Model) VoxelColor(v Voxel) Color {
	return m.Palette[v.ColorIndex]
}
