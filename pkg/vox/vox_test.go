package vox

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// buildVox assembles a minimal .vox byte stream for tests.
func buildVox(t *testing.T, version int32, chunks ...[]byte) []byte {
	t.Helper()

	var body bytes.Buffer
	for _, c := range chunks {
		body.Write(c)
	}

	var buf bytes.Buffer
	writeLE := func(v interface{}) {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			t.Fatalf("build vox: %v", err)
		}
	}
	writeLE(idVox)
	writeLE(version)
	writeLE(idMain)
	writeLE(int32(0))
	writeLE(int32(body.Len()))
	buf.Write(body.Bytes())
	return buf.Bytes()
}

// chunk assembles a single chunk with the given id and content.
func chunk(t *testing.T, id int32, content []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	writeLE := func(v interface{}) {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			t.Fatalf("build chunk: %v", err)
		}
	}
	writeLE(id)
	writeLE(int32(len(content)))
	writeLE(int32(0))
	buf.Write(content)
	return buf.Bytes()
}

func sizeChunk(t *testing.T, x, y, z int32) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, [3]int32{x, y, z})
	return chunk(t, idSize, buf.Bytes())
}

func xyziChunk(t *testing.T, voxels []Voxel) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, int32(len(voxels)))
	binary.Write(&buf, binary.LittleEndian, voxels)
	return chunk(t, idXYZI, buf.Bytes())
}

func TestDecodeModel(t *testing.T) {
	voxels := []Voxel{
		{X: 0, Y: 0, Z: 0, ColorIndex: 1},
		{X: 1, Y: 1, Z: 1, ColorIndex: 2},
	}
	data := buildVox(t, Version, sizeChunk(t, 2, 2, 2), xyziChunk(t, voxels))

	m, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if m.SizeX != 2 || m.SizeY != 2 || m.SizeZ != 2 {
		t.Errorf("size: got (%d,%d,%d), want (2,2,2)", m.SizeX, m.SizeY, m.SizeZ)
	}
	if len(m.Voxels) != 2 {
		t.Fatalf("voxel count: got %d, want 2", len(m.Voxels))
	}
	if m.Voxels[1] != voxels[1] {
		t.Errorf("voxel[1]: got %+v, want %+v", m.Voxels[1], voxels[1])
	}
	if m.CustomPalette {
		t.Error("CustomPalette: got true without an RGBA chunk")
	}
	// Default palette entry 1 is opaque white.
	if m.Palette[1] != (Color{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("default palette[1]: got %+v, want opaque white", m.Palette[1])
	}
}

func TestDecodeCustomPalette(t *testing.T) {
	var pal bytes.Buffer
	colors := make([]Color, 255)
	colors[0] = Color{R: 10, G: 20, B: 30, A: 40}
	binary.Write(&pal, binary.LittleEndian, colors)
	// Reserved trailing entry, skipped by the reader.
	binary.Write(&pal, binary.LittleEndian, Color{R: 9, G: 9, B: 9, A: 9})

	data := buildVox(t, Version,
		sizeChunk(t, 1, 1, 1),
		xyziChunk(t, []Voxel{{ColorIndex: 1}}),
		chunk(t, idRGBA, pal.Bytes()),
	)

	m, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !m.CustomPalette {
		t.Fatal("CustomPalette: got false with an RGBA chunk present")
	}
	// File colors shift up by one: file entry 0 lands at palette index 1.
	want := Color{R: 10, G: 20, B: 30, A: 40}
	if m.Palette[1] != want {
		t.Errorf("palette[1]: got %+v, want %+v", m.Palette[1], want)
	}
	if got := m.VoxelColor(m.Voxels[0]); got != want {
		t.Errorf("VoxelColor: got %+v, want %+v", got, want)
	}
}

func TestDecodeSkipsUnknownChunks(t *testing.T) {
	unknown := chunk(t, tag('P', 'A', 'C', 'K'), []byte{1, 0, 0, 0})
	data := buildVox(t, Version, unknown, sizeChunk(t, 3, 4, 5))

	m, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if m.SizeX != 3 || m.SizeY != 4 || m.SizeZ != 5 {
		t.Errorf("size: got (%d,%d,%d), want (3,4,5)", m.SizeX, m.SizeY, m.SizeZ)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty input", nil},
		{"bad magic", []byte("NOPE\x96\x00\x00\x00")},
		{"wrong version", buildVox(t, 99)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(bytes.NewReader(tt.data)); err == nil {
				t.Error("Decode: expected error, got nil")
			}
		})
	}
}

func TestDecodeNegativeVoxelCount(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, int32(-1))
	data := buildVox(t, Version, chunk(t, idXYZI, buf.Bytes()))

	if _, err := Decode(bytes.NewReader(data)); err == nil {
		t.Error("Decode with negative voxel count: expected error, got nil")
	}
}

func TestModelVolume(t *testing.T) {
	voxels := []Voxel{
		{X: 0, Y: 0, Z: 0, ColorIndex: 1},
		{X: 2, Y: 1, Z: 0, ColorIndex: 3},
	}
	data := buildVox(t, Version, sizeChunk(t, 3, 2, 1), xyziChunk(t, voxels))

	m, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	r := m.Region()
	if r.Width != 3 || r.Height != 2 || r.Depth != 1 {
		t.Errorf("region extent: got (%d,%d,%d), want (3,2,1)", r.Width, r.Height, r.Depth)
	}

	v := m.Volume()
	if v.VoxelCount() != 2 {
		t.Errorf("VoxelCount: got %d, want 2", v.VoxelCount())
	}
	if got := v.Voxel(2, 1, 0); got.Material != 1 || got.Density != 255 {
		t.Errorf("Voxel(2,1,0): got %+v, want solid", got)
	}
	if got := v.Voxel(1, 0, 0); !got.Empty() {
		t.Errorf("Voxel(1,0,0): got %+v, want empty", got)
	}
}
