package region

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// binarySize is the encoded size of a region: six int32 fields.
const binarySize = 24

// The wire format is the six fields as little-endian int32 in the order
// X, Y, Z, Width, Height, Depth. No version tag, no length prefix;
// existing archives depend on this exact layout.

// Write encodes the region to w.
func (r Region) Write(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, r); err != nil {
		return fmt.Errorf("region: write: %w", err)
	}
	return nil
}

// Read decodes the region from rd, replacing all six fields.
func (r *Region) Read(rd io.Reader) error {
	if err := binary.Read(rd, binary.LittleEndian, r); err != nil {
		return fmt.Errorf("region: read: %w", err)
	}
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (r Region) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(binarySize)
	if err := r.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (r *Region) UnmarshalBinary(data []byte) error {
	if len(data) != binarySize {
		return fmt.Errorf("region: unmarshal: got %d bytes, want %d", len(data), binarySize)
	}
	return r.Read(bytes.NewReader(data))
}
