// Package binhdr implements the 16-byte binary asset container header
// shared by every binary asset file (spec.md §3, §6): magic, type,
// version, and the size of what follows.
package binhdr

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Magic is the fixed value every binary asset file must start with.
const Magic uint32 = 0xCAFEBABE

// Size is the fixed byte length of the header.
const Size = 16

// Header is the first 16 bytes of every binary asset file, always
// little-endian on the reference platform.
type Header struct {
	Magic         uint32
	Type          uint32
	Version       uint32
	DataBlockSize uint32
}

// Encode writes h as 16 little-endian bytes.
func (h Header) Encode() []byte {
	buf := make([]byte, Size)
	binary.LittleEndian.PutUint32(buf[0:4], h.Magic)
	binary.LittleEndian.PutUint32(buf[4:8], h.Type)
	binary.LittleEndian.PutUint32(buf[8:12], h.Version)
	binary.LittleEndian.PutUint32(buf[12:16], h.DataBlockSize)
	return buf
}

// Decode reads a Header from the first 16 bytes of buf.
func Decode(buf []byte) (Header, error) {
	if len(buf) < Size {
		return Header{}, fmt.Errorf("binhdr: buffer too short for header: %d bytes, need %d", len(buf), Size)
	}
	return Header{
		Magic:         binary.LittleEndian.Uint32(buf[0:4]),
		Type:          binary.LittleEndian.Uint32(buf[4:8]),
		Version:       binary.LittleEndian.Uint32(buf[8:12]),
		DataBlockSize: binary.LittleEndian.Uint32(buf[12:16]),
	}, nil
}

// Validate checks the magic and type tag, and that the header's
// declared data_block_size plus the header size equals the size of
// the full file buffer (spec.md §3 invariant).
func (h Header) Validate(wantType uint32, fullSize int) error {
	if h.Magic != Magic {
		return fmt.Errorf("binhdr: bad magic 0x%08X, expected 0x%08X", h.Magic, Magic)
	}
	if h.Type != wantType {
		return fmt.Errorf("binhdr: type mismatch: file is type %d, expected %d", h.Type, wantType)
	}
	if int(h.DataBlockSize)+Size != fullSize {
		return fmt.Errorf("binhdr: data_block_size (%d) + header (%d) != file size (%d)", h.DataBlockSize, Size, fullSize)
	}
	return nil
}

// NewWriter returns a bytes.Buffer preloaded with h's encoded bytes,
// ready for a serializer to append its type-specific payload to.
func NewWriter(h Header) *bytes.Buffer {
	b := new(bytes.Buffer)
	b.Write(h.Encode())
	return b
}
