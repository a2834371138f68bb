// Package rom models a SNES ROM image: copier header detection, mapping mode
// inference, internal header extraction, checksums and binary comparison.
package rom

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/binary"
	"encoding/hex"
)

const (
	// CopierHeaderSize is the size of the optional header prepended by
	// backup units such as the Super Wild Card.
	CopierHeaderSize = 512

	// LoROMHeaderOffset is the base of the internal header for LoROM images.
	LoROMHeaderOffset = 0x7FB0
	// HiROMHeaderOffset is the base of the internal header for HiROM images.
	HiROMHeaderOffset = 0xFFB0

	headerProbeSize = 0x30
)

// MappingMode is the memory mapping layout of a cartridge.
type MappingMode int

// Supported mapping modes.
const (
	Unknown MappingMode = iota
	LoROM
	HiROM
)

func (m MappingMode) String() string {
	switch m {
	case LoROM:
		return "LoROM"
	case HiROM:
		return "HiROM"
	default:
		return "Unknown"
	}
}

// HeaderOffset returns the internal header base for the mapping mode.
// Unknown falls back to the LoROM location.
func (m MappingMode) HeaderOffset() int {
	if m == HiROM {
		return HiROMHeaderOffset
	}
	return LoROMHeaderOffset
}

// Image is an immutable SNES ROM image.
type Image struct {
	raw  []byte
	data []byte
	mode MappingMode
}

// Hashes contains content digests of the ROM data.
type Hashes struct {
	MD5  string
	SHA1 string
}

// New returns an image for the given file contents. The buffer must not be
// modified by the caller afterwards.
func New(raw []byte) *Image {
	img := &Image{
		raw:  raw,
		data: raw,
	}
	if hasCopierHeader(len(raw)) {
		img.data = raw[CopierHeaderSize:]
	}
	img.mode = detectMappingMode(img.data)
	return img
}

// hasCopierHeader is a size heuristic, a ROM whose size happens to satisfy
// the modulus is reported as headered.
func hasCopierHeader(size int) bool {
	return size%1024 == CopierHeaderSize
}

// detectMappingMode checks the checksum and complement words at the LoROM
// and HiROM header locations. LoROM wins if both match.
func detectMappingMode(data []byte) MappingMode {
	if checksumPairMatches(data, LoROMHeaderOffset) {
		return LoROM
	}
	if checksumPairMatches(data, HiROMHeaderOffset) {
		return HiROM
	}
	return Unknown
}

func checksumPairMatches(data []byte, base int) bool {
	if len(data) <= base+headerProbeSize {
		return false
	}
	checksum := binary.LittleEndian.Uint16(data[base+0x1C:])
	complement := binary.LittleEndian.Uint16(data[base+0x1E:])
	return checksum^complement == 0xFFFF
}

// Raw returns the file contents including a copier header.
func (img *Image) Raw() []byte {
	return img.raw
}

// Data returns the ROM payload without the copier header.
func (img *Image) Data() []byte {
	return img.data
}

// FileSize returns the size of the file contents.
func (img *Image) FileSize() int {
	return len(img.raw)
}

// Size returns the size of the ROM payload.
func (img *Image) Size() int {
	return len(img.data)
}

// HasCopierHeader returns whether a 512 byte copier header was detected.
func (img *Image) HasCopierHeader() bool {
	return len(img.raw) != len(img.data)
}

// MappingMode returns the detected mapping mode.
func (img *Image) MappingMode() MappingMode {
	return img.mode
}

// ComputeChecksum returns the 16 bit sum of all ROM payload bytes. This is
// independent of the checksum stored in the internal header.
func (img *Image) ComputeChecksum() uint16 {
	var sum uint16
	for _, b := range img.data {
		sum += uint16(b)
	}
	return sum
}

// Hashes returns the MD5 and SHA1 digests of the ROM payload.
func (img *Image) Hashes() Hashes {
	md5Sum := md5.Sum(img.data)
	sha1Sum := sha1.Sum(img.data)
	return Hashes{
		MD5:  hex.EncodeToString(md5Sum[:]),
		SHA1: hex.EncodeToString(sha1Sum[:]),
	}
}

// ReadBytes returns up to length bytes starting at offset. The range is
// clamped to the payload, an empty slice is returned if nothing is left.
func (img *Image) ReadBytes(offset, length int) []byte {
	size := len(img.data)
	if offset < 0 || length <= 0 || offset >= size {
		return []byte{}
	}
	end := size
	if length < size-offset {
		end = offset + length
	}
	return img.data[offset:end]
}
