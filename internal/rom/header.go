package rom

import (
	"strings"
	"unicode/utf8"
)

// Field offsets relative to the internal header base.
const (
	titleOffset              = 0x10
	titleLength              = 21
	mapModeOffset            = 0x15
	romTypeOffset            = 0x16
	romSizeOffset            = 0x17
	sramSizeOffset           = 0x18
	countryOffset            = 0x19
	developerOffset          = 0x1A
	versionOffset            = 0x1B
	checksumComplementOffset = 0x1C
	checksumOffset           = 0x1E
)

// Country is the destination code of the cartridge.
type Country uint8

// Known destination codes.
const (
	Japan    Country = 0
	USCanada Country = 1
)

func (c Country) String() string {
	switch c {
	case Japan:
		return "Japan"
	case USCanada:
		return "US/Canada"
	default:
		return "Other"
	}
}

// Header contains the fields of the SNES internal cartridge header.
type Header struct {
	Offset int // base offset the fields were read from

	Title              string
	MapMode            uint8
	ROMType            uint8
	ROMSizeKB          uint64
	SRAMSizeKB         uint64
	Country            Country
	Developer          uint8
	Version            uint8
	ChecksumComplement uint16
	Checksum           uint16
}

// Valid returns whether the checksum and its complement match.
func (h Header) Valid() bool {
	return h.Checksum^h.ChecksumComplement == 0xFFFF
}

// Header reads the internal header at the location implied by the mapping
// mode. Bytes beyond the end of the image read as zero.
func (img *Image) Header() Header {
	base := img.mode.HeaderOffset()
	r := headerReader{data: img.data, base: base}

	h := Header{
		Offset:             base,
		Title:              decodeTitle(img.ReadBytes(base+titleOffset, titleLength)),
		MapMode:            r.u8(mapModeOffset),
		ROMType:            r.u8(romTypeOffset),
		ROMSizeKB:          1 << r.u8(romSizeOffset),
		Country:            Country(r.u8(countryOffset)),
		Developer:          r.u8(developerOffset),
		Version:            r.u8(versionOffset),
		ChecksumComplement: r.u16(checksumComplementOffset),
		Checksum:           r.u16(checksumOffset),
	}
	if sram := r.u8(sramSizeOffset); sram != 0 {
		h.SRAMSizeKB = 1 << sram
	}
	return h
}

type headerReader struct {
	data []byte
	base int
}

func (r headerReader) u8(offset int) uint8 {
	i := r.base + offset
	if i >= len(r.data) {
		return 0
	}
	return r.data[i]
}

func (r headerReader) u16(offset int) uint16 {
	return uint16(r.u8(offset)) | uint16(r.u8(offset+1))<<8
}

// decodeTitle converts the title bytes to a string, replacing every byte
// that is not printable ASCII.
func decodeTitle(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		if c < 0x20 || c > 0x7E {
			sb.WriteRune(utf8.RuneError)
			continue
		}
		sb.WriteByte(c)
	}
	return strings.TrimSpace(sb.String())
}
