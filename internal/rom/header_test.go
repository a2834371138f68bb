package rom

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestHeaderFields(t *testing.T) {
	data := buildImage(0x8000, LoROMHeaderOffset, 0x1234, 0xEDCB)
	base := LoROMHeaderOffset
	data[base+mapModeOffset] = 0x31
	data[base+romTypeOffset] = 0x02
	data[base+romSizeOffset] = 0x0C
	data[base+sramSizeOffset] = 0x03
	data[base+countryOffset] = 0x01
	data[base+developerOffset] = 0x33
	data[base+versionOffset] = 0x01

	img := New(data)
	assert.Equal(t, LoROM, img.MappingMode())

	h := img.Header()
	assert.Equal(t, LoROMHeaderOffset, h.Offset)
	assert.Equal(t, uint8(0x31), h.MapMode)
	assert.Equal(t, uint8(0x02), h.ROMType)
	assert.Equal(t, uint64(4096), h.ROMSizeKB)
	assert.Equal(t, uint64(8), h.SRAMSizeKB)
	assert.Equal(t, USCanada, h.Country)
	assert.Equal(t, uint8(0x33), h.Developer)
	assert.Equal(t, uint8(0x01), h.Version)
	assert.Equal(t, uint16(0xEDCB), h.ChecksumComplement)
	assert.Equal(t, uint16(0x1234), h.Checksum)
	assert.True(t, h.Valid())
}

func TestHeaderHiROMBase(t *testing.T) {
	data := buildImage(0x10000, HiROMHeaderOffset, 0xA55A, 0x5AA5)
	data[HiROMHeaderOffset+versionOffset] = 3
	data[LoROMHeaderOffset+versionOffset] = 9

	h := New(data).Header()
	assert.Equal(t, HiROMHeaderOffset, h.Offset)
	assert.Equal(t, uint8(3), h.Version)
	assert.Equal(t, uint16(0xA55A), h.Checksum)
	assert.True(t, h.Valid())
}

func TestHeaderValid(t *testing.T) {
	tests := []struct {
		name       string
		checksum   uint16
		complement uint16
		valid      bool
	}{
		{name: "bitwise complement", checksum: 0x1234, complement: 0xEDCB, valid: true},
		{name: "one bit off", checksum: 0x1234, complement: 0xEDCA, valid: false},
		{name: "all zero", checksum: 0, complement: 0, valid: false},
		{name: "zero and ffff", checksum: 0x0000, complement: 0xFFFF, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Header{Checksum: tt.checksum, ChecksumComplement: tt.complement}
			assert.Equal(t, tt.valid, h.Valid())

			img := New(buildImage(0x8000, LoROMHeaderOffset, tt.checksum, tt.complement))
			assert.Equal(t, tt.valid, img.Header().Valid())
		})
	}
}

func TestHeaderUnknownFallsBackToLoROM(t *testing.T) {
	data := make([]byte, 0x10000)
	copy(data[LoROMHeaderOffset+titleOffset:], strings.Repeat("A", titleLength))

	img := New(data)
	assert.Equal(t, Unknown, img.MappingMode())

	h := img.Header()
	assert.Equal(t, LoROMHeaderOffset, h.Offset)
	assert.Equal(t, strings.Repeat("A", titleLength), h.Title)
	assert.False(t, h.Valid())
}

func TestHeaderTitle(t *testing.T) {
	tests := []struct {
		name  string
		title []byte
		want  string
	}{
		{name: "space padded", title: []byte("CHRONO TRIGGER       "), want: "CHRONO TRIGGER"},
		{name: "leading spaces", title: []byte("   CHRONO TRIGGER    "), want: "CHRONO TRIGGER"},
		{name: "high bytes replaced", title: []byte{'C', 'T', 0x80, 0xFF, 'X'}, want: "CT\uFFFD\uFFFDX"},
		{name: "control bytes replaced", title: []byte{'A', 0x01, 'B'}, want: "A\uFFFDB"},
		{name: "empty", title: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeTitle(tt.title))
		})
	}
}

func TestHeaderTruncated(t *testing.T) {
	t.Run("cut inside title", func(t *testing.T) {
		data := make([]byte, LoROMHeaderOffset+titleOffset+3)
		copy(data[LoROMHeaderOffset+titleOffset:], "ABC")

		h := New(data).Header()
		assert.Equal(t, "ABC", h.Title)
		assert.Equal(t, uint8(0), h.Version)
		assert.Equal(t, uint64(1), h.ROMSizeKB)
		assert.Equal(t, uint64(0), h.SRAMSizeKB)
		assert.Equal(t, uint16(0), h.Checksum)
	})

	t.Run("tiny buffer", func(t *testing.T) {
		h := New([]byte{0xFF}).Header()
		assert.Equal(t, "", h.Title)
		assert.Equal(t, Japan, h.Country)
		assert.False(t, h.Valid())
	})

	t.Run("cut inside checksum word", func(t *testing.T) {
		data := make([]byte, LoROMHeaderOffset+checksumOffset+1)
		data[LoROMHeaderOffset+checksumOffset] = 0x34

		h := New(data).Header()
		assert.Equal(t, uint16(0x0034), h.Checksum)
	})
}

func TestCountryString(t *testing.T) {
	assert.Equal(t, "Japan", Country(0).String())
	assert.Equal(t, "US/Canada", Country(1).String())
	assert.Equal(t, "Other", Country(2).String())
	assert.Equal(t, "Other", Country(0xFF).String())
}
