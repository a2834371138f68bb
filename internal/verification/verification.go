// Package verification verifies the checksum stored in the internal ROM header.
package verification

import (
	"errors"
	"fmt"

	"github.com/retroenv/ctromutil/internal/rom"
	"github.com/retroenv/retrogolib/log"
)

var (
	// ErrInvalidComplement is returned when the stored checksum and its
	// complement do not add up.
	ErrInvalidComplement = errors.New("header checksum complement mismatch")
	// ErrChecksumMismatch is returned when the computed checksum differs from
	// the stored one.
	ErrChecksumMismatch = errors.New("computed checksum mismatch")
)

// Result contains the stored and computed checksum values of an image.
type Result struct {
	Stored     uint16
	Complement uint16
	Computed   uint16
	Valid      bool // stored checksum and complement match
	Matches    bool // computed checksum equals the stored one
}

// Checksum compares the computed checksum of the image with the values of
// the internal header.
func Checksum(img *rom.Image) Result {
	header := img.Header()
	computed := img.ComputeChecksum()
	return Result{
		Stored:     header.Checksum,
		Complement: header.ChecksumComplement,
		Computed:   computed,
		Valid:      header.Valid(),
		Matches:    computed == header.Checksum,
	}
}

// VerifyChecksum verifies that the header checksum is consistent and matches
// the checksum computed over the ROM data.
func VerifyChecksum(logger *log.Logger, img *rom.Image) error {
	res := Checksum(img)
	logger.Debug("Checksum",
		log.Hex("stored", res.Stored),
		log.Hex("complement", res.Complement),
		log.Hex("computed", res.Computed))

	if !res.Valid {
		return fmt.Errorf("%w: 0x%04X ^ 0x%04X", ErrInvalidComplement, res.Stored, res.Complement)
	}
	if !res.Matches {
		return fmt.Errorf("%w: stored 0x%04X, computed 0x%04X", ErrChecksumMismatch, res.Stored, res.Computed)
	}
	return nil
}
