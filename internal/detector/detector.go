// Package detector checks that a ROM file name matches its contents.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/ctromutil/internal/rom"
	"github.com/retroenv/retrogolib/log"
)

// Format is the layout implied by a ROM file extension.
type Format int

// Known formats.
const (
	Unknown    Format = iota
	Headered          // copier dumps such as .smc, .swc and .fig
	Headerless        // plain cartridge dumps (.sfc)
)

func (f Format) String() string {
	switch f {
	case Headered:
		return "headered"
	case Headerless:
		return "headerless"
	default:
		return "unknown"
	}
}

// Detector reports file names that do not fit the detected copier header.
type Detector struct {
	logger *log.Logger
}

// New creates a new detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Check compares the format implied by the file extension with the copier
// header detection of the image and logs a warning on a mismatch.
func (d *Detector) Check(path string, img *rom.Image) Format {
	format := FormatFromFile(path)

	switch {
	case format == Unknown:
		d.logger.Debug("Unrecognized ROM file extension",
			log.String("file", path))

	case format == Headerless && img.HasCopierHeader():
		d.logger.Warn("File extension suggests a headerless ROM but a copier header was detected",
			log.String("file", path),
			log.Int("size", img.FileSize()))

	case format == Headered && !img.HasCopierHeader():
		d.logger.Warn("File extension suggests a copier header but none was detected",
			log.String("file", path),
			log.Int("size", img.FileSize()))
	}

	d.logger.Debug("Detected ROM layout",
		log.String("file", path),
		log.Stringer("format", format),
		log.Stringer("mapping", img.MappingMode()))
	return format
}

// FormatFromFile determines the expected layout based on the file extension.
func FormatFromFile(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".smc", ".swc", ".fig":
		return Headered
	case ".sfc":
		return Headerless
	default:
		return Unknown
	}
}
