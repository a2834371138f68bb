// Package report renders the command output for ROM images.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/retroenv/ctromutil/internal/offsets"
	"github.com/retroenv/ctromutil/internal/rom"
	"github.com/retroenv/ctromutil/internal/verification"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner logs the application version information.
func PrintBanner(logger *log.Logger, version, commit, date string) {
	logger.Debug("ctromutil", log.String("version", buildinfo.Version(version, commit, date)))
}

// Info prints the file properties, internal header and content hashes.
func Info(w io.Writer, name string, img *rom.Image) {
	fmt.Fprintf(w, "ROM File: %s\n", name)
	fmt.Fprintf(w, "File Size: %s\n", formatSize(img.FileSize()))
	fmt.Fprintf(w, "Has Copier Header: %t\n", img.HasCopierHeader())
	fmt.Fprintf(w, "ROM Data Size: %s\n", formatSize(img.Size()))
	fmt.Fprintf(w, "Mapping Mode: %s\n", img.MappingMode())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Internal Header ---")
	writeHeader(w, img.Header())
	fmt.Fprintln(w)

	hashes := img.Hashes()
	fmt.Fprintln(w, "--- Hashes ---")
	fmt.Fprintf(w, "MD5:  %s\n", hashes.MD5)
	fmt.Fprintf(w, "SHA1: %s\n", hashes.SHA1)
}

// Header prints the internal header including the raw type bytes.
func Header(w io.Writer, img *rom.Image) {
	header := img.Header()
	fmt.Fprintf(w, "Mapping Mode: %s\n", img.MappingMode())
	fmt.Fprintf(w, "Header Offset: 0x%06X\n", header.Offset)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Internal Header ---")
	writeHeader(w, header)
	fmt.Fprintf(w, "Map Mode: 0x%02X\n", header.MapMode)
	fmt.Fprintf(w, "ROM Type: 0x%02X\n", header.ROMType)
	fmt.Fprintf(w, "Developer: 0x%02X\n", header.Developer)
}

// Checksum prints the stored and computed checksum values.
func Checksum(w io.Writer, res verification.Result) {
	fmt.Fprintf(w, "Checksum: 0x%04X\n", res.Stored)
	fmt.Fprintf(w, "Complement: 0x%04X\n", res.Complement)
	fmt.Fprintf(w, "Valid: %t\n", res.Valid)
	fmt.Fprintf(w, "Computed: 0x%04X\n", res.Computed)
	fmt.Fprintf(w, "Matches: %t\n", res.Matches)
}

// HexDump prints the hex dump of the given range.
func HexDump(w io.Writer, img *rom.Image, offset, length int) {
	fmt.Fprintln(w, img.HexDump(offset, length))
}

// Compare prints up to limit differences followed by the number of entries
// that were left out.
func Compare(w io.Writer, diffs []rom.Difference, limit int) {
	if len(diffs) == 0 {
		fmt.Fprintln(w, "ROMs are identical.")
		return
	}

	fmt.Fprintf(w, "Found %d difference(s):\n", len(diffs))
	shown := diffs
	if len(shown) > limit {
		shown = shown[:limit]
	}
	for _, d := range shown {
		fmt.Fprintf(w, "  %s\n", d)
	}

	if len(diffs) > limit {
		fmt.Fprintf(w, "  ... and %d more differences\n", len(diffs)-limit)
	}
}

// Offsets prints the table of known data offsets.
func Offsets(w io.Writer, entries []offsets.Entry) {
	fmt.Fprintln(w, "Known Chrono Trigger Data Offsets (PC addresses, unheadered):")
	fmt.Fprintln(w)
	for _, e := range entries {
		fmt.Fprintf(w, "  %-25s 0x%06X\n", e.Name, e.Offset)
	}
}

func writeHeader(w io.Writer, h rom.Header) {
	fmt.Fprintf(w, "Title: %s\n", h.Title)
	fmt.Fprintf(w, "ROM Size: %d KB\n", h.ROMSizeKB)
	fmt.Fprintf(w, "SRAM Size: %d KB\n", h.SRAMSizeKB)
	fmt.Fprintf(w, "Country: %d (%s)\n", h.Country, h.Country)
	fmt.Fprintf(w, "Version: %d\n", h.Version)
	fmt.Fprintf(w, "Checksum: 0x%04X\n", h.Checksum)
	fmt.Fprintf(w, "Complement: 0x%04X\n", h.ChecksumComplement)
	fmt.Fprintf(w, "Valid: %t\n", h.Valid())
}

// formatSize returns the size in bytes with thousands separators and the
// rounded size in kilobytes.
func formatSize(size int) string {
	return fmt.Sprintf("%s bytes (%.0f KB)", groupDigits(size), float64(size)/1024)
}

func groupDigits(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}

	var sb strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
