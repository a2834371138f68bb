package rom

import (
	"fmt"
	"strings"
)

const bytesPerRow = 16

// HexDump renders the clamped range as rows of 16 bytes, each row showing
// the absolute offset, the hex bytes and their ASCII representation.
func (img *Image) HexDump(offset, length int) string {
	data := img.ReadBytes(offset, length)

	rows := make([]string, 0, (len(data)+bytesPerRow-1)/bytesPerRow)
	for i := 0; i < len(data); i += bytesPerRow {
		end := i + bytesPerRow
		if end > len(data) {
			end = len(data)
		}
		rows = append(rows, dumpRow(offset+i, data[i:end]))
	}
	return strings.Join(rows, "\n")
}

func dumpRow(offset int, chunk []byte) string {
	hexPart := make([]string, len(chunk))
	ascii := make([]byte, len(chunk))
	for i, b := range chunk {
		hexPart[i] = fmt.Sprintf("%02X", b)
		if b >= 0x20 && b < 0x7F {
			ascii[i] = b
		} else {
			ascii[i] = '.'
		}
	}
	return fmt.Sprintf("  %06X: %-48s %s", offset, strings.Join(hexPart, " "), ascii)
}
