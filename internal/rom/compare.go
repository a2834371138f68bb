package rom

import "fmt"

// DifferenceKind distinguishes the entries returned by Compare.
type DifferenceKind int

// Difference kinds.
const (
	ByteMismatch DifferenceKind = iota
	SizeMismatch
)

// Difference is a single entry of a ROM comparison.
type Difference struct {
	Kind   DifferenceKind
	Offset int

	Original byte // byte mismatch only
	Modified byte // byte mismatch only

	SizeA int // size mismatch only
	SizeB int // size mismatch only
}

func (d Difference) String() string {
	if d.Kind == SizeMismatch {
		return fmt.Sprintf("Size difference: %d vs %d bytes", d.SizeA, d.SizeB)
	}
	return fmt.Sprintf("0x%06X: %02X -> %02X", d.Offset, d.Original, d.Modified)
}

// Compare returns the byte differences of both payloads in increasing offset
// order over their common length, followed by a size mismatch entry if the
// payload sizes differ.
func (img *Image) Compare(other *Image) []Difference {
	a, b := img.data, other.data
	common := len(a)
	if len(b) < common {
		common = len(b)
	}

	var diffs []Difference
	for i := 0; i < common; i++ {
		if a[i] == b[i] {
			continue
		}
		diffs = append(diffs, Difference{
			Kind:     ByteMismatch,
			Offset:   i,
			Original: a[i],
			Modified: b[i],
		})
	}

	if len(a) != len(b) {
		diffs = append(diffs, Difference{
			Kind:   SizeMismatch,
			Offset: common,
			SizeA:  len(a),
			SizeB:  len(b),
		})
	}
	return diffs
}
