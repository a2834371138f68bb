// Package offsets contains known data locations in the Chrono Trigger ROM.
package offsets

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Entry is a named data location as an unheadered PC file offset.
type Entry struct {
	Name   string
	Offset uint32
}

// known data locations of the US release, LoROM PC addresses without a
// copier header.
var known = map[string]uint32{
	"dialogue_pointers": 0x1EF000,
	"item_data":         0x0C0000,
	"enemy_data":        0x0C5000,
	"tech_data":         0x0C1B68,
	"character_stats":   0x0C2500,
	"shop_data":         0x0C0E00,
	"location_names":    0x06F200,
}

// Sorted returns all known entries sorted by name.
func Sorted() []Entry {
	names := maps.Keys(known)
	slices.Sort(names)

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Name: name, Offset: known[name]})
	}
	return entries
}

// Lookup returns the entry for the given name.
func Lookup(name string) (Entry, bool) {
	offset, ok := known[name]
	if !ok {
		return Entry{}, false
	}
	return Entry{Name: name, Offset: offset}, true
}
