package domain

import (
	"errors"
	"fmt"
)

// BinCount is the fixed number of collection-bin categories
const BinCount = 3

// ErrBinIndexOutOfRange is returned for a bin index outside [0, BinCount)
var ErrBinIndexOutOfRange = errors.New("bin index out of range")

// BinCategory is one waste-collection bin type
type BinCategory struct {
	Index        int    `json:"index" toml:"-"`
	DisplayLabel string `json:"label" toml:"label"`
	IconKey      string `json:"icon_key" toml:"icon_key"`
}

// BinCatalog is the immutable, ordered set of bin categories.
// It is a value type: copies cannot affect each other.
type BinCatalog struct {
	entries [BinCount]BinCategory
}

var defaultBins = [BinCount]BinCategory{
	{Index: 0, DisplayLabel: "Grijze bak", IconKey: "grijs.png"},
	{Index: 1, DisplayLabel: "Groene bak", IconKey: "groen.png"},
	{Index: 2, DisplayLabel: "Sorti bak", IconKey: "sorti.png"},
}

// DefaultBinCatalog returns the built-in grey/green/sorted catalog
func DefaultBinCatalog() BinCatalog {
	return BinCatalog{entries: defaultBins}
}

// NewBinCatalog builds a catalog from exactly BinCount entries.
// Indices are assigned from the slice order; any Index set by the caller is ignored.
func NewBinCatalog(bins []BinCategory) (BinCatalog, error) {
	if len(bins) != BinCount {
		return BinCatalog{}, fmt.Errorf("catalog needs %d bins, got %d", BinCount, len(bins))
	}
	var c BinCatalog
	for i, b := range bins {
		if b.DisplayLabel == "" || b.IconKey == "" {
			return BinCatalog{}, fmt.Errorf("bin %d: label and icon key are required", i)
		}
		c.entries[i] = BinCategory{Index: i, DisplayLabel: b.DisplayLabel, IconKey: b.IconKey}
	}
	return c, nil
}

// ValidBinIndex reports whether i addresses a catalog entry
func ValidBinIndex(i int) bool {
	return i >= 0 && i < BinCount
}

// Lookup returns the category at index. It is only defined for 0..BinCount-1;
// callers holding an untrusted index must go through a fallback instead.
func (c BinCatalog) Lookup(index int) (BinCategory, bool) {
	if !ValidBinIndex(index) {
		return BinCategory{}, false
	}
	return c.entries[index], true
}

// Default returns the first category, used whenever a selection can't be resolved
func (c BinCatalog) Default() BinCategory {
	return c.entries[0]
}

// All returns a copy of the categories in order
func (c BinCatalog) All() []BinCategory {
	out := make([]BinCategory, BinCount)
	copy(out, c.entries[:])
	return out
}

// Labels returns the display labels in order, as shown in the dropdown
func (c BinCatalog) Labels() []string {
	labels := make([]string, BinCount)
	for i, b := range c.entries {
		labels[i] = b.DisplayLabel
	}
	return labels
}

// Len returns BinCount
func (c BinCatalog) Len() int {
	return BinCount
}
