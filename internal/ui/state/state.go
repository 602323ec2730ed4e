package state

import (
	"binminder/internal/domain"
)

// SelectionState holds the chosen calendar date and the chosen bin index.
// It is a value: the With* methods return modified copies, so only the
// holder of a SelectionState can change what it sees.
type SelectionState struct {
	selectedDate domain.Date
	binIndex     int
	hasBin       bool
}

// NewSelectionState starts on date with the first bin selected
func NewSelectionState(date domain.Date) SelectionState {
	return SelectionState{
		selectedDate: date,
		binIndex:     0,
		hasBin:       true,
	}
}

// CurrentDate returns the selected date
func (s SelectionState) CurrentDate() domain.Date {
	return s.selectedDate
}

// CurrentBinIndex returns the selected bin index, if any
func (s SelectionState) CurrentBinIndex() (int, bool) {
	return s.binIndex, s.hasBin
}

// WithDate returns a copy with the date replaced
func (s SelectionState) WithDate(d domain.Date) SelectionState {
	s.selectedDate = d
	return s
}

// WithBin returns a copy with the bin index set
func (s SelectionState) WithBin(index int) SelectionState {
	s.binIndex = index
	s.hasBin = true
	return s
}

// WithoutBin returns a copy with no bin selected
func (s SelectionState) WithoutBin() SelectionState {
	s.binIndex = 0
	s.hasBin = false
	return s
}

// ResolvedBinCategory resolves the selection against catalog.
// An unset or out-of-range index resolves to the first category.
func (s SelectionState) ResolvedBinCategory(catalog domain.BinCatalog) domain.BinCategory {
	if !s.hasBin {
		return catalog.Default()
	}
	if b, ok := catalog.Lookup(s.binIndex); ok {
		return b
	}
	return catalog.Default()
}

// AppState is everything the interaction controller owns
type AppState struct {
	Mode      domain.Mode
	Selection SelectionState
}

// NewAppState creates the start-up state: browsing, date today, first bin
func NewAppState(today domain.Date) AppState {
	return AppState{
		Mode:      domain.ModeBrowsing,
		Selection: NewSelectionState(today),
	}
}

// Snapshot is the read-only view of AppState handed to the rendering boundary
type Snapshot struct {
	Mode        domain.Mode        `json:"mode"`
	Date        domain.Date        `json:"date"`
	BinIndex    *int               `json:"bin_index"`
	BinCategory domain.BinCategory `json:"bin_category"`
}

// Snapshot resolves the state against catalog into an immutable copy
func (s AppState) Snapshot(catalog domain.BinCatalog) Snapshot {
	snap := Snapshot{
		Mode:        s.Mode,
		Date:        s.Selection.CurrentDate(),
		BinCategory: s.Selection.ResolvedBinCategory(catalog),
	}
	if i, ok := s.Selection.CurrentBinIndex(); ok {
		snap.BinIndex = &i
	}
	return snap
}

// SelectedBin returns the raw bin index carried by the snapshot
func (s Snapshot) SelectedBin() (int, bool) {
	if s.BinIndex == nil {
		return 0, false
	}
	return *s.BinIndex, true
}
