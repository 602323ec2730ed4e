package input

import (
	"binminder/internal/domain"
	"binminder/internal/ui/input/types"
	"binminder/internal/ui/state"
)

// SnapshotContext implements the Context interface over a controller snapshot
type SnapshotContext struct {
	Snap  state.Snapshot
	Clock func() domain.Date // defaults to domain.Today
}

var _ types.Context = (*SnapshotContext)(nil)

// NewSnapshotContext wraps snap with the real clock
func NewSnapshotContext(snap state.Snapshot) *SnapshotContext {
	return &SnapshotContext{Snap: snap, Clock: domain.Today}
}

// Mode returns the controller's mode
func (c *SnapshotContext) Mode() types.Mode {
	return c.Snap.Mode
}

// CurrentDate returns the selected date
func (c *SnapshotContext) CurrentDate() domain.Date {
	return c.Snap.Date
}

// CurrentBinIndex returns the selected bin, if any
func (c *SnapshotContext) CurrentBinIndex() (int, bool) {
	return c.Snap.SelectedBin()
}

// Today returns the current local date
func (c *SnapshotContext) Today() domain.Date {
	if c.Clock == nil {
		return domain.Today()
	}
	return c.Clock()
}
