package modes

import (
	"binminder/internal/domain"
	"binminder/internal/ui/commands"
	"binminder/internal/ui/input/types"
)

// moveDate returns a SelectDate relative to the current selection.
// Dates come from Date arithmetic, so they are always valid.
func moveDate(ctx types.Context, days, months int) []types.Action {
	d := ctx.CurrentDate()
	if months != 0 {
		d = d.AddMonths(months)
	}
	if days != 0 {
		d = d.AddDays(days)
	}
	return []types.Action{commands.SelectDate{Date: d}}
}

// cycleBin steps the bin selection by delta, wrapping around the catalog.
// With nothing selected, the first step lands on the first category.
func cycleBin(ctx types.Context, delta int) []types.Action {
	i, ok := ctx.CurrentBinIndex()
	if !ok {
		return []types.Action{commands.SelectBin{Index: 0}}
	}
	next := ((i+delta)%domain.BinCount + domain.BinCount) % domain.BinCount
	return []types.Action{commands.SelectBin{Index: next}}
}

// binShortcut maps "1".."3" to a catalog index
func binShortcut(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '0'+domain.BinCount {
		return 0, false
	}
	return int(key[0] - '1'), true
}
