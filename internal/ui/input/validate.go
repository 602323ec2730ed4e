package input

import (
	"fmt"
	"strconv"
	"strings"

	"binminder/internal/domain"
	"binminder/internal/ui/commands"
)

// Validate enforces the guards the controller relies on. Commands built by
// the key handlers already satisfy them; commands built from flags or other
// outside sources must pass through here first.
func Validate(cmd commands.Command) error {
	switch c := cmd.(type) {
	case commands.SelectDate:
		if c.Date.IsZero() {
			return fmt.Errorf("%w: empty date", domain.ErrInvalidDate)
		}
		if _, err := domain.NewDate(c.Date.Year, c.Date.Month, c.Date.Day); err != nil {
			return err
		}
	case commands.SelectBin:
		if !domain.ValidBinIndex(c.Index) {
			return fmt.Errorf("%w: %d (want 0..%d)", domain.ErrBinIndexOutOfRange, c.Index, domain.BinCount-1)
		}
	case nil:
		return fmt.Errorf("nil command")
	}
	return nil
}

// ParseSelectDate turns user text into a SelectDate command
func ParseSelectDate(s string) (commands.SelectDate, error) {
	d, err := domain.ParseDate(s)
	if err != nil {
		return commands.SelectDate{}, err
	}
	return commands.SelectDate{Date: d}, nil
}

// ParseSelectBin turns user text into a SelectBin command
func ParseSelectBin(s string) (commands.SelectBin, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return commands.SelectBin{}, fmt.Errorf("%w: %q is not a number", domain.ErrBinIndexOutOfRange, s)
	}
	cmd := commands.SelectBin{Index: i}
	if err := Validate(cmd); err != nil {
		return commands.SelectBin{}, err
	}
	return cmd, nil
}
