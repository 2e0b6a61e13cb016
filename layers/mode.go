// Package layers owns the active keyboard layer and swaps remap tables
// when the activation hotkey is pressed.
package layers

import (
	"fmt"

	"github.com/layerkeys/keymaps"
)

// Mode is the active keyboard layer.
type Mode int

const (
	Normal Mode = iota
	Selection
	// Numeric is only reachable when the numeric cycle is enabled.
	Numeric
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Selection:
		return "SELECTION"
	case Numeric:
		return "NUMERIC"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// TableName returns the name of the remap table installed in m, or "" for
// Normal which installs none.
func (m Mode) TableName() string {
	switch m {
	case Normal:
		return ""
	case Selection:
		return keymaps.SelectionName
	case Numeric:
		return keymaps.NumericName
	}
	panic(fmt.Sprintf("layers: no table for %v", m))
}

// Next returns the mode entered from m on a hotkey press. Without the
// numeric cycle the machine alternates Normal and Selection; with it the
// cycle is Normal -> Numeric -> Selection -> Normal.
func Next(m Mode, numericCycle bool) Mode {
	switch m {
	case Normal:
		if numericCycle {
			return Numeric
		}
		return Selection
	case Numeric:
		return Selection
	case Selection:
		return Normal
	}
	panic(fmt.Sprintf("layers: no transition from %v", m))
}
