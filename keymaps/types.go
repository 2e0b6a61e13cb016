package keymaps

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateSource is returned when a table maps the same source key twice.
	ErrDuplicateSource = errors.New("duplicate source key")
	// ErrInvalidCode is returned for raw key codes the kernel would reject.
	ErrInvalidCode = errors.New("invalid key code")
)

// Target is what a remapped key produces: either a modifier+key
// combination resolved through a Layout, or a raw key code.
type Target struct {
	combo string
	code  uint16
}

// Combo returns a Target producing the given combination, e.g. "shift+à".
func Combo(combo string) Target {
	return Target{combo: combo}
}

// Code returns a Target producing a raw key code, e.g. KeyHome.
func Code(code uint16) Target {
	return Target{code: code}
}

// IsCode reports whether t is a raw key code.
func (t Target) IsCode() bool {
	return t.combo == ""
}

// Keys resolves t into the codes to press, in press order.
func (t Target) Keys(l *Layout) ([]uint16, error) {
	if t.IsCode() {
		if t.code == 0 || t.code > KeyMax {
			return nil, fmt.Errorf("%w: %d", ErrInvalidCode, t.code)
		}
		return []uint16{t.code}, nil
	}
	return l.Combo(t.combo)
}

func (t Target) String() string {
	if t.IsCode() {
		return CodeName(t.code)
	}
	return t.combo
}

// Entry is one source key to target substitution.
type Entry struct {
	Source string
	Target Target
}

// Table is an ordered, validated set of entries for one layer.
type Table struct {
	name    string
	layout  *Layout
	entries []Entry
}

// NewTable validates entries against layout. Every source and target must
// resolve and no source may appear twice, compared by physical key.
func NewTable(name string, layout *Layout, entries ...Entry) (*Table, error) {
	seen := make(map[uint16]string, len(entries))
	for _, e := range entries {
		src, err := layout.Code(e.Source)
		if err != nil {
			return nil, fmt.Errorf("table %s: source: %w", name, err)
		}
		if prev, ok := seen[src]; ok {
			return nil, fmt.Errorf("table %s: %w: %q and %q", name, ErrDuplicateSource, prev, e.Source)
		}
		seen[src] = e.Source
		if _, err := e.Target.Keys(layout); err != nil {
			return nil, fmt.Errorf("table %s: target of %q: %w", name, e.Source, err)
		}
	}
	return &Table{
		name:    name,
		layout:  layout,
		entries: append([]Entry(nil), entries...),
	}, nil
}

func mustTable(name string, layout *Layout, entries ...Entry) *Table {
	t, err := NewTable(name, layout, entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the layer name the table belongs to.
func (t *Table) Name() string { return t.name }

// Layout returns the layout the table's key names are written for.
func (t *Table) Layout() *Layout { return t.layout }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of the entries in definition order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}
