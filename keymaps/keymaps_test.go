package keymaps

import (
	"errors"
	"slices"
	"testing"
)

func TestSelectionTableContents(t *testing.T) {
	want := map[string]uint16{
		"!": KeyHome,
		"i": KeyEnd,
		"u": KeyDelete,
		"ç": KeyPageUp,
		"o": KeyPageDown,
		";": KeyDown,
		"k": KeyUp,
		"j": KeyLeft,
		"l": KeyRight,
	}
	if Selection.Len() != len(want) {
		t.Fatalf("Selection has %d entries, want %d", Selection.Len(), len(want))
	}
	for _, e := range Selection.Entries() {
		keys, err := e.Target.Keys(Selection.Layout())
		if err != nil {
			t.Fatalf("resolve %q: %v", e.Source, err)
		}
		if len(keys) != 1 || keys[0] != want[e.Source] {
			t.Errorf("%q -> %v, want [%d]", e.Source, keys, want[e.Source])
		}
	}
}

func TestNumericTableProducesDigits(t *testing.T) {
	// Shift plus the number row key of the digit.
	digitRow := []uint16{Key0, Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9}
	sources := []string{"space", ",", ";", ":", "j", "k", "l", "u", "i", "o"}

	entries := Numeric.Entries()
	if len(entries) != len(sources) {
		t.Fatalf("Numeric has %d entries, want %d", len(entries), len(sources))
	}
	for digit, src := range sources {
		idx := slices.IndexFunc(entries, func(e Entry) bool { return e.Source == src })
		if idx < 0 {
			t.Fatalf("no entry for %q", src)
		}
		keys, err := entries[idx].Target.Keys(BelgianAZERTY)
		if err != nil {
			t.Fatalf("resolve %q: %v", src, err)
		}
		want := []uint16{KeyLeftShift, digitRow[digit]}
		if !slices.Equal(keys, want) {
			t.Errorf("%q -> %v, want %v (digit %d)", src, keys, want, digit)
		}
	}
}

func TestLayoutCombo(t *testing.T) {
	tests := []struct {
		name    string
		combo   string
		want    []uint16
		wantErr error
	}{
		{name: "hotkey", combo: "alt gr", want: []uint16{KeyRightAlt}},
		{name: "spacing and case", combo: "  Alt   Gr ", want: []uint16{KeyRightAlt}},
		{name: "shifted", combo: "shift+à", want: []uint16{KeyLeftShift, Key0}},
		{name: "two modifiers", combo: "ctrl+shift+j", want: []uint16{KeyLeftCtrl, KeyLeftShift, KeyJ}},
		{name: "empty", combo: "", wantErr: ErrInvalidCombo},
		{name: "empty part", combo: "shift+", wantErr: ErrInvalidCombo},
		{name: "non modifier first", combo: "j+k", wantErr: ErrInvalidCombo},
		{name: "unknown", combo: "shift+#", wantErr: ErrUnknownKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BelgianAZERTY.Combo(tt.combo)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Combo(%q) error = %v, want %v", tt.combo, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Combo(%q): %v", tt.combo, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Combo(%q) = %v, want %v", tt.combo, got, tt.want)
			}
		})
	}
}

func TestNewTableRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{
			name:    "duplicate source",
			entries: []Entry{{Source: "j", Target: Code(KeyLeft)}, {Source: "J", Target: Code(KeyRight)}},
			wantErr: ErrDuplicateSource,
		},
		{
			name:    "unknown source",
			entries: []Entry{{Source: "#", Target: Code(KeyLeft)}},
			wantErr: ErrUnknownKey,
		},
		{
			name:    "zero code",
			entries: []Entry{{Source: "j", Target: Code(0)}},
			wantErr: ErrInvalidCode,
		},
		{
			name:    "code out of range",
			entries: []Entry{{Source: "j", Target: Code(KeyMax + 1)}},
			wantErr: ErrInvalidCode,
		},
		{
			name:    "code the virtual keyboard rejects",
			entries: []Entry{{Source: "j", Target: Code(249)}},
			wantErr: ErrInvalidCode,
		},
		{
			name:    "code above the kernel range",
			entries: []Entry{{Source: "j", Target: Code(0x2ff)}},
			wantErr: ErrInvalidCode,
		},
		{
			name:    "malformed combo",
			entries: []Entry{{Source: "j", Target: Combo("shift++")}},
			wantErr: ErrInvalidCombo,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable("test", BelgianAZERTY, tt.entries...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewTable error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewTableAcceptsHighestEmittableCode(t *testing.T) {
	if _, err := NewTable("test", BelgianAZERTY, Entry{Source: "j", Target: Code(KeyMax)}); err != nil {
		t.Fatalf("NewTable with Code(%d): %v", KeyMax, err)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	entries := Selection.Entries()
	entries[0] = Entry{Source: "z", Target: Code(KeyEsc)}
	if Selection.Entries()[0].Source != "!" {
		t.Fatal("Entries exposed the table's backing array")
	}
}

func TestDefaultTableProvider(t *testing.T) {
	p := CreateDefaultTableProvider()
	for _, name := range []string{SelectionName, NumericName} {
		table, ok := p.Table(name)
		if !ok {
			t.Fatalf("no table registered for %q", name)
		}
		if table.Name() != name {
			t.Errorf("table %q registered under %q", table.Name(), name)
		}
	}
	if _, ok := p.Table("normal"); ok {
		t.Error("normal layer must not have a table")
	}
}

func TestTargetString(t *testing.T) {
	if got := Code(KeyPageUp).String(); got != "PageUp" {
		t.Errorf("Code(KeyPageUp).String() = %q", got)
	}
	if got := Code(KeyA).String(); got != "code(30)" {
		t.Errorf("Code(KeyA).String() = %q", got)
	}
	if got := Combo("shift+à").String(); got != "shift+à" {
		t.Errorf("Combo.String() = %q", got)
	}
}
