package keymaps

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownKey is returned when a key name is not part of a layout.
	ErrUnknownKey = errors.New("unknown key")
	// ErrInvalidCombo is returned for malformed modifier+key strings.
	ErrInvalidCombo = errors.New("invalid key combination")
)

// Layout maps the names printed on keycaps to physical key codes.
type Layout struct {
	name      string
	keys      map[string]uint16
	modifiers map[uint16]bool
}

// commonKeys are named the same on every layout.
var commonKeys = map[string]uint16{
	"esc":          KeyEsc,
	"escape":       KeyEsc,
	"backspace":    KeyBackspace,
	"tab":          KeyTab,
	"enter":        KeyEnter,
	"space":        KeySpace,
	"caps lock":    KeyCapsLock,
	"shift":        KeyLeftShift,
	"left shift":   KeyLeftShift,
	"right shift":  KeyRightShift,
	"ctrl":         KeyLeftCtrl,
	"left ctrl":    KeyLeftCtrl,
	"right ctrl":   KeyRightCtrl,
	"alt":          KeyLeftAlt,
	"left alt":     KeyLeftAlt,
	"alt gr":       KeyRightAlt,
	"right alt":    KeyRightAlt,
	"windows":      KeyLeftMeta,
	"left windows": KeyLeftMeta,
	"home":         KeyHome,
	"end":          KeyEnd,
	"insert":       KeyInsert,
	"delete":       KeyDelete,
	"page up":      KeyPageUp,
	"page down":    KeyPageDown,
	"up":           KeyUp,
	"down":         KeyDown,
	"left":         KeyLeft,
	"right":        KeyRight,
}

var modifierCodes = map[uint16]bool{
	KeyLeftShift:  true,
	KeyRightShift: true,
	KeyLeftCtrl:   true,
	KeyRightCtrl:  true,
	KeyLeftAlt:    true,
	KeyRightAlt:   true,
	KeyLeftMeta:   true,
}

func newLayout(name string, printable map[string]uint16) *Layout {
	keys := make(map[string]uint16, len(commonKeys)+len(printable))
	for k, v := range commonKeys {
		keys[k] = v
	}
	for k, v := range printable {
		keys[k] = v
	}
	return &Layout{name: name, keys: keys, modifiers: modifierCodes}
}

// BelgianAZERTY is the layout the built-in tables are written for.
var BelgianAZERTY = newLayout("azerty-be", map[string]uint16{
	// Number row, unshifted
	"²":  KeyGrave,
	"&":  Key1,
	"é":  Key2,
	"\"": Key3,
	"'":  Key4,
	"(":  Key5,
	"§":  Key6,
	"è":  Key7,
	"!":  Key8,
	"ç":  Key9,
	"à":  Key0,
	")":  KeyMinus,
	"-":  KeyEqual,

	"a": KeyQ, "z": KeyW, "e": KeyE, "r": KeyR, "t": KeyT,
	"y": KeyY, "u": KeyU, "i": KeyI, "o": KeyO, "p": KeyP,
	"^": KeyLeftBrace, "$": KeyRightBrace,

	"q": KeyA, "s": KeyS, "d": KeyD, "f": KeyF, "g": KeyG,
	"h": KeyH, "j": KeyJ, "k": KeyK, "l": KeyL, "m": KeySemicolon,
	"ù": KeyApostrophe, "µ": KeyBackslash,

	"<": Key102nd, "w": KeyZ, "x": KeyX, "c": KeyC, "v": KeyV,
	"b": KeyB, "n": KeyN, ",": KeyM, ";": KeyComma, ":": KeyDot,
	"=": KeySlash,
})

// Code resolves a single key name.
func (l *Layout) Code(name string) (uint16, error) {
	code, ok := l.keys[normalizeKeyName(name)]
	if !ok {
		return 0, fmt.Errorf("%w %q on layout %s", ErrUnknownKey, name, l.name)
	}
	return code, nil
}

// IsModifier reports whether code is a modifier key.
func (l *Layout) IsModifier(code uint16) bool {
	return l.modifiers[code]
}

// Combo resolves a "modifier+...+key" string into the codes to press, in
// press order. A single key name is a valid combination.
func (l *Layout) Combo(combo string) ([]uint16, error) {
	if strings.TrimSpace(combo) == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidCombo)
	}
	parts := strings.Split(combo, "+")
	codes := make([]uint16, 0, len(parts))
	for i, part := range parts {
		if strings.TrimSpace(part) == "" {
			return nil, fmt.Errorf("%w: %q has an empty part", ErrInvalidCombo, combo)
		}
		code, err := l.Code(part)
		if err != nil {
			return nil, err
		}
		if i < len(parts)-1 && !l.IsModifier(code) {
			return nil, fmt.Errorf("%w: %q is not a modifier in %q", ErrInvalidCombo, part, combo)
		}
		codes = append(codes, code)
	}
	return codes, nil
}

func normalizeKeyName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.Fields(name), " ")
}
