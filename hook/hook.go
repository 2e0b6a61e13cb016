// Package hook intercepts physical key events with evdev and re-emits them,
// remapped or not, on a uinput virtual keyboard.
package hook

import (
	"fmt"
	"log"
	"slices"
	"sync"

	evdev "github.com/gvalkov/golang-evdev"
	"github.com/layerkeys/keymaps"
)

// Constants for event return values
const (
	MuteEvent     = 0
	PassThruEvent = 1
	ChangedEvent  = 2
)

// Event type and value constants from linux/input-event-codes.h
const (
	EvSyn = 0x00
	EvKey = 0x01

	keyRelease = 0
	keyPress   = 1
	keyRepeat  = 2
)

// Emitter writes key events to the virtual keyboard. uinput.Keyboard
// satisfies it.
type Emitter interface {
	KeyDown(key int) error
	KeyUp(key int) error
}

type hotkey struct {
	combo string
	keys  []uint16
	fn    func()
}

// Hook is the global key interception layer. Events are handled one at a
// time, and hotkey callbacks run on the goroutine that handles the event.
type Hook struct {
	layout *keymaps.Layout
	out    Emitter
	logger *log.Logger
	debug  bool

	mu      sync.Mutex
	hotkeys []hotkey
	remaps  map[uint16][]uint16
	// pressed holds what was emitted for each physical key still down, so a
	// release after a table change lets go of the right keys.
	pressed map[uint16][]uint16
	held    map[uint16]bool
}

// New returns a Hook resolving key names with layout and writing to out.
func New(layout *keymaps.Layout, out Emitter, logger *log.Logger, debug bool) *Hook {
	if logger == nil {
		logger = log.Default()
	}
	return &Hook{
		layout:  layout,
		out:     out,
		logger:  logger,
		debug:   debug,
		remaps:  map[uint16][]uint16{},
		pressed: map[uint16][]uint16{},
		held:    map[uint16]bool{},
	}
}

func (h *Hook) dprint(format string, v ...interface{}) {
	if h.debug {
		h.logger.Printf(format, v...)
	}
}

// RegisterHotkey calls fn whenever combo is pressed. Registering the same
// combination again replaces its callback.
func (h *Hook) RegisterHotkey(combo string, fn func()) error {
	keys, err := h.layout.Combo(combo)
	if err != nil {
		return fmt.Errorf("hotkey: %w", err)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range h.hotkeys {
		if slices.Equal(h.hotkeys[i].keys, keys) {
			h.hotkeys[i].fn = fn
			return nil
		}
	}
	h.hotkeys = append(h.hotkeys, hotkey{combo: combo, keys: keys, fn: fn})
	return nil
}

// UnregisterAll drops every hotkey and remap. Keys physically held keep
// their pressed state until released.
func (h *Hook) UnregisterAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hotkeys = nil
	h.remaps = map[uint16][]uint16{}
}

// Remap makes the physical key named source produce target.
func (h *Hook) Remap(source string, target keymaps.Target) error {
	src, err := h.layout.Code(source)
	if err != nil {
		return fmt.Errorf("remap source: %w", err)
	}
	keys, err := target.Keys(h.layout)
	if err != nil {
		return fmt.Errorf("remap %q: %w", source, err)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remaps[src] = keys
	return nil
}

// Remaps returns the number of installed remaps.
func (h *Hook) Remaps() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.remaps)
}

// HandleEvent forwards one input event to the virtual keyboard and fires
// any hotkey it completes. It returns MuteEvent, PassThruEvent or
// ChangedEvent.
func (h *Hook) HandleEvent(event *evdev.InputEvent) (int, error) {
	if event.Type != EvKey {
		// uinput writes its own sync reports.
		return MuteEvent, nil
	}
	h.dprint("Event: code=%d value=%d", event.Code, event.Value)

	h.mu.Lock()
	result, fire, err := h.handleKey(event.Code, event.Value)
	h.mu.Unlock()
	if err != nil {
		return result, err
	}

	if fire != nil {
		fire()
	}
	return result, nil
}

func (h *Hook) handleKey(code uint16, value int32) (int, func(), error) {
	switch value {
	case keyPress:
		h.held[code] = true
		keys, remapped := h.remaps[code]
		if !remapped {
			keys = []uint16{code}
		}
		h.pressed[code] = keys
		for _, k := range keys {
			if err := h.out.KeyDown(int(k)); err != nil {
				return MuteEvent, nil, fmt.Errorf("key down %d: %w", k, err)
			}
		}
		return resultFor(remapped), h.matchHotkey(code), nil

	case keyRelease:
		delete(h.held, code)
		keys, ok := h.pressed[code]
		if !ok {
			keys = []uint16{code}
		}
		delete(h.pressed, code)
		for i := len(keys) - 1; i >= 0; i-- {
			// A modifier the user still holds stays down.
			if i < len(keys)-1 && h.held[keys[i]] {
				continue
			}
			if err := h.out.KeyUp(int(keys[i])); err != nil {
				return MuteEvent, nil, fmt.Errorf("key up %d: %w", keys[i], err)
			}
		}
		return resultFor(ok && !slices.Equal(keys, []uint16{code})), nil, nil

	case keyRepeat:
		keys, ok := h.pressed[code]
		if !ok {
			return MuteEvent, nil, nil
		}
		last := int(keys[len(keys)-1])
		if err := h.out.KeyUp(last); err != nil {
			return MuteEvent, nil, fmt.Errorf("key up %d: %w", last, err)
		}
		if err := h.out.KeyDown(last); err != nil {
			return MuteEvent, nil, fmt.Errorf("key down %d: %w", last, err)
		}
		return resultFor(!slices.Equal(keys, []uint16{code})), nil, nil
	}
	return MuteEvent, nil, nil
}

// matchHotkey returns the callback of the hotkey whose last key is code and
// whose other keys are all held.
func (h *Hook) matchHotkey(code uint16) func() {
	for _, hk := range h.hotkeys {
		last := len(hk.keys) - 1
		if hk.keys[last] != code {
			continue
		}
		match := true
		for _, k := range hk.keys[:last] {
			if !h.held[k] {
				match = false
				break
			}
		}
		if match {
			h.dprint("Hotkey %q pressed", hk.combo)
			return hk.fn
		}
	}
	return nil
}

func resultFor(changed bool) int {
	if changed {
		return ChangedEvent
	}
	return PassThruEvent
}
