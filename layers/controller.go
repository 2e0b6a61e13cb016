package layers

import (
	"fmt"
	"log"

	"github.com/layerkeys/keymaps"
)

// Hook is the OS-level key interception layer.
type Hook interface {
	// RegisterHotkey binds fn to a global key combination.
	RegisterHotkey(combo string, fn func()) error
	// UnregisterAll removes every hotkey and remap.
	UnregisterAll()
	// Remap makes source produce target until the next UnregisterAll.
	Remap(source string, target keymaps.Target) error
}

// Options configures a Controller.
type Options struct {
	// Hotkey is the combination that cycles modes, e.g. "alt gr".
	Hotkey string
	// NumericCycle inserts the Numeric layer between Normal and Selection.
	NumericCycle bool
	Logger       *log.Logger
	// OnError receives failures to install a table. Defaults to logging.
	OnError func(error)
}

// Controller owns the current Mode and installs its remap table on every
// hotkey activation. Hook callbacks are delivered serially, so the
// controller does no locking.
type Controller struct {
	hook         Hook
	tables       *keymaps.TableProvider
	hotkey       string
	numericCycle bool
	logger       *log.Logger
	onError      func(error)

	mode      Mode
	installed []keymaps.Entry
}

// NewController returns a controller in Normal mode. Nothing is registered
// with the hook until Start.
func NewController(hook Hook, tables *keymaps.TableProvider, opts Options) *Controller {
	c := &Controller{
		hook:         hook,
		tables:       tables,
		hotkey:       opts.Hotkey,
		numericCycle: opts.NumericCycle,
		logger:       opts.Logger,
		onError:      opts.OnError,
		mode:         Normal,
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	if c.onError == nil {
		c.onError = func(err error) {
			c.logger.Printf("failed to apply layer: %v", err)
		}
	}
	return c
}

// Start registers the activation hotkey and installs the Normal layer.
func (c *Controller) Start() error {
	return c.ApplyTable(Normal)
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Installed returns the entries currently installed in the hook.
func (c *Controller) Installed() []keymaps.Entry {
	return append([]keymaps.Entry(nil), c.installed...)
}

// OnHotkeyActivated advances to the next mode and installs its table.
func (c *Controller) OnHotkeyActivated() {
	next := Next(c.mode, c.numericCycle)
	c.logger.Printf("mode is set to %s", next)
	c.mode = next
	if err := c.ApplyTable(next); err != nil {
		c.onError(err)
	}
}

// ApplyTable clears every hook, re-registers the activation hotkey and then
// installs the table of m. Afterwards the installed remaps are exactly the
// table of m, empty for Normal.
//
// The hotkey goes back in before any remap so the toggle stays reachable
// whatever the table does to its key.
func (c *Controller) ApplyTable(m Mode) error {
	c.hook.UnregisterAll()
	c.installed = nil
	if err := c.hook.RegisterHotkey(c.hotkey, c.OnHotkeyActivated); err != nil {
		return fmt.Errorf("register hotkey %q: %w", c.hotkey, err)
	}

	name := m.TableName()
	if name == "" {
		return nil
	}
	table, ok := c.tables.Table(name)
	if !ok {
		return fmt.Errorf("no %s table registered for mode %s", name, m)
	}
	for _, e := range table.Entries() {
		if err := c.hook.Remap(e.Source, e.Target); err != nil {
			return fmt.Errorf("remap %q to %s: %w", e.Source, e.Target, err)
		}
		c.installed = append(c.installed, e)
	}
	return nil
}
