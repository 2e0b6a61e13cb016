package hook

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	evdev "github.com/gvalkov/golang-evdev"
)

// ErrNoDevices is returned when no keyboard could be found or grabbed.
var ErrNoDevices = errors.New("no suitable input devices found")

// DefaultDeviceNames are keypads grabbed by name when no device is
// configured. Anything calling itself a keyboard is grabbed as well.
var DefaultDeviceNames = []string{"mtk-kpd", "matrix-keypad"}

// InputDevice represents a physical input device
type InputDevice struct {
	device *evdev.InputDevice
	name   string
	path   string
}

func (d *InputDevice) Name() string { return d.name }
func (d *InputDevice) Path() string { return d.path }

func (d *InputDevice) ReadOne() (*evdev.InputEvent, error) { return d.device.ReadOne() }
func (d *InputDevice) Grab() error                         { return d.device.Grab() }
func (d *InputDevice) Release() error                      { return d.device.Release() }
func (d *InputDevice) Close() error                        { return d.device.File.Close() }

// MatchNames returns a matcher accepting exactly the given device names.
// With no names it accepts DefaultDeviceNames and any device calling itself
// a keyboard, except the virtual keyboard named self.
func MatchNames(names []string, self string) func(string) bool {
	if len(names) > 0 {
		return func(name string) bool {
			for _, want := range names {
				if name == want {
					return true
				}
			}
			return false
		}
	}
	return func(name string) bool {
		if name == self {
			return false
		}
		for _, want := range DefaultDeviceNames {
			if name == want {
				return true
			}
		}
		return strings.Contains(strings.ToLower(name), "keyboard")
	}
}

// FindInputDevices opens every device under glob accepted by match.
func FindInputDevices(glob string, match func(name string) bool) ([]*InputDevice, error) {
	devFiles, err := filepath.Glob(glob)
	if err != nil {
		return nil, fmt.Errorf("failed to list input devices: %w", err)
	}

	var devices []*InputDevice
	for _, path := range devFiles {
		dev, err := evdev.Open(path)
		if err != nil {
			continue
		}
		if !match(dev.Name) {
			dev.File.Close()
			continue
		}
		devices = append(devices, &InputDevice{
			device: dev,
			name:   dev.Name,
			path:   path,
		})
	}

	if len(devices) == 0 {
		return nil, ErrNoDevices
	}
	return devices, nil
}
