package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/layerkeys/keymaps"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const virtualKeyboardName = "layerkeys"

// Config holds the daemon settings. Flags can be overridden with
// LAYERKEYS_ environment variables, e.g. LAYERKEYS_NUMERIC_CYCLE=true.
type Config struct {
	Hotkey       string
	NumericCycle bool
	Devices      []string
	DeviceGlob   string
	UinputPath   string
	LogFile      string
	Debug        bool
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layerkeys",
		Short: "Keyboard layers toggled by a hotkey",
		Long: `layerkeys grabs the keyboard and cycles between layers each time the
hotkey is pressed. In the SELECTION layer the right-hand cluster becomes
Home/End/Delete/PageUp/PageDown and arrow keys.

Needs read access to /dev/input and write access to /dev/uinput.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("hotkey", "alt gr", "key combination that switches layers")
	flags.Bool("numeric-cycle", false, "cycle NORMAL -> NUMERIC -> SELECTION instead of NORMAL <-> SELECTION")
	flags.StringSlice("device", nil, "input device name to grab (repeatable, default: keyboards)")
	flags.String("device-glob", "/dev/input/event*", "where to look for input devices")
	flags.String("uinput", "/dev/uinput", "uinput device used for the virtual keyboard")
	flags.String("log-file", filepath.Join(os.TempDir(), "layerkeys.log"), "log file")
	flags.Bool("debug", false, "log every key event")
	return cmd
}

func loadConfig(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LAYERKEYS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	cfg := Config{
		Hotkey:       v.GetString("hotkey"),
		NumericCycle: v.GetBool("numeric-cycle"),
		Devices:      v.GetStringSlice("device"),
		DeviceGlob:   v.GetString("device-glob"),
		UinputPath:   v.GetString("uinput"),
		LogFile:      v.GetString("log-file"),
		Debug:        v.GetBool("debug"),
	}
	if _, err := keymaps.BelgianAZERTY.Combo(cfg.Hotkey); err != nil {
		return Config{}, fmt.Errorf("invalid --hotkey: %w", err)
	}
	return cfg, nil
}
