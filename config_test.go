package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/layerkeys/keymaps"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(newRootCmd())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Hotkey != "alt gr" {
		t.Errorf("Hotkey = %q, want %q", cfg.Hotkey, "alt gr")
	}
	if cfg.NumericCycle {
		t.Error("numeric cycle must be off by default")
	}
	if cfg.UinputPath != "/dev/uinput" {
		t.Errorf("UinputPath = %q", cfg.UinputPath)
	}
	if len(cfg.Devices) != 0 {
		t.Errorf("Devices = %v, want none", cfg.Devices)
	}
}

func TestLoadConfigEnvAndFlags(t *testing.T) {
	t.Setenv("LAYERKEYS_NUMERIC_CYCLE", "true")
	t.Setenv("LAYERKEYS_HOTKEY", "right ctrl")

	cmd := newRootCmd()
	if err := cmd.Flags().Set("hotkey", "ctrl+j"); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.NumericCycle {
		t.Error("LAYERKEYS_NUMERIC_CYCLE was ignored")
	}
	if cfg.Hotkey != "ctrl+j" {
		t.Errorf("Hotkey = %q, flag must win over env", cfg.Hotkey)
	}
}

func TestLoadConfigRejectsBadHotkey(t *testing.T) {
	cmd := newRootCmd()
	cmd.Flags().Set("hotkey", "shift+")
	if _, err := loadConfig(cmd); !errors.Is(err, keymaps.ErrInvalidCombo) {
		t.Fatalf("loadConfig = %v, want ErrInvalidCombo", err)
	}
}

func TestSetupLogging(t *testing.T) {
	saved := logger
	t.Cleanup(func() { logger = saved })

	path := filepath.Join(t.TempDir(), "nested", "layerkeys.log")
	f, err := setupLogging(path)
	if err != nil {
		t.Fatal(err)
	}
	logger.Printf("mode is set to %s", "SELECTION")
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "mode is set to SELECTION") {
		t.Fatalf("log file = %q", data)
	}
}
