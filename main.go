package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bendahl/uinput"
	"github.com/layerkeys/hook"
	"github.com/layerkeys/keymaps"
	"github.com/layerkeys/layers"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config) error {
	debug = cfg.Debug
	logFile, err := setupLogging(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer logFile.Close()

	if err := start(ctx, cfg); err != nil {
		logger.Printf("Error: %v", err)
		return err
	}
	logger.Println("Shutting down...")
	return nil
}

func start(ctx context.Context, cfg Config) error {
	logger.Println("Starting layerkeys...")

	// Remapped and pass-through keys both come out of this device
	keyboard, err := uinput.CreateKeyboard(cfg.UinputPath, []byte(virtualKeyboardName))
	if err != nil {
		return fmt.Errorf("failed to create virtual keyboard on %s: %w", cfg.UinputPath, err)
	}
	defer keyboard.Close()

	devices, err := hook.FindInputDevices(cfg.DeviceGlob, hook.MatchNames(cfg.Devices, virtualKeyboardName))
	if err != nil {
		return fmt.Errorf("error finding input devices: %w", err)
	}
	logger.Printf("Found %d input devices", len(devices))
	sources := make([]hook.Source, 0, len(devices))
	for _, dev := range devices {
		dprint("Device %s at %s", dev.Name(), dev.Path())
		sources = append(sources, dev)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := hook.New(keymaps.BelgianAZERTY, keyboard, logger, cfg.Debug)
	return serve(ctx, h, keymaps.CreateDefaultTableProvider(), cfg, sources)
}

// serve runs the layer controller on h until ctx is done. A layer that
// fails to install stops the hook and is returned.
func serve(ctx context.Context, h *hook.Hook, tables *keymaps.TableProvider, cfg Config, sources []hook.Source) error {
	ctx, fail := context.WithCancelCause(ctx)
	defer fail(nil)

	ctrl := layers.NewController(h, tables, layers.Options{
		Hotkey:       cfg.Hotkey,
		NumericCycle: cfg.NumericCycle,
		Logger:       logger,
		OnError:      fail,
	})
	if err := ctrl.Start(); err != nil {
		return fmt.Errorf("failed to register hotkey: %w", err)
	}
	if cfg.NumericCycle {
		logger.Println("Numeric layer enabled")
	}

	logger.Printf("layerkeys active, press %q to switch layers. Press Ctrl+C to exit.", cfg.Hotkey)
	if err := h.Run(ctx, sources...); err != nil {
		return err
	}
	if cause := context.Cause(ctx); cause != nil && !errors.Is(cause, context.Canceled) {
		return fmt.Errorf("layer switch failed: %w", cause)
	}
	return nil
}
