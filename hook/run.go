package hook

import (
	"context"
	"errors"
	"fmt"
	"sync"

	evdev "github.com/gvalkov/golang-evdev"
)

// Source is a grabbable stream of input events, such as an InputDevice.
type Source interface {
	Name() string
	ReadOne() (*evdev.InputEvent, error)
	Grab() error
	Release() error
	Close() error
}

// Run grabs every source and handles their events until ctx is done. Each
// source is read on its own goroutine but events are handled serially.
// Sources are released and closed before Run returns.
func (h *Hook) Run(ctx context.Context, sources ...Source) error {
	var grabbed []Source
	for _, s := range sources {
		if err := s.Grab(); err != nil {
			h.logger.Printf("Failed to grab device %s: %v", s.Name(), err)
			s.Close()
			continue
		}
		h.logger.Printf("Monitoring device: %s", s.Name())
		grabbed = append(grabbed, s)
	}
	if len(grabbed) == 0 {
		return ErrNoDevices
	}

	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan *evdev.InputEvent)
	var wg sync.WaitGroup
	for _, s := range grabbed {
		wg.Add(1)
		go func(s Source) {
			defer wg.Done()
			for {
				event, err := s.ReadOne()
				if err != nil {
					if readCtx.Err() == nil {
						h.logger.Printf("Error reading from %s: %v", s.Name(), err)
					}
					return
				}
				select {
				case events <- event:
				case <-readCtx.Done():
					return
				}
			}
		}(s)
	}

	readersDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(readersDone)
	}()

	var runErr error
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-readersDone:
			runErr = errors.New("all input devices closed")
			break loop
		case event := <-events:
			if _, err := h.HandleEvent(event); err != nil {
				h.logger.Printf("Failed to emit event: %v", err)
			}
		}
	}

	cancel()
	for _, s := range grabbed {
		if err := s.Release(); err != nil {
			h.dprint("release %s: %v", s.Name(), err)
		}
		s.Close()
	}
	<-readersDone
	h.releaseAll()
	if runErr != nil {
		return fmt.Errorf("hook: %w", runErr)
	}
	return nil
}

// releaseAll lets go of every key still down on the virtual keyboard.
func (h *Hook) releaseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for code, keys := range h.pressed {
		for i := len(keys) - 1; i >= 0; i-- {
			h.out.KeyUp(int(keys[i]))
		}
		delete(h.pressed, code)
		delete(h.held, code)
	}
}
