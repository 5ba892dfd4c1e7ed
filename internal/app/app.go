// Package app is the host shell: it owns the console, a graphics
// backend, and the loop that moves frames and input between them.
package app

import (
	"errors"
	"fmt"

	"famigo/internal/cartridge"
	"famigo/internal/graphics"
	"famigo/internal/input"
	"famigo/internal/nes"
	"famigo/internal/ppu"
)

// Application ties a console to a rendering backend.
type Application struct {
	config  *Config
	console *nes.Console
	backend graphics.Backend
	window  graphics.Window
	romName string
}

// New creates an application from a config.
func New(config *Config) *Application {
	return &Application{
		config:  config,
		console: nes.New(),
	}
}

// Config returns the active configuration.
func (a *Application) Config() *Config { return a.config }

// Console exposes the emulated machine.
func (a *Application) Console() *nes.Console { return a.console }

// LoadROM parses a ROM file and inserts the cartridge.
func (a *Application) LoadROM(path string) error {
	cart, err := cartridge.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	a.console.InsertCartridge(cart)
	a.romName = path
	return nil
}

// Run opens the configured backend and drives the console until the
// window closes.
func (a *Application) Run() error {
	if a.romName == "" {
		return errors.New("no ROM loaded")
	}

	backend, err := graphics.CreateBackend(graphics.BackendType(a.config.Video.Backend))
	if err != nil {
		return err
	}
	a.backend = backend

	cfg := graphics.Config{
		Scale:      a.config.Window.Scale,
		Fullscreen: a.config.Window.Fullscreen,
		VSync:      a.config.Video.VSync,
	}
	if err := backend.Initialize(cfg); err != nil {
		return err
	}

	width := ppu.Width * a.config.Window.Scale
	height := ppu.Height * a.config.Window.Scale
	window, err := backend.CreateWindow("famigo - "+a.romName, width, height)
	if err != nil {
		return err
	}
	a.window = window

	if ew, ok := window.(*graphics.EbitengineWindow); ok {
		return ew.Run(a.tick)
	}

	// Headless backends have no native loop; pump frames until closed.
	for !window.ShouldClose() {
		if err := a.tick(); err != nil {
			return err
		}
	}
	return nil
}

// RunFrames advances exactly n console frames without opening a
// backend, for automation runs.
func (a *Application) RunFrames(n int) error {
	if a.romName == "" {
		return errors.New("no ROM loaded")
	}
	for i := 0; i < n; i++ {
		a.console.StepFrame()
	}
	return nil
}

// tick runs one display frame: route input, emulate, present.
func (a *Application) tick() error {
	for _, event := range a.window.PollEvents() {
		a.handleEvent(event)
	}
	frame := a.console.StepFrame()
	return a.window.RenderFrame(frame)
}

func (a *Application) handleEvent(event graphics.InputEvent) {
	if event.Type != graphics.EventButton {
		return
	}
	pad, btn := mapButton(event.Button)
	if btn == 0 {
		return
	}
	if event.Pressed {
		a.console.ButtonDown(pad, btn)
	} else {
		a.console.ButtonUp(pad, btn)
	}
}

// mapButton translates a backend button into a pad number and button
// bit.
func mapButton(b graphics.Button) (int, input.Button) {
	switch b {
	case graphics.ButtonA:
		return 1, input.ButtonA
	case graphics.ButtonB:
		return 1, input.ButtonB
	case graphics.ButtonSelect:
		return 1, input.ButtonSelect
	case graphics.ButtonStart:
		return 1, input.ButtonStart
	case graphics.ButtonUp:
		return 1, input.ButtonUp
	case graphics.ButtonDown:
		return 1, input.ButtonDown
	case graphics.ButtonLeft:
		return 1, input.ButtonLeft
	case graphics.ButtonRight:
		return 1, input.ButtonRight
	case graphics.Button2A:
		return 2, input.ButtonA
	case graphics.Button2B:
		return 2, input.ButtonB
	case graphics.Button2Select:
		return 2, input.ButtonSelect
	case graphics.Button2Start:
		return 2, input.ButtonStart
	case graphics.Button2Up:
		return 2, input.ButtonUp
	case graphics.Button2Down:
		return 2, input.ButtonDown
	case graphics.Button2Left:
		return 2, input.ButtonLeft
	case graphics.Button2Right:
		return 2, input.ButtonRight
	default:
		return 0, 0
	}
}

// Cleanup releases the window and backend.
func (a *Application) Cleanup() error {
	var err error
	if a.window != nil {
		err = a.window.Cleanup()
	}
	if a.backend != nil {
		if berr := a.backend.Cleanup(); err == nil {
			err = berr
		}
	}
	return err
}
