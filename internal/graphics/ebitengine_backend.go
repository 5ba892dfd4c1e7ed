package graphics

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"famigo/internal/ppu"
)

// EbitengineBackend renders through hajimehoshi/ebiten.
type EbitengineBackend struct {
	initialized bool
	config      Config
}

// EbitengineWindow is the windowed rendering surface.
type EbitengineWindow struct {
	game    *ebitengineGame
	running bool
}

// ebitengineGame adapts the console loop to ebiten's Game interface.
type ebitengineGame struct {
	window     *EbitengineWindow
	frameImage *ebiten.Image
	pixels     []byte // RGBA staging buffer

	events     []InputEvent
	updateFunc func() error
}

// NewEbitengineBackend creates the windowed backend.
func NewEbitengineBackend() Backend {
	return &EbitengineBackend{}
}

// Initialize prepares the backend.
func (b *EbitengineBackend) Initialize(config Config) error {
	if b.initialized {
		return errors.New("ebitengine backend already initialized")
	}
	b.config = config
	b.initialized = true
	return nil
}

// CreateWindow creates the game window.
func (b *EbitengineBackend) CreateWindow(title string, width, height int) (Window, error) {
	if !b.initialized {
		return nil, errors.New("backend not initialized")
	}

	game := &ebitengineGame{
		frameImage: ebiten.NewImage(ppu.Width, ppu.Height),
		pixels:     make([]byte, ppu.Width*ppu.Height*4),
	}
	window := &EbitengineWindow{game: game, running: true}
	game.window = window

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(b.config.VSync)
	if b.config.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return window, nil
}

// Cleanup releases backend resources.
func (b *EbitengineBackend) Cleanup() error {
	b.initialized = false
	return nil
}

// Name identifies the backend.
func (b *EbitengineBackend) Name() string { return "ebitengine" }

// SetTitle sets the window title.
func (w *EbitengineWindow) SetTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// ShouldClose reports that the user closed the window.
func (w *EbitengineWindow) ShouldClose() bool { return !w.running }

// PollEvents drains buffered input events.
func (w *EbitengineWindow) PollEvents() []InputEvent {
	events := w.game.events
	w.game.events = nil
	return events
}

// RenderFrame stages one RGB24 frame for the next draw.
func (w *EbitengineWindow) RenderFrame(frame *[ppu.Width * ppu.Height * 3]uint8) error {
	px := w.game.pixels
	for i := 0; i < ppu.Width*ppu.Height; i++ {
		px[i*4] = frame[i*3]
		px[i*4+1] = frame[i*3+1]
		px[i*4+2] = frame[i*3+2]
		px[i*4+3] = 0xFF
	}
	w.game.frameImage.WritePixels(px)
	return nil
}

// Cleanup stops the window.
func (w *EbitengineWindow) Cleanup() error {
	w.running = false
	return nil
}

// Run enters the ebiten game loop; updateFunc runs once per tick.
func (w *EbitengineWindow) Run(updateFunc func() error) error {
	w.game.updateFunc = updateFunc
	if err := ebiten.RunGame(w.game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebitengine loop: %w", err)
	}
	return nil
}

// keyBindings maps the fixed keyboard layout to pad buttons: arrows or
// WASD + Z/X/Enter/Space for pad 1, number keys for pad 2.
var keyBindings = map[ebiten.Key]Button{
	ebiten.KeyArrowUp:    ButtonUp,
	ebiten.KeyArrowDown:  ButtonDown,
	ebiten.KeyArrowLeft:  ButtonLeft,
	ebiten.KeyArrowRight: ButtonRight,
	ebiten.KeyW:          ButtonUp,
	ebiten.KeyS:          ButtonDown,
	ebiten.KeyA:          ButtonLeft,
	ebiten.KeyD:          ButtonRight,
	ebiten.KeyX:          ButtonA,
	ebiten.KeyZ:          ButtonB,
	ebiten.KeyEnter:      ButtonStart,
	ebiten.KeySpace:      ButtonSelect,
	ebiten.Key1:          Button2Up,
	ebiten.Key2:          Button2Down,
	ebiten.Key3:          Button2Left,
	ebiten.Key4:          Button2Right,
	ebiten.Key5:          Button2A,
	ebiten.Key6:          Button2B,
	ebiten.Key7:          Button2Start,
	ebiten.Key8:          Button2Select,
}

// Update implements ebiten.Game.
func (g *ebitengineGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.events = append(g.events, InputEvent{Type: EventQuit})
		g.window.running = false
		return ebiten.Termination
	}

	for key, button := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			g.events = append(g.events, InputEvent{Type: EventButton, Button: button, Pressed: true})
		} else if inpututil.IsKeyJustReleased(key) {
			g.events = append(g.events, InputEvent{Type: EventButton, Button: button, Pressed: false})
		}
	}

	if g.updateFunc != nil {
		return g.updateFunc()
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *ebitengineGame) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	scaleX := float64(bounds.Dx()) / float64(ppu.Width)
	scaleY := float64(bounds.Dy()) / float64(ppu.Height)
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		(float64(bounds.Dx())-float64(ppu.Width)*scale)/2,
		(float64(bounds.Dy())-float64(ppu.Height)*scale)/2,
	)
	screen.DrawImage(g.frameImage, op)
}

// Layout implements ebiten.Game.
func (g *ebitengineGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
