package graphics

import (
	"errors"

	"famigo/internal/ppu"
)

// HeadlessBackend renders nowhere. It exists for automation runs and
// tests, where the frames only need to be produced, not shown.
type HeadlessBackend struct {
	initialized bool
}

// HeadlessWindow counts the frames it was asked to display.
type HeadlessWindow struct {
	title      string
	running    bool
	frameCount int
}

// NewHeadlessBackend creates the headless backend.
func NewHeadlessBackend() Backend {
	return &HeadlessBackend{}
}

// Initialize prepares the backend.
func (b *HeadlessBackend) Initialize(config Config) error {
	if b.initialized {
		return errors.New("headless backend already initialized")
	}
	b.initialized = true
	return nil
}

// CreateWindow creates a surface that swallows frames.
func (b *HeadlessBackend) CreateWindow(title string, width, height int) (Window, error) {
	if !b.initialized {
		return nil, errors.New("backend not initialized")
	}
	return &HeadlessWindow{title: title, running: true}, nil
}

// Cleanup releases backend resources.
func (b *HeadlessBackend) Cleanup() error {
	b.initialized = false
	return nil
}

// Name identifies the backend.
func (b *HeadlessBackend) Name() string { return "headless" }

// SetTitle records the title.
func (w *HeadlessWindow) SetTitle(title string) { w.title = title }

// ShouldClose reports a stopped window.
func (w *HeadlessWindow) ShouldClose() bool { return !w.running }

// PollEvents never has events.
func (w *HeadlessWindow) PollEvents() []InputEvent { return nil }

// RenderFrame counts the frame.
func (w *HeadlessWindow) RenderFrame(frame *[ppu.Width * ppu.Height * 3]uint8) error {
	w.frameCount++
	return nil
}

// Cleanup stops the window.
func (w *HeadlessWindow) Cleanup() error {
	w.running = false
	return nil
}

// FrameCount returns the number of frames rendered.
func (w *HeadlessWindow) FrameCount() int { return w.frameCount }
