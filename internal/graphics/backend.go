// Package graphics abstracts the rendering backends: a windowed
// Ebitengine implementation for play and a headless one for automation
// and tests.
package graphics

import (
	"fmt"

	"famigo/internal/ppu"
)

// Backend creates windows for a particular rendering technology.
type Backend interface {
	// Initialize prepares the backend.
	Initialize(config Config) error

	// CreateWindow creates a rendering surface.
	CreateWindow(title string, width, height int) (Window, error)

	// Cleanup releases all resources.
	Cleanup() error

	// Name identifies the backend.
	Name() string
}

// Window is a rendering surface fed with NES frames.
type Window interface {
	// SetTitle sets the window title.
	SetTitle(title string)

	// ShouldClose reports that the user asked to quit.
	ShouldClose() bool

	// PollEvents drains pending input events.
	PollEvents() []InputEvent

	// RenderFrame displays one RGB24 frame.
	RenderFrame(frame *[ppu.Width * ppu.Height * 3]uint8) error

	// Cleanup releases window resources.
	Cleanup() error
}

// Config selects backend behavior.
type Config struct {
	Scale      int
	Fullscreen bool
	VSync      bool
}

// InputEventType distinguishes input events.
type InputEventType int

const (
	EventButton InputEventType = iota
	EventQuit
)

// Button identifies a console button on either pad.
type Button int

const (
	ButtonNone Button = iota
	ButtonA
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	Button2A
	Button2B
	Button2Select
	Button2Start
	Button2Up
	Button2Down
	Button2Left
	Button2Right
)

// InputEvent is one button press/release or a quit request.
type InputEvent struct {
	Type    InputEventType
	Button  Button
	Pressed bool
}

// BackendType names the available backends.
type BackendType string

const (
	BackendEbitengine BackendType = "ebitengine"
	BackendHeadless   BackendType = "headless"
)

// CreateBackend instantiates a backend by name.
func CreateBackend(kind BackendType) (Backend, error) {
	switch kind {
	case BackendEbitengine, "":
		return NewEbitengineBackend(), nil
	case BackendHeadless:
		return NewHeadlessBackend(), nil
	default:
		return nil, fmt.Errorf("unknown graphics backend %q", kind)
	}
}
