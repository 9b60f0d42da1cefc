// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventWindowExposed
	EventKeyDown
	EventMouseDown
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    rune // printable keys as their character, see keyRune
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
}

// Input polls SDL events once per frame.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to events.
// Returns true if the window was closed.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			case sdl.WINDOWEVENT_EXPOSED:
				i.events = append(i.events, Event{Type: EventWindowExposed})
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			if r, ok := keyRune(e.Keysym.Sym); ok {
				i.events = append(i.events, Event{Type: EventKeyDown, Key: r})
			}

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.events = append(i.events, Event{
					Type:   EventMouseDown,
					MouseX: int(e.X),
					MouseY: int(e.Y),
					Button: e.Button,
				})
			}
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// keyRune maps an SDL keycode to a character. SDL keycodes for printable
// keys already are their character; keypad keys are folded onto the main
// keyboard.
func keyRune(sym sdl.Keycode) (rune, bool) {
	switch sym {
	case sdl.K_KP_ENTER:
		return '\r', true
	case sdl.K_KP_PLUS:
		return '+', true
	case sdl.K_KP_MINUS:
		return '-', true
	case sdl.K_KP_0:
		return '0', true
	}
	// KP_1..KP_9 are contiguous; KP_0 follows KP_9.
	if sym >= sdl.K_KP_1 && sym <= sdl.K_KP_9 {
		return '1' + rune(sym-sdl.K_KP_1), true
	}
	if sym < 0 || sym > 0x7f {
		return 0, false
	}
	return rune(sym), true
}
