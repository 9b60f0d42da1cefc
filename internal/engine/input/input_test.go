package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestKeyRune(t *testing.T) {
	tests := []struct {
		name string
		sym  sdl.Keycode
		want rune
		ok   bool
	}{
		{"letter", sdl.K_w, 'w', true},
		{"digit", sdl.K_5, '5', true},
		{"space", sdl.K_SPACE, ' ', true},
		{"escape", sdl.K_ESCAPE, 0x1b, true},
		{"return", sdl.K_RETURN, '\r', true},
		{"keypad enter", sdl.K_KP_ENTER, '\r', true},
		{"keypad plus", sdl.K_KP_PLUS, '+', true},
		{"keypad minus", sdl.K_KP_MINUS, '-', true},
		{"keypad 0", sdl.K_KP_0, '0', true},
		{"keypad 1", sdl.K_KP_1, '1', true},
		{"keypad 8", sdl.K_KP_8, '8', true},
		{"keypad 9", sdl.K_KP_9, '9', true},
		{"arrow", sdl.K_UP, 0, false},
		{"function key", sdl.K_F1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keyRune(tt.sym)
			if ok != tt.ok || got != tt.want {
				t.Errorf("keyRune(%#x) = %q, %v; want %q, %v", tt.sym, got, ok, tt.want, tt.ok)
			}
		})
	}
}
