package controls

import (
	"errors"
	"strings"
	"testing"
)

func TestKeyAction(t *testing.T) {
	tests := []struct {
		key  rune
		want Action
	}{
		{'+', Action{Kind: ActionSpeedUp}},
		{'=', Action{Kind: ActionSpeedUp}},
		{'-', Action{Kind: ActionSlowDown}},
		{'_', Action{Kind: ActionSlowDown}},
		{'q', Action{Kind: ActionQuit}},
		{'Q', Action{Kind: ActionQuit}},
		{KeyEscape, Action{Kind: ActionQuit}},
		{'0', Action{Kind: ActionSetColor, Color: 0}},
		{'5', Action{Kind: ActionSetColor, Color: 5}},
		{'8', Action{Kind: ActionSetColor, Color: 8}},
		{'9', Action{}},
		{'w', Action{Kind: ActionToggleWireframe}},
		{' ', Action{Kind: ActionNextModel}},
		{KeyEnter, Action{Kind: ActionReset}},
		{'i', Action{Kind: ActionReset}},
		{'I', Action{Kind: ActionReset}},
		{'h', Action{Kind: ActionHelp}},
		{'H', Action{Kind: ActionHelp}},
		{'x', Action{}},
	}

	for _, tt := range tests {
		if got := KeyAction(tt.key); got != tt.want {
			t.Errorf("KeyAction(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestMouseActions(t *testing.T) {
	if got := MouseActions(ButtonLeft); len(got) != 1 || got[0].Axis != 1 {
		t.Errorf("left button = %v", got)
	}
	if got := MouseActions(ButtonMiddle); len(got) != 1 || got[0].Axis != 2 {
		t.Errorf("middle button = %v", got)
	}

	got := MouseActions(ButtonRight)
	if len(got) != 2 {
		t.Fatalf("right button = %v, want axis and menu", got)
	}
	if got[0] != (Action{Kind: ActionSetRotateAxis, Axis: 0}) {
		t.Errorf("right button axis = %v", got[0])
	}
	if got[1].Kind != ActionOpenMenu {
		t.Errorf("right button should open the menu, got %v", got[1])
	}

	if got := MouseActions(4); got != nil {
		t.Errorf("extra button = %v, want nil", got)
	}
}

func TestParseMenuCode(t *testing.T) {
	tests := []struct {
		code int
		want Action
	}{
		{0, Action{Kind: ActionQuit}},
		{100, Action{Kind: ActionSelectModel, Model: ModelCube}},
		{101, Action{Kind: ActionSelectModel, Model: ModelSphere}},
		{102, Action{Kind: ActionSelectModel, Model: ModelLoaded}},
		{201, Action{Kind: ActionSetWireframe, Wireframe: false}},
		{202, Action{Kind: ActionSetWireframe, Wireframe: true}},
		{300, Action{Kind: ActionSetColor, Color: 0}},
		{308, Action{Kind: ActionSetColor, Color: 8}},
	}

	for _, tt := range tests {
		got, err := ParseMenuCode(tt.code)
		if err != nil {
			t.Errorf("ParseMenuCode(%d) failed: %v", tt.code, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMenuCode(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestParseMenuCodeUnknown(t *testing.T) {
	for _, code := range []int{-1, 1, 99, 103, 200, 203, 309, 1000} {
		if _, err := ParseMenuCode(code); !errors.Is(err, ErrUnknownMenuCode) {
			t.Errorf("ParseMenuCode(%d): expected ErrUnknownMenuCode, got %v", code, err)
		}
	}
}

func TestContextMenuCodesParse(t *testing.T) {
	menu := ContextMenu()
	if len(menu.Submenus) != 3 {
		t.Fatalf("expected 3 submenus, got %d", len(menu.Submenus))
	}

	count := 0
	check := func(e MenuEntry) {
		count++
		if _, err := ParseMenuCode(e.Code); err != nil {
			t.Errorf("entry %q has unparseable code %d", e.Label, e.Code)
		}
	}
	for _, sub := range menu.Submenus {
		for _, e := range sub.Entries {
			check(e)
		}
	}
	for _, e := range menu.Entries {
		check(e)
	}

	// 3 models + 2 modes + 9 colors + quit
	if count != 15 {
		t.Errorf("expected 15 entries, got %d", count)
	}
}

func TestModelKindNext(t *testing.T) {
	m := ModelCube
	seen := []ModelKind{m}
	for i := 0; i < 3; i++ {
		m = m.Next()
		seen = append(seen, m)
	}
	want := []ModelKind{ModelCube, ModelSphere, ModelLoaded, ModelCube}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("step %d: got %s, want %s", i, seen[i], want[i])
		}
	}
}

func TestParseModelKind(t *testing.T) {
	for _, s := range []string{"cube", "sphere", "mesh"} {
		m, err := ParseModelKind(s)
		if err != nil {
			t.Errorf("ParseModelKind(%q) failed: %v", s, err)
		}
		if !m.Valid() {
			t.Errorf("ParseModelKind(%q) = %d, not valid", s, m)
		}
	}
	if _, err := ParseModelKind("teapot"); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestPalette(t *testing.T) {
	if c := Color(1); c[0] != 1 || c[1] != 0 || c[2] != 0 || c[3] != 1 {
		t.Errorf("color 1 = %v, want red", c)
	}
	if c := Color(99); c != Color(0) {
		t.Errorf("out-of-range color = %v, want black", c)
	}
	if ColorName(8) != "Gray" {
		t.Errorf("color 8 = %s", ColorName(8))
	}
}

func TestHelpBanner(t *testing.T) {
	banner := HelpBanner(59.94)
	for _, want := range []string{"BOUNCY!", "wireframe", "reset simulation", "FPS: 59.9"} {
		if !strings.Contains(banner, want) {
			t.Errorf("help banner missing %q:\n%s", want, banner)
		}
	}
}
