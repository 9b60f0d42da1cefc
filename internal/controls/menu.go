package controls

import (
	"errors"
	"fmt"
)

// ErrUnknownMenuCode is returned for menu codes outside the menu tree.
var ErrUnknownMenuCode = errors.New("unknown menu selection")

// Menu codes. Each submenu occupies its own hundred.
const (
	MenuQuit      = 0
	MenuModelBase = 100
	MenuFill      = 201
	MenuWireframe = 202
	MenuColorBase = 300
	menuModelLast = MenuModelBase + ModelCount - 1
	menuColorLast = MenuColorBase + PaletteSize - 1
)

// MenuEntry is a selectable menu item.
type MenuEntry struct {
	Label string
	Code  int
}

// Submenu groups entries under a title.
type Submenu struct {
	Title   string
	Entries []MenuEntry
}

// Menu is the context menu: submenus followed by top-level entries.
type Menu struct {
	Submenus []Submenu
	Entries  []MenuEntry
}

// ContextMenu returns the menu shown on right click.
func ContextMenu() Menu {
	models := Submenu{Title: "Object Type"}
	for m := ModelCube; m < ModelCount; m++ {
		models.Entries = append(models.Entries, MenuEntry{Label: m.String(), Code: MenuModelBase + int(m)})
	}

	colors := Submenu{Title: "Color"}
	for i := 0; i < PaletteSize; i++ {
		colors.Entries = append(colors.Entries, MenuEntry{Label: ColorName(i), Code: MenuColorBase + i})
	}

	return Menu{
		Submenus: []Submenu{
			models,
			{Title: "Drawing Mode", Entries: []MenuEntry{
				{Label: "Fill", Code: MenuFill},
				{Label: "Wireframe", Code: MenuWireframe},
			}},
			colors,
		},
		Entries: []MenuEntry{{Label: "Quit", Code: MenuQuit}},
	}
}

// ParseMenuCode converts a menu code into its action.
func ParseMenuCode(code int) (Action, error) {
	switch {
	case code == MenuQuit:
		return Action{Kind: ActionQuit}, nil
	case code == MenuFill:
		return Action{Kind: ActionSetWireframe, Wireframe: false}, nil
	case code == MenuWireframe:
		return Action{Kind: ActionSetWireframe, Wireframe: true}, nil
	case code >= MenuModelBase && code <= menuModelLast:
		return Action{Kind: ActionSelectModel, Model: ModelKind(code - MenuModelBase)}, nil
	case code >= MenuColorBase && code <= menuColorLast:
		return Action{Kind: ActionSetColor, Color: code - MenuColorBase}, nil
	}
	return Action{}, fmt.Errorf("%w: %d", ErrUnknownMenuCode, code)
}
