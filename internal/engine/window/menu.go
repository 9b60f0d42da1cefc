package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/bouncy/internal/controls"
)

const (
	cancelButton     = -1
	submenuButtonMin = 1000
)

// ShowMenu presents the context menu as a chain of message boxes: the first
// lists the submenus and top-level entries, the second the chosen submenu.
// It returns the selected menu code, or ok == false if the user cancelled.
func (w *Window) ShowMenu(menu controls.Menu) (code int, ok bool, err error) {
	top := make([]sdl.MessageBoxButtonData, 0, len(menu.Submenus)+len(menu.Entries)+1)
	for i, sub := range menu.Submenus {
		top = append(top, sdl.MessageBoxButtonData{ButtonID: int32(submenuButtonMin + i), Text: sub.Title})
	}
	top = appendEntries(top, menu.Entries)

	id, err := w.messageBox("Bouncy!", "Choose a menu", top)
	if err != nil || id == cancelButton {
		return 0, false, err
	}
	if id < submenuButtonMin {
		return int(id), true, nil
	}

	sub := menu.Submenus[id-submenuButtonMin]
	id, err = w.messageBox(sub.Title, sub.Title, appendEntries(nil, sub.Entries))
	if err != nil || id == cancelButton {
		return 0, false, err
	}
	return int(id), true, nil
}

func appendEntries(buttons []sdl.MessageBoxButtonData, entries []controls.MenuEntry) []sdl.MessageBoxButtonData {
	for _, e := range entries {
		buttons = append(buttons, sdl.MessageBoxButtonData{ButtonID: int32(e.Code), Text: e.Label})
	}
	return append(buttons, sdl.MessageBoxButtonData{
		Flags:    sdl.MESSAGEBOX_BUTTON_ESCAPEKEY_DEFAULT,
		ButtonID: cancelButton,
		Text:     "Cancel",
	})
}

func (w *Window) messageBox(title, message string, buttons []sdl.MessageBoxButtonData) (int32, error) {
	id, err := sdl.ShowMessageBox(&sdl.MessageBoxData{
		Flags:   sdl.MESSAGEBOX_INFORMATION,
		Window:  w.sdlWindow,
		Title:   title,
		Message: message,
		Buttons: buttons,
	})
	if err != nil {
		return cancelButton, fmt.Errorf("SDL_ShowMessageBox failed: %w", err)
	}
	return id, nil
}
