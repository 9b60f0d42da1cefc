package controls

// Key codes for non-printable keys. Printable keys use their rune value.
const (
	KeyEnter  = '\r'
	KeyEscape = 0x1b
)

// SpeedFactor multiplies or divides the play speed on +/-.
const SpeedFactor = 1.5

// KeyAction returns the action bound to a key press.
// Unbound keys return ActionNone.
func KeyAction(key rune) Action {
	switch key {
	case '=', '+':
		return Action{Kind: ActionSpeedUp}
	case '-', '_':
		return Action{Kind: ActionSlowDown}
	case KeyEscape, 'q', 'Q':
		return Action{Kind: ActionQuit}
	case '0', '1', '2', '3', '4', '5', '6', '7', '8':
		return Action{Kind: ActionSetColor, Color: int(key - '0')}
	case 'w':
		return Action{Kind: ActionToggleWireframe}
	case ' ':
		return Action{Kind: ActionNextModel}
	case KeyEnter, 'i', 'I':
		return Action{Kind: ActionReset}
	case 'h', 'H':
		return Action{Kind: ActionHelp}
	}
	return Action{}
}

// Mouse buttons, numbered as SDL reports them.
const (
	ButtonLeft   = 1
	ButtonMiddle = 2
	ButtonRight  = 3
)

// MouseActions returns the actions for a button press. Releases are not
// bound. The right button also opens the context menu.
func MouseActions(button uint8) []Action {
	switch button {
	case ButtonLeft:
		return []Action{{Kind: ActionSetRotateAxis, Axis: 1}}
	case ButtonMiddle:
		return []Action{{Kind: ActionSetRotateAxis, Axis: 2}}
	case ButtonRight:
		return []Action{{Kind: ActionSetRotateAxis, Axis: 0}, {Kind: ActionOpenMenu}}
	}
	return nil
}
