// Package controls maps keyboard, mouse and menu input to typed actions.
package controls

import "fmt"

// ActionKind identifies what an Action does.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionQuit
	ActionSpeedUp
	ActionSlowDown
	ActionSetColor
	ActionToggleWireframe
	ActionSetWireframe
	ActionNextModel
	ActionSelectModel
	ActionReset
	ActionHelp
	ActionSetRotateAxis
	ActionOpenMenu
)

var actionNames = [...]string{
	ActionNone:            "None",
	ActionQuit:            "Quit",
	ActionSpeedUp:         "SpeedUp",
	ActionSlowDown:        "SlowDown",
	ActionSetColor:        "SetColor",
	ActionToggleWireframe: "ToggleWireframe",
	ActionSetWireframe:    "SetWireframe",
	ActionNextModel:       "NextModel",
	ActionSelectModel:     "SelectModel",
	ActionReset:           "Reset",
	ActionHelp:            "Help",
	ActionSetRotateAxis:   "SetRotateAxis",
	ActionOpenMenu:        "OpenMenu",
}

// String returns the action kind name.
func (k ActionKind) String() string {
	if k >= 0 && int(k) < len(actionNames) {
		return actionNames[k]
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// Action is a single state change requested by the user. Only the payload
// field matching Kind is meaningful.
type Action struct {
	Kind      ActionKind
	Color     int       // ActionSetColor: palette index
	Wireframe bool      // ActionSetWireframe
	Model     ModelKind // ActionSelectModel
	Axis      int       // ActionSetRotateAxis
}

// String formats the action with its payload.
func (a Action) String() string {
	switch a.Kind {
	case ActionSetColor:
		return fmt.Sprintf("%s(%s)", a.Kind, ColorName(a.Color))
	case ActionSetWireframe:
		return fmt.Sprintf("%s(%t)", a.Kind, a.Wireframe)
	case ActionSelectModel:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Model)
	case ActionSetRotateAxis:
		return fmt.Sprintf("%s(%d)", a.Kind, a.Axis)
	default:
		return a.Kind.String()
	}
}

// ModelKind selects one of the three built-in models.
type ModelKind int

const (
	ModelCube ModelKind = iota
	ModelSphere
	ModelLoaded

	// ModelCount is the number of selectable models.
	ModelCount = 3
)

// String returns the model name.
func (m ModelKind) String() string {
	switch m {
	case ModelCube:
		return "Cube"
	case ModelSphere:
		return "Sphere"
	case ModelLoaded:
		return "Mesh"
	default:
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

// Next returns the following model, wrapping from the loaded mesh to the cube.
func (m ModelKind) Next() ModelKind {
	return (m + 1) % ModelCount
}

// Valid reports whether m names one of the three models.
func (m ModelKind) Valid() bool {
	return m >= ModelCube && m < ModelCount
}

// ParseModelKind parses "cube", "sphere" or "mesh".
func ParseModelKind(s string) (ModelKind, error) {
	switch s {
	case "cube":
		return ModelCube, nil
	case "sphere":
		return ModelSphere, nil
	case "mesh", "loaded":
		return ModelLoaded, nil
	default:
		return 0, fmt.Errorf("unknown model %q", s)
	}
}
