package controls

import "github.com/go-gl/mathgl/mgl32"

// PaletteSize is the number of selectable colors.
const PaletteSize = 9

var palette = [PaletteSize]struct {
	name  string
	color mgl32.Vec4
}{
	{"Black", mgl32.Vec4{0.0, 0.0, 0.0, 1.0}},
	{"Red", mgl32.Vec4{1.0, 0.0, 0.0, 1.0}},
	{"Yellow", mgl32.Vec4{1.0, 1.0, 0.0, 1.0}},
	{"Green", mgl32.Vec4{0.0, 1.0, 0.0, 1.0}},
	{"Blue", mgl32.Vec4{0.0, 0.0, 1.0, 1.0}},
	{"Magenta", mgl32.Vec4{1.0, 0.0, 1.0, 1.0}},
	{"White", mgl32.Vec4{1.0, 1.0, 1.0, 1.0}},
	{"Cyan", mgl32.Vec4{0.0, 1.0, 1.0, 1.0}},
	{"Gray", mgl32.Vec4{0.5, 0.5, 0.5, 1.0}},
}

// Color returns the RGBA value of palette entry i.
// Out-of-range indexes return black.
func Color(i int) mgl32.Vec4 {
	if i < 0 || i >= PaletteSize {
		return palette[0].color
	}
	return palette[i].color
}

// ColorName returns the display name of palette entry i.
func ColorName(i int) string {
	if i < 0 || i >= PaletteSize {
		return "Unknown"
	}
	return palette[i].name
}
