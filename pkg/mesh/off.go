package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/bouncy/pkg/formats"
)

// FromOFF expands an indexed OFF mesh into a flat triangle list. Triangle k
// holds the vertices named by face k, in file order, with w = 1.
func FromOFF(off *formats.OFF) *Mesh {
	m := New(len(off.Faces) * 3)
	for _, f := range off.Faces {
		for _, idx := range f {
			p := off.Vertices[idx]
			m.add(mgl32.Vec4{p[0], p[1], p[2], 1})
		}
	}
	return m
}
