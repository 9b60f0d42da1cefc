// Package mesh provides flat triangle-list meshes and procedural generators.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the number of float32 components uploaded per vertex.
const FloatsPerVertex = 4

// Mesh is a non-indexed triangle list: every three consecutive vertices form
// one triangle, shared corners are repeated.
type Mesh struct {
	Vertices []mgl32.Vec4
}

// New creates a mesh with room for n vertices.
func New(n int) *Mesh {
	return &Mesh{Vertices: make([]mgl32.Vec4, 0, n)}
}

// Len returns the vertex count.
func (m *Mesh) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Vertices)
}

// Triangles returns the number of triangles.
func (m *Mesh) Triangles() int {
	return m.Len() / 3
}

// Triangle returns the three corners of triangle k.
func (m *Mesh) Triangle(k int) [3]mgl32.Vec4 {
	return [3]mgl32.Vec4{m.Vertices[3*k], m.Vertices[3*k+1], m.Vertices[3*k+2]}
}

// Scale multiplies every vertex componentwise by s, in place.
// Pass w = 1 to leave the homogeneous coordinate alone.
func (m *Mesh) Scale(s mgl32.Vec4) {
	for i, v := range m.Vertices {
		m.Vertices[i] = mgl32.Vec4{v[0] * s[0], v[1] * s[1], v[2] * s[2], v[3] * s[3]}
	}
}

// Floats flattens the vertices into the layout expected by the vertex buffer.
func (m *Mesh) Floats() []float32 {
	out := make([]float32, 0, m.Len()*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out, v[0], v[1], v[2], v[3])
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the mesh.
// An empty mesh returns zero vectors.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if m.Len() == 0 {
		return
	}
	lo = m.Vertices[0].Vec3()
	hi = lo
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v[i] < lo[i] {
				lo[i] = v[i]
			}
			if v[i] > hi[i] {
				hi[i] = v[i]
			}
		}
	}
	return lo, hi
}

func (m *Mesh) add(v ...mgl32.Vec4) {
	m.Vertices = append(m.Vertices, v...)
}
