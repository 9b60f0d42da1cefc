package sim

import "github.com/go-gl/mathgl/mgl32"

// BodyRadius is the half size of the body used for collision tests.
const BodyRadius = 1

// World is the axis-aligned box the body bounces in, centered at the origin.
type World struct {
	HalfExtents mgl32.Vec3
}

// DefaultWorld returns a 40x20x20 world.
func DefaultWorld() World {
	return World{HalfExtents: mgl32.Vec3{20, 10, 10}}
}

// Floor returns the lowest Y the body center may reach.
func (w World) Floor() float32 {
	return -(w.HalfExtents.Y() - BodyRadius)
}

// Wall returns the largest |X| the body center may reach before bouncing.
func (w World) Wall() float32 {
	return w.HalfExtents.X() - BodyRadius
}

// Spawn returns the top-left starting point of the body.
func (w World) Spawn() mgl32.Vec3 {
	return mgl32.Vec3{-w.HalfExtents.X() + BodyRadius, w.HalfExtents.Y() - BodyRadius, 0}
}

// Projection returns the orthographic projection covering the whole world.
func (w World) Projection() mgl32.Mat4 {
	h := w.HalfExtents
	return mgl32.Ortho(-h.X(), h.X(), -h.Y(), h.Y(), -h.Z(), h.Z())
}
