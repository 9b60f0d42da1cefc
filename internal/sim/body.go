// Package sim simulates the single bouncing body: its state, the world box it
// lives in and the integrator that moves it.
package sim

import "github.com/go-gl/mathgl/mgl32"

// Body is the transform of the rendered object. The same type is used for
// its time derivative, where each field holds a rate of change.
type Body struct {
	Position mgl32.Vec3
	Angle    mgl32.Vec3 // degrees about X, Y and Z, applied independently
	Scale    mgl32.Vec3
}

// NewBody returns a body at the origin with unit scale.
func NewBody() Body {
	return Body{Scale: mgl32.Vec3{1, 1, 1}}
}

// Add returns the componentwise sum of b and o.
func (b Body) Add(o Body) Body {
	return Body{
		Position: b.Position.Add(o.Position),
		Angle:    b.Angle.Add(o.Angle),
		Scale:    b.Scale.Add(o.Scale),
	}
}

// Mul returns every field of b scaled by s.
func (b Body) Mul(s float32) Body {
	return Body{
		Position: b.Position.Mul(s),
		Angle:    b.Angle.Mul(s),
		Scale:    b.Scale.Mul(s),
	}
}

// ModelView returns Scale * Translate * RotateX * RotateY * RotateZ.
func (b Body) ModelView() mgl32.Mat4 {
	return mgl32.Scale3D(b.Scale.X(), b.Scale.Y(), b.Scale.Z()).
		Mul4(mgl32.Translate3D(b.Position.X(), b.Position.Y(), b.Position.Z())).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(b.Angle.X()))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(b.Angle.Y()))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(b.Angle.Z())))
}
