package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBodyAddMul(t *testing.T) {
	a := Body{
		Position: mgl32.Vec3{1, 2, 3},
		Angle:    mgl32.Vec3{10, 20, 30},
		Scale:    mgl32.Vec3{1, 1, 1},
	}
	got := a.Add(a.Mul(2))
	want := Body{
		Position: mgl32.Vec3{3, 6, 9},
		Angle:    mgl32.Vec3{30, 60, 90},
		Scale:    mgl32.Vec3{3, 3, 3},
	}
	if got != want {
		t.Errorf("a + 2a = %+v, want %+v", got, want)
	}
}

func TestModelViewIdentity(t *testing.T) {
	if got := NewBody().ModelView(); !got.ApproxEqual(mgl32.Ident4()) {
		t.Errorf("default body model view = %v, want identity", got)
	}
}

func TestModelViewScaleBeforeTranslate(t *testing.T) {
	b := NewBody()
	b.Position = mgl32.Vec3{1, -2, 0}
	b.Scale = mgl32.Vec3{2, 2, 2}

	origin := b.ModelView().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !origin.ApproxEqual(mgl32.Vec4{2, -4, 0, 1}) {
		t.Errorf("origin maps to %v, want translation scaled by 2", origin)
	}
}

func TestModelViewRotation(t *testing.T) {
	b := NewBody()
	b.Angle = mgl32.Vec3{0, 0, 90}

	p := b.ModelView().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if !p.ApproxEqualThreshold(mgl32.Vec4{0, 1, 0, 1}, 1e-5) {
		t.Errorf("90 degrees about Z maps +X to %v", p)
	}
}

func TestWorldProjection(t *testing.T) {
	w := DefaultWorld()
	p := w.Projection().Mul4x1(mgl32.Vec4{20, 10, 0, 1})
	if !p.ApproxEqual(mgl32.Vec4{1, 1, 0, 1}) {
		t.Errorf("world corner maps to %v, want (1, 1, 0, 1)", p)
	}
}

func TestWorldBounds(t *testing.T) {
	w := DefaultWorld()
	if w.Floor() != -9 {
		t.Errorf("floor = %f, want -9", w.Floor())
	}
	if w.Wall() != 19 {
		t.Errorf("wall = %f, want 19", w.Wall())
	}
}
