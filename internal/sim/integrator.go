package sim

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// GravityY is the vertical acceleration in world units per second squared.
	GravityY = -9.8
	// Damping scales the whole velocity on every floor bounce.
	Damping = 0.9
	// RestSpeed is the speed below which a bounced axis stops.
	RestSpeed = 0.5
)

// Integrator advances a single body under gravity with box collisions.
// Angle and scale rates are integrated and damped exactly like position.
type Integrator struct {
	World    World
	Body     Body
	Velocity Body
}

// NewIntegrator returns an integrator with the body at rest at the origin.
func NewIntegrator(w World) *Integrator {
	return &Integrator{World: w, Body: NewBody()}
}

// Step advances the simulation by dt seconds of real time at the given play
// speed. Gravity is applied before the position update.
func (in *Integrator) Step(dt, speed float32) {
	co := dt * speed

	in.Velocity.Position[1] += GravityY * co
	in.Body = in.Body.Add(in.Velocity.Mul(co))

	if floor := in.World.Floor(); in.Body.Position.Y() <= floor {
		in.Velocity.Position[1] = -in.Velocity.Position[1]
		in.Velocity = in.Velocity.Mul(Damping)
		in.Body.Position[1] = floor
		if abs(in.Velocity.Position.Y()) < RestSpeed {
			in.Velocity.Position[1] = 0
		}
	}

	if wall := in.World.Wall(); in.Body.Position.X() >= wall || in.Body.Position.X() <= -wall {
		in.Velocity.Position[0] = -in.Velocity.Position[0]
		if abs(in.Velocity.Position.X()) < RestSpeed {
			in.Velocity.Position[0] = 0
		}
	}
}

// Reset puts the body back at the spawn point with unit scale and a random
// sideways throw of 2, 3 or 4 units per second. The current angle is kept so
// the spin carries over.
func (in *Integrator) Reset(rng *rand.Rand) {
	in.Body.Position = in.World.Spawn()
	in.Body.Scale = mgl32.Vec3{1, 1, 1}

	speed := float32(rng.Intn(3) + 2)
	in.Velocity = Body{
		Position: mgl32.Vec3{speed, 0, 0},
		Angle:    mgl32.Vec3{1, 1, 1}.Mul(10 * speed),
	}
}

func abs(f float32) float32 {
	return float32(math.Abs(float64(f)))
}
