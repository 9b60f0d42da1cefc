package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrSphereBudget is returned when a vertex budget is too small to produce
// at least one stack and one sector.
var ErrSphereBudget = errors.New("sphere vertex budget too small")

// Sphere builds a unit UV sphere sized from a vertex budget. The budget picks
// the grid resolution (floor(sqrt(count)) - 1 stacks and sectors); the
// returned vertex count follows from the triangulation, not from count.
func Sphere(count int) (*Mesh, error) {
	n := int(math.Sqrt(float64(count))) - 1
	if count <= 0 || n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrSphereBudget, count)
	}
	return SphereGrid(n, n)
}

// SphereGrid builds a unit UV sphere with the given number of latitude
// stacks and longitude sectors.
func SphereGrid(stacks, sectors int) (*Mesh, error) {
	if stacks < 1 || sectors < 1 {
		return nil, fmt.Errorf("%w: %dx%d grid", ErrSphereBudget, stacks, sectors)
	}

	points := spherePoints(stacks, sectors)

	m := New(6 * sectors * stacks)
	for i := 0; i < stacks; i++ {
		k1 := i * (sectors + 1)
		k2 := k1 + sectors + 1
		for j := 0; j < sectors; j, k1, k2 = j+1, k1+1, k2+1 {
			// Top cap rows collapse k1..k1+1 onto the pole.
			if i != 0 {
				m.add(points[k1], points[k2], points[k1+1])
			}
			// Bottom cap rows collapse k2..k2+1 onto the pole.
			if i != stacks-1 {
				m.add(points[k1+1], points[k2], points[k2+1])
			}
		}
	}
	return m, nil
}

// SphereVertexCount returns how many vertices SphereGrid emits.
func SphereVertexCount(stacks, sectors int) int {
	if stacks < 1 || sectors < 1 {
		return 0
	}
	return 6 * sectors * (stacks - 1)
}

// spherePoints returns the (stacks+1) x (sectors+1) latitude/longitude grid,
// row by row from the north pole (+pi/2) down to the south pole (-pi/2).
func spherePoints(stacks, sectors int) []mgl32.Vec4 {
	const radius = 1.0

	sectorStep := 2 * math.Pi / float64(sectors)
	stackStep := math.Pi / float64(stacks)

	points := make([]mgl32.Vec4, 0, (stacks+1)*(sectors+1))
	for i := 0; i <= stacks; i++ {
		stackAngle := math.Pi/2 - float64(i)*stackStep
		xy := radius * math.Cos(stackAngle)
		z := radius * math.Sin(stackAngle)

		for j := 0; j <= sectors; j++ {
			sectorAngle := float64(j) * sectorStep
			x := xy * math.Cos(sectorAngle)
			y := xy * math.Sin(sectorAngle)
			points = append(points, mgl32.Vec4{float32(x), float32(y), float32(z), 1})
		}
	}
	return points
}
