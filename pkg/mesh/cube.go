package mesh

import "github.com/go-gl/mathgl/mgl32"

// CubeVertexCount is 6 faces x 2 triangles x 3 corners.
const CubeVertexCount = 36

// cubeCorners are the eight corners of a unit cube centered at the origin.
var cubeCorners = [8]mgl32.Vec4{
	{-0.5, -0.5, 0.5, 1.0},
	{-0.5, 0.5, 0.5, 1.0},
	{0.5, 0.5, 0.5, 1.0},
	{0.5, -0.5, 0.5, 1.0},
	{-0.5, -0.5, -0.5, 1.0},
	{-0.5, 0.5, -0.5, 1.0},
	{0.5, 0.5, -0.5, 1.0},
	{0.5, -0.5, -0.5, 1.0},
}

// cubeFaces lists each face as a quad of corner indices. The quad a,b,c,d is
// split along the a-c diagonal.
var cubeFaces = [6][4]int{
	{1, 0, 3, 2},
	{2, 3, 7, 6},
	{3, 0, 4, 7},
	{6, 5, 1, 2},
	{4, 5, 6, 7},
	{5, 4, 0, 1},
}

// Cube returns a unit cube as 12 triangles.
func Cube() *Mesh {
	m := New(CubeVertexCount)
	for _, f := range cubeFaces {
		a, b, c, d := cubeCorners[f[0]], cubeCorners[f[1]], cubeCorners[f[2]], cubeCorners[f[3]]
		m.add(a, b, c)
		m.add(a, c, d)
	}
	return m
}

// CubeCorners returns the eight corners used by Cube.
func CubeCorners() [8]mgl32.Vec4 {
	return cubeCorners
}
