package shader

import _ "embed"

// BodyVertexShader transforms the body and tints it per vertex.
//
//go:embed bouncy.vert
var BodyVertexShader string

// BodyFragmentShader writes the interpolated vertex color.
//
//go:embed bouncy.frag
var BodyFragmentShader string
