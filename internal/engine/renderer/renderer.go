// Package renderer draws the body with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/bouncy/internal/engine/shader"
	"github.com/Faultbox/bouncy/internal/logger"
	"github.com/Faultbox/bouncy/pkg/mesh"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Projection mgl32.Mat4
}

// Frame is everything needed to draw one frame.
type Frame struct {
	ModelView mgl32.Mat4
	Color     mgl32.Vec4
	Time      float32 // seconds since start
	Wireframe bool
}

// Renderer uploads the active mesh and draws it.
type Renderer struct {
	config  Config
	program *shader.Program

	vao uint32
	vbo uint32

	vertexCount int32

	uModelView  int32
	uProjection int32
	uTime       int32
	uColor      int32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(1.0, 1.0, 1.0, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.Compile(shader.BodyVertexShader, shader.BodyFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program.Use()

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	pos, err := r.program.Attrib("vPosition")
	if err != nil {
		r.Close()
		return nil, err
	}
	gl.EnableVertexAttribArray(pos)
	gl.VertexAttribPointer(pos, mesh.FloatsPerVertex, gl.FLOAT, false, 0, nil)

	r.uModelView = r.program.Uniform("ModelView")
	r.uProjection = r.program.Uniform("Projection")
	r.uTime = r.program.Uniform("uniformTime")
	r.uColor = r.program.Uniform("uniformColor")

	// The projection is fixed for the lifetime of the renderer.
	gl.UniformMatrix4fv(r.uProjection, 1, false, &cfg.Projection[0])

	logger.Debug("renderer ready", zap.Uint32("vao", r.vao), zap.Uint32("vbo", r.vbo))
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize. Only the viewport changes.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Upload replaces the vertex buffer contents with m.
func (r *Renderer) Upload(m *mesh.Mesh) {
	data := m.Floats()
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}
	r.vertexCount = int32(m.Len())
	logger.Debug("mesh uploaded", zap.Int32("vertices", r.vertexCount))
}

// Draw clears the frame and draws the uploaded mesh.
func (r *Renderer) Draw(f Frame) {
	if f.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Use()
	gl.UniformMatrix4fv(r.uModelView, 1, false, &f.ModelView[0])
	gl.Uniform1f(r.uTime, f.Time)
	gl.Uniform4fv(r.uColor, 1, &f.Color[0])

	if r.vertexCount == 0 {
		return
	}
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount)
}
