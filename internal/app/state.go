// Package app runs the demo: it owns the demo state, the window and the
// renderer, and drives them from the frame loop.
package app

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/bouncy/internal/assets"
	"github.com/Faultbox/bouncy/internal/config"
	"github.com/Faultbox/bouncy/internal/controls"
	"github.com/Faultbox/bouncy/internal/sim"
	"github.com/Faultbox/bouncy/pkg/mesh"
)

// Effect tells the frame loop what an applied action needs from the window
// or the GPU.
type Effect struct {
	Quit     bool
	Upload   bool // the active mesh changed
	OpenMenu bool
	Redraw   bool
}

// State is everything the demo mutates while running. It holds no GL or
// window resources, so it can be driven directly in tests.
type State struct {
	Stats      FrameStats
	PlaySpeed  float32
	Sim        *sim.Integrator
	Models     *assets.Store
	Color      int
	Wireframe  bool
	RotateAxis int

	out io.Writer
	rng *rand.Rand
	log *zap.Logger
}

// NewState builds the models and places the body at its spawn point.
func NewState(cfg *config.Config, rng *rand.Rand, out io.Writer, log *zap.Logger) (*State, error) {
	models, err := assets.NewStore(cfg.Models)
	if err != nil {
		return nil, err
	}

	h := cfg.World.HalfExtents
	s := &State{
		Stats:     FrameStats{},
		PlaySpeed: cfg.Sim.PlaySpeed,
		Sim:       sim.NewIntegrator(sim.World{HalfExtents: mgl32.Vec3{h[0], h[1], h[2]}}),
		Models:    models,
		Color:     cfg.Render.Color,
		Wireframe: cfg.Render.Wireframe,
		out:       out,
		rng:       rng,
		log:       log,
	}
	s.Sim.Reset(rng)
	return s, nil
}

// Tick advances the simulation by one frame of dt seconds. It reports
// whether the frame was used; rejected frames change nothing.
func (s *State) Tick(dt float64) bool {
	if !s.Stats.Tick(dt) {
		return false
	}
	s.Sim.Step(float32(dt), s.PlaySpeed)
	return true
}

// Mesh returns the active mesh.
func (s *State) Mesh() *mesh.Mesh {
	return s.Models.Active()
}

// ColorValue returns the RGBA value of the active color.
func (s *State) ColorValue() mgl32.Vec4 {
	return controls.Color(s.Color)
}

// Apply performs an action and reports what the frame loop must do next.
func (s *State) Apply(a controls.Action) Effect {
	if a.Kind != controls.ActionNone {
		s.log.Debug("action", zap.Stringer("action", a))
	}

	switch a.Kind {
	case controls.ActionQuit:
		return Effect{Quit: true}

	case controls.ActionSpeedUp:
		s.PlaySpeed *= controls.SpeedFactor
		s.log.Info("play speed", zap.Float32("speed", s.PlaySpeed))

	case controls.ActionSlowDown:
		s.PlaySpeed /= controls.SpeedFactor
		s.log.Info("play speed", zap.Float32("speed", s.PlaySpeed))

	case controls.ActionSetColor:
		if a.Color >= 0 && a.Color < controls.PaletteSize {
			s.Color = a.Color
		}

	case controls.ActionToggleWireframe:
		s.Wireframe = !s.Wireframe

	case controls.ActionSetWireframe:
		s.Wireframe = a.Wireframe

	case controls.ActionNextModel:
		s.Models.Next()
		s.log.Info("model selected", zap.Stringer("model", s.Models.ActiveKind()))
		return Effect{Upload: true, Redraw: true}

	case controls.ActionSelectModel:
		if _, err := s.Models.Select(a.Model); err != nil {
			s.log.Warn("model not selected", zap.Error(err))
			return Effect{}
		}
		s.log.Info("model selected", zap.Stringer("model", s.Models.ActiveKind()))
		return Effect{Upload: true, Redraw: true}

	case controls.ActionReset:
		s.Sim.Reset(s.rng)

	case controls.ActionHelp:
		fmt.Fprint(s.out, controls.HelpBanner(s.Stats.FPS))
		return Effect{}

	case controls.ActionSetRotateAxis:
		s.RotateAxis = a.Axis
		return Effect{}

	case controls.ActionOpenMenu:
		return Effect{OpenMenu: true}

	default:
		return Effect{}
	}
	return Effect{Redraw: true}
}

// ApplyMenu performs the action behind a context menu code. Unknown codes
// are logged and ignored.
func (s *State) ApplyMenu(code int) Effect {
	a, err := controls.ParseMenuCode(code)
	if err != nil {
		s.log.Warn("menu selection ignored", zap.Int("code", code), zap.Error(err))
		return Effect{}
	}
	return s.Apply(a)
}

// ReloadMesh re-reads the mesh file. The GPU buffer needs refreshing only
// when the loaded mesh is the one on screen.
func (s *State) ReloadMesh() Effect {
	if err := s.Models.Reload(); err != nil {
		s.log.Warn("mesh reload failed, keeping previous mesh", zap.Error(err))
		return Effect{}
	}
	s.log.Info("mesh reloaded",
		zap.String("path", s.Models.MeshPath()),
		zap.Int("vertices", s.Models.Get(controls.ModelLoaded).Len()),
	)
	if s.Models.ActiveKind() != controls.ModelLoaded {
		return Effect{}
	}
	return Effect{Upload: true, Redraw: true}
}
