// Package assets builds, loads and holds the demo's three models.
package assets

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/bouncy/internal/config"
	"github.com/Faultbox/bouncy/internal/controls"
	"github.com/Faultbox/bouncy/internal/logger"
	"github.com/Faultbox/bouncy/pkg/formats"
	"github.com/Faultbox/bouncy/pkg/mesh"
)

// LoadOFF reads an OFF file and scales it uniformly by scale.
func LoadOFF(path string, scale float32) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mesh %s: %w", path, err)
	}
	defer f.Close()

	off, err := formats.ParseOFF(f)
	if err != nil {
		return nil, fmt.Errorf("parsing mesh %s: %w", path, err)
	}

	m := mesh.FromOFF(off)
	m.Scale(mgl32.Vec4{scale, scale, scale, 1})
	return m, nil
}

// Store holds the cube, sphere and loaded mesh, and which one is active.
type Store struct {
	cfg    config.ModelsConfig
	models [controls.ModelCount]*mesh.Mesh
	active controls.ModelKind
}

// NewStore generates the procedural models and loads the mesh file.
// A mesh file that cannot be loaded leaves the loaded slot empty.
func NewStore(cfg config.ModelsConfig) (*Store, error) {
	sphere, err := mesh.Sphere(cfg.SphereBudget)
	if err != nil {
		return nil, fmt.Errorf("generating sphere: %w", err)
	}

	initial, err := controls.ParseModelKind(cfg.Initial)
	if err != nil {
		return nil, err
	}

	s := &Store{cfg: cfg, active: initial}
	s.models[controls.ModelCube] = mesh.Cube()
	s.models[controls.ModelSphere] = sphere
	s.models[controls.ModelLoaded] = &mesh.Mesh{}

	if err := s.Reload(); err != nil {
		logger.Warn("mesh file not loaded, mesh model will be empty",
			zap.String("path", cfg.MeshPath),
			zap.Error(err),
		)
	}

	for k, m := range s.models {
		logger.Debug("model ready",
			zap.Stringer("model", controls.ModelKind(k)),
			zap.Int("vertices", m.Len()),
		)
	}
	return s, nil
}

// Reload re-reads the mesh file into the loaded slot. On failure the
// previous mesh is kept.
func (s *Store) Reload() error {
	m, err := LoadOFF(s.cfg.MeshPath, s.cfg.MeshScale)
	if err != nil {
		return err
	}
	s.models[controls.ModelLoaded] = m

	lo, hi := m.Bounds()
	logger.Debug("mesh loaded",
		zap.String("path", s.cfg.MeshPath),
		zap.Int("vertices", m.Len()),
		zap.Float32s("min", lo[:]),
		zap.Float32s("max", hi[:]),
	)
	return nil
}

// MeshPath returns the path of the loaded mesh file.
func (s *Store) MeshPath() string {
	return s.cfg.MeshPath
}

// Active returns the active model.
func (s *Store) Active() *mesh.Mesh {
	return s.models[s.active]
}

// ActiveKind returns which model is active.
func (s *Store) ActiveKind() controls.ModelKind {
	return s.active
}

// Get returns the model of the given kind.
func (s *Store) Get(k controls.ModelKind) *mesh.Mesh {
	return s.models[k]
}

// Select makes k the active model and returns it.
func (s *Store) Select(k controls.ModelKind) (*mesh.Mesh, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("no model %d", int(k))
	}
	s.active = k
	return s.Active(), nil
}

// Next advances to the following model and returns it.
func (s *Store) Next() *mesh.Mesh {
	s.active = s.active.Next()
	return s.Active()
}
