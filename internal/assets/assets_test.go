package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/bouncy/internal/config"
	"github.com/Faultbox/bouncy/internal/controls"
	"github.com/Faultbox/bouncy/pkg/mesh"
)

const triangleOFF = `OFF
3 1 0
10 0 0
0 10 0
0 0 10
3 0 1 2
`

func writeMesh(t *testing.T, dir, data string) string {
	t.Helper()
	path := filepath.Join(dir, "model.off")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write mesh: %v", err)
	}
	return path
}

func testModelsConfig(path string) config.ModelsConfig {
	cfg := config.Default().Models
	cfg.MeshPath = path
	return cfg
}

func TestLoadOFFScales(t *testing.T) {
	path := writeMesh(t, t.TempDir(), triangleOFF)

	m, err := LoadOFF(path, 0.1)
	if err != nil {
		t.Fatalf("LoadOFF failed: %v", err)
	}
	if m.Len() != 3 {
		t.Fatalf("expected 3 vertices, got %d", m.Len())
	}
	want := mgl32.Vec4{1, 0, 0, 1}
	if !m.Vertices[0].ApproxEqual(want) {
		t.Errorf("vertex 0 = %v, want %v", m.Vertices[0], want)
	}

	lo, hi := m.Bounds()
	if !lo.ApproxEqual(mgl32.Vec3{0, 0, 0}) || !hi.ApproxEqual(mgl32.Vec3{1, 1, 1}) {
		t.Errorf("scaled bounds = %v..%v, want 0..1", lo, hi)
	}
}

func TestLoadOFFMissing(t *testing.T) {
	if _, err := LoadOFF(filepath.Join(t.TempDir(), "nope.off"), 1); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNewStore(t *testing.T) {
	path := writeMesh(t, t.TempDir(), triangleOFF)

	s, err := NewStore(testModelsConfig(path))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if s.ActiveKind() != controls.ModelSphere {
		t.Errorf("expected sphere active by default, got %s", s.ActiveKind())
	}
	if got := s.Get(controls.ModelCube).Len(); got != mesh.CubeVertexCount {
		t.Errorf("cube has %d vertices", got)
	}
	if got := s.Get(controls.ModelSphere).Len(); got != mesh.SphereVertexCount(9, 9) {
		t.Errorf("sphere has %d vertices", got)
	}
	if got := s.Get(controls.ModelLoaded).Len(); got != 3 {
		t.Errorf("loaded mesh has %d vertices", got)
	}
}

func TestNewStoreMissingMesh(t *testing.T) {
	s, err := NewStore(testModelsConfig(filepath.Join(t.TempDir(), "missing.off")))
	if err != nil {
		t.Fatalf("missing mesh should not fail the store: %v", err)
	}
	if s.Get(controls.ModelLoaded).Len() != 0 {
		t.Error("expected empty loaded mesh")
	}
}

func TestStoreCycle(t *testing.T) {
	cfg := testModelsConfig("")
	cfg.Initial = "cube"
	s, err := NewStore(cfg)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	want := []controls.ModelKind{controls.ModelSphere, controls.ModelLoaded, controls.ModelCube}
	for _, k := range want {
		m := s.Next()
		if s.ActiveKind() != k {
			t.Errorf("expected %s, got %s", k, s.ActiveKind())
		}
		if m != s.Get(k) {
			t.Errorf("Next returned the wrong mesh for %s", k)
		}
	}

	if _, err := s.Select(controls.ModelKind(5)); err == nil {
		t.Error("expected error selecting model 5")
	}
	if m, err := s.Select(controls.ModelLoaded); err != nil || m != s.Active() {
		t.Errorf("Select(ModelLoaded) = %v, %v", m, err)
	}
}

func TestReloadKeepsPreviousOnError(t *testing.T) {
	dir := t.TempDir()
	path := writeMesh(t, dir, triangleOFF)

	s, err := NewStore(testModelsConfig(path))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	before := s.Get(controls.ModelLoaded)

	writeMesh(t, dir, "OFF 3 1 0 garbage")
	if err := s.Reload(); err == nil {
		t.Fatal("expected reload of a broken file to fail")
	}
	if s.Get(controls.ModelLoaded) != before {
		t.Error("failed reload replaced the mesh")
	}
}

func TestWatcherReportsWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeMesh(t, dir, triangleOFF)

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	writeMesh(t, dir, triangleOFF)

	select {
	case got := <-w.Changes():
		if filepath.Base(got) != "model.off" {
			t.Errorf("change reported for %s", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}
