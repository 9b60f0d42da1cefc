package mesh

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/bouncy/pkg/formats"
)

func TestFromOFF(t *testing.T) {
	data := `OFF
4 3 0
0 0 0
1 0 0
0 1 0
0 0 1
3 0 1 2
3 3 2 0
3 1 3 2
`
	off, err := formats.ParseOFF(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseOFF failed: %v", err)
	}

	m := FromOFF(off)
	if m.Len() != 9 {
		t.Fatalf("expected 9 vertices, got %d", m.Len())
	}

	for k, face := range off.Faces {
		tri := m.Triangle(k)
		for c, idx := range face {
			p := off.Vertices[idx]
			want := mgl32.Vec4{p[0], p[1], p[2], 1}
			if tri[c] != want {
				t.Errorf("triangle %d corner %d: got %v, want %v", k, c, tri[c], want)
			}
		}
	}
}
