package app

import (
	"math"
	"testing"
)

func TestFrameStatsRejectsBadSamples(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
	}{
		{"zero", 0},
		{"negative", -0.01},
		{"too long", MaxFrameTime + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FrameStats{Frames: 4, FPS: 60}
			if s.Tick(tt.dt) {
				t.Errorf("Tick(%v) accepted", tt.dt)
			}
			if s.Frames != 4 || s.FPS != 60 {
				t.Errorf("stats changed: %+v", s)
			}
		})
	}
}

func TestFrameStatsAverage(t *testing.T) {
	var s FrameStats

	if !s.Tick(0.5) {
		t.Fatal("Tick(0.5) rejected")
	}
	// (0*1 + 2) / 2
	if s.Frames != 1 || math.Abs(s.FPS-1) > 1e-9 {
		t.Fatalf("after first frame: %+v", s)
	}

	s.Tick(0.25)
	// (1*2 + 4) / 3
	if s.Frames != 2 || math.Abs(s.FPS-2) > 1e-9 {
		t.Errorf("after second frame: %+v", s)
	}
}

func TestFrameStatsMaxFrameTimeAccepted(t *testing.T) {
	var s FrameStats
	if !s.Tick(MaxFrameTime) {
		t.Error("frame of exactly MaxFrameTime rejected")
	}
}
