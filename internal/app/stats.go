package app

// MaxFrameTime is the longest frame, in seconds, still treated as real.
// Longer gaps come from clock glitches or the process being suspended.
const MaxFrameTime = 50

// FrameStats tracks a running average of frames per second. Every valid
// frame carries the same weight, so the average settles over a long run.
type FrameStats struct {
	Frames int
	FPS    float64
}

// Tick records a frame that took dt seconds. It returns false, leaving the
// stats untouched, when dt is not a usable sample.
func (s *FrameStats) Tick(dt float64) bool {
	if dt <= 0 || dt > MaxFrameTime {
		return false
	}
	s.Frames++
	n := float64(s.Frames)
	s.FPS = (s.FPS*n + 1/dt) / (n + 1)
	return true
}
