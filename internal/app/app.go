package app

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/bouncy/internal/assets"
	"github.com/Faultbox/bouncy/internal/config"
	"github.com/Faultbox/bouncy/internal/controls"
	"github.com/Faultbox/bouncy/internal/engine/input"
	"github.com/Faultbox/bouncy/internal/engine/renderer"
	"github.com/Faultbox/bouncy/internal/engine/window"
	"github.com/Faultbox/bouncy/internal/logger"
)

// Title is the window title.
const Title = "Bouncy!"

// App is the running demo.
type App struct {
	cfg      *config.Config
	state    *State
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	watcher  *assets.Watcher
	log      *zap.Logger

	start  time.Time
	redraw bool
}

// New creates the window, the renderer and the demo state.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.log.Debug("random seed", zap.Int64("seed", seed))

	var err error
	a.state, err = NewState(cfg, rand.New(rand.NewSource(seed)), os.Stdout, a.log)
	if err != nil {
		return nil, fmt.Errorf("failed to create state: %w", err)
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	w, h := a.window.GetSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      w,
		Height:     h,
		Projection: a.state.Sim.World.Projection(),
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	a.renderer.Upload(a.state.Mesh())

	a.input = input.New()

	if cfg.Models.Watch {
		a.watcher, err = assets.Watch(cfg.Models.MeshPath)
		if err != nil {
			a.log.Warn("mesh hot reload disabled", zap.Error(err))
		}
	}

	a.log.Info("demo initialized",
		zap.Stringer("model", a.state.Models.ActiveKind()),
		zap.Float32("speed", a.state.PlaySpeed),
	)
	return a, nil
}

// Run drives input, physics and rendering until the user quits.
func (a *App) Run() error {
	a.start = time.Now()
	a.redraw = true
	var last time.Time

	a.log.Info("starting frame loop")
	for {
		// 1. Input
		if a.input.Update() {
			return nil
		}
		for _, ev := range a.input.Events() {
			if a.handleEvent(ev) {
				return nil
			}
		}

		// 2. Mesh file changes
		a.pollWatcher()

		// 3. Physics
		now := time.Now()
		var dt float64
		if !last.IsZero() {
			dt = now.Sub(last).Seconds()
		}
		last = now
		if a.state.Tick(dt) {
			a.redraw = true
		}

		// 4. Render
		if !a.redraw {
			sdl.Delay(1)
			continue
		}
		a.draw()
		a.window.SwapBuffers()
		a.redraw = false
	}
}

// handleEvent applies one input event. It returns true when the demo
// should exit.
func (a *App) handleEvent(ev input.Event) bool {
	switch ev.Type {
	case input.EventQuit:
		return true
	case input.EventWindowResize:
		a.renderer.Resize(ev.Width, ev.Height)
		a.redraw = true
	case input.EventWindowExposed:
		a.redraw = true
	case input.EventKeyDown:
		return a.apply(a.state.Apply(controls.KeyAction(ev.Key)))
	case input.EventMouseDown:
		for _, act := range controls.MouseActions(ev.Button) {
			if a.apply(a.state.Apply(act)) {
				return true
			}
		}
	}
	return false
}

// apply carries out an effect. It returns true on quit.
func (a *App) apply(e Effect) bool {
	if e.Quit {
		a.log.Info("quit requested")
		return true
	}
	if e.Upload {
		a.renderer.Upload(a.state.Mesh())
	}
	if e.Redraw {
		a.redraw = true
	}
	if e.OpenMenu {
		code, ok, err := a.window.ShowMenu(controls.ContextMenu())
		if err != nil {
			a.log.Warn("context menu failed", zap.Error(err))
			return false
		}
		if ok {
			return a.apply(a.state.ApplyMenu(code))
		}
	}
	return false
}

func (a *App) pollWatcher() {
	if a.watcher == nil {
		return
	}
	select {
	case <-a.watcher.Changes():
		a.apply(a.state.ReloadMesh())
	default:
	}
}

func (a *App) draw() {
	a.renderer.Draw(renderer.Frame{
		ModelView: a.state.Sim.Body.ModelView(),
		Color:     a.state.ColorValue(),
		Time:      float32(time.Since(a.start).Seconds()),
		Wireframe: a.state.Wireframe,
	})
}

// Close releases the watcher, the renderer and the window.
func (a *App) Close() {
	a.log.Info("closing demo", zap.Int("frames", a.state.Stats.Frames), zap.Float64("fps", a.state.Stats.FPS))

	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("closing mesh watcher", zap.Error(err))
		}
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
