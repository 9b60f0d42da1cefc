// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/bouncy/internal/controls"
	"github.com/Faultbox/bouncy/pkg/mesh"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	World    WorldConfig    `yaml:"world"`
	Sim      SimConfig      `yaml:"sim"`
	Models   ModelsConfig   `yaml:"models"`
	Render   RenderConfig   `yaml:"render"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds window settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// WorldConfig holds the size of the box the body bounces in.
type WorldConfig struct {
	HalfExtents [3]float32 `yaml:"half_extents"` // x, y, z
}

// SimConfig holds simulation settings.
type SimConfig struct {
	PlaySpeed float32 `yaml:"play_speed"`
	Seed      int64   `yaml:"seed"` // 0 seeds from the clock
}

// ModelsConfig holds model generation and loading settings.
type ModelsConfig struct {
	Initial      string  `yaml:"initial"` // cube, sphere or mesh
	SphereBudget int     `yaml:"sphere_budget"`
	MeshPath     string  `yaml:"mesh_path"`
	MeshScale    float32 `yaml:"mesh_scale"`
	Watch        bool    `yaml:"watch"` // reload mesh_path when it changes
}

// RenderConfig holds the initial drawing options.
type RenderConfig struct {
	Wireframe bool `yaml:"wireframe"`
	Color     int  `yaml:"color"` // palette index 0-8
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1024,
			Height:     512,
			Fullscreen: false,
			VSync:      true,
		},
		World: WorldConfig{
			HalfExtents: [3]float32{20, 10, 10},
		},
		Sim: SimConfig{
			PlaySpeed: 1,
			Seed:      0,
		},
		Models: ModelsConfig{
			Initial:      "sphere",
			SphereBudget: 100,
			MeshPath:     "bunny.off",
			MeshScale:    0.1,
			Watch:        false,
		},
		Render: RenderConfig{
			Wireframe: true,
			Color:     0,
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
		},
	}
}

// Validate checks values that would otherwise break the simulation or the
// mesh generators.
func (c *Config) Validate() error {
	for i, h := range c.World.HalfExtents {
		if h <= 1 {
			return fmt.Errorf("%w: world half extent %d must exceed the body size, got %g", ErrInvalidConfig, i, h)
		}
	}
	if c.Sim.PlaySpeed <= 0 {
		return fmt.Errorf("%w: play_speed must be positive, got %g", ErrInvalidConfig, c.Sim.PlaySpeed)
	}
	if _, err := mesh.Sphere(c.Models.SphereBudget); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := controls.ParseModelKind(c.Models.Initial); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Models.MeshScale == 0 {
		return fmt.Errorf("%w: mesh_scale must not be zero", ErrInvalidConfig)
	}
	if c.Render.Color < 0 || c.Render.Color >= controls.PaletteSize {
		return fmt.Errorf("%w: color must be 0-%d, got %d", ErrInvalidConfig, controls.PaletteSize-1, c.Render.Color)
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Graphics.Width, c.Graphics.Height)
	}
	return nil
}
