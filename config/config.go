// Package config loads the viewer configuration from OXY_VIEW_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/Carmen-Shannon/oxy-view/engine"
	"github.com/Carmen-Shannon/oxy-view/engine/camera"
	"github.com/Carmen-Shannon/oxy-view/engine/loader"
	"github.com/Carmen-Shannon/oxy-view/engine/renderer"
	"github.com/Carmen-Shannon/oxy-view/engine/window"
	"github.com/caarlos0/env/v11"
)

// DefaultTitle is used when OXY_VIEW_TITLE is set but empty.
const DefaultTitle = "oxy-view (Alt to release mouse)"

// Config is the complete viewer configuration.
type Config struct {
	// Model is a glTF/GLB file to view. Empty shows the built-in cube.
	Model string `env:"MODEL"`

	Title  string `env:"TITLE" envDefault:"oxy-view (Alt to release mouse)"`
	Width  int    `env:"WIDTH" envDefault:"1280"`
	Height int    `env:"HEIGHT" envDefault:"720"`

	// Position is the starting camera position as x,y,z.
	Position    []float32 `env:"POSITION" envDefault:"0,1,-3" envSeparator:","`
	Speed       float32   `env:"SPEED" envDefault:"0.2"`
	Sensitivity float32   `env:"SENSITIVITY" envDefault:"1.0"`
	PitchLimit  float32   `env:"PITCH_LIMIT" envDefault:"89"`
	FovY        float32   `env:"FOVY" envDefault:"45"`
	ZNear       float32   `env:"ZNEAR" envDefault:"0.1"`
	ZFar        float32   `env:"ZFAR" envDefault:"100"`

	// ZUp remaps loaded models from Z-up to the viewer's Y-up world.
	ZUp     bool `env:"Z_UP" envDefault:"true"`
	Workers int  `env:"WORKERS" envDefault:"4"`

	VSync     bool `env:"VSYNC" envDefault:"false"`
	MSAA      bool `env:"MSAA" envDefault:"false"`
	Profiling bool `env:"PROFILING" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: "OXY_VIEW_"}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the viewer configuration.
//
// Returns:
//   - Config: the configuration
//   - error: error if a variable cannot be parsed or a value is out of range
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range value at once.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if len(c.Position) != 3 {
		errs = append(errs, fmt.Errorf("position needs 3 components, got %d", len(c.Position)))
	}
	if c.FovY <= 0 || c.FovY >= 180 {
		errs = append(errs, fmt.Errorf("fovy %v must be in (0, 180)", c.FovY))
	}
	if c.ZNear <= 0 || c.ZFar <= c.ZNear {
		errs = append(errs, fmt.Errorf("clip planes %v..%v must satisfy 0 < znear < zfar", c.ZNear, c.ZFar))
	}
	if c.PitchLimit < 0 || c.PitchLimit >= 90 {
		errs = append(errs, fmt.Errorf("pitch limit %v must be in [0, 90)", c.PitchLimit))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers %d must be at least 1", c.Workers))
	}
	return errors.Join(errs...)
}

// WindowOptions returns the window options described by the configuration.
func (c Config) WindowOptions() []window.WindowBuilderOption {
	return []window.WindowBuilderOption{
		window.WithTitle(common.Coalesce(c.Title, DefaultTitle)),
		window.WithWidth(c.Width),
		window.WithHeight(c.Height),
	}
}

// LoaderOptions returns the model loader options described by the configuration.
func (c Config) LoaderOptions() []loader.LoaderBuilderOption {
	return []loader.LoaderBuilderOption{
		loader.WithZUpToYUp(c.ZUp),
		loader.WithWorkers(c.Workers),
	}
}

// RendererOptions returns the renderer, camera and movement options described by the configuration.
func (c Config) RendererOptions() []renderer.RendererBuilderOption {
	presentMode := renderer.PresentModeUncapped
	if c.VSync {
		presentMode = renderer.PresentModeVSync
	}
	samples := renderer.MSAAOff
	if c.MSAA {
		samples = renderer.MSAA4x
	}

	cameraOptions := []camera.CameraBuilderOption{
		camera.WithFovY(c.FovY),
		camera.WithClipPlanes(c.ZNear, c.ZFar),
	}
	if len(c.Position) == 3 {
		cameraOptions = append(cameraOptions, camera.WithPosition(c.Position[0], c.Position[1], c.Position[2]))
	}

	return []renderer.RendererBuilderOption{
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(samples),
		renderer.WithCamera(cameraOptions...),
		renderer.WithController(camera.WithSpeed(c.Speed)),
	}
}

// EngineOptions returns the event loop options described by the configuration.
func (c Config) EngineOptions() []engine.EngineBuilderOption {
	return []engine.EngineBuilderOption{
		engine.WithProfiling(c.Profiling),
		engine.WithMouseLook(
			camera.WithSensitivity(c.Sensitivity),
			camera.WithPitchLimit(c.PitchLimit),
		),
	}
}
