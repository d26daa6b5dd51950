package main

import (
	"log"
	"runtime"

	"github.com/Carmen-Shannon/oxy-view/config"
	"github.com/Carmen-Shannon/oxy-view/engine"
	"github.com/Carmen-Shannon/oxy-view/engine/loader"
	"github.com/Carmen-Shannon/oxy-view/engine/model"
	"github.com/Carmen-Shannon/oxy-view/engine/renderer/wgpu_renderer"
	"github.com/Carmen-Shannon/oxy-view/engine/window/glfw_window"
)

func init() {
	// GLFW and the WebGPU surface must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	geometry, err := loadGeometry(cfg)
	if err != nil {
		log.Fatalf("load model: %v", err)
	}
	log.Printf("[Main] %s: %d vertices, %d indices", geometry.Label, len(geometry.Vertices), geometry.IndexCount())

	win, err := glfw_window.NewWindow(cfg.WindowOptions()...)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}
	defer win.Close()

	r, err := wgpu_renderer.NewRenderer(win, geometry, cfg.RendererOptions()...)
	if err != nil {
		log.Fatalf("create renderer: %v", err)
	}
	defer r.Release()

	if err := engine.NewEngine(r, cfg.EngineOptions()...).Run(); err != nil {
		log.Printf("[Main] %v", err)
	}
}

func loadGeometry(cfg config.Config) (*model.Geometry, error) {
	if cfg.Model == "" {
		return loader.Cube(), nil
	}
	return loader.NewLoader(cfg.LoaderOptions()...).Load(cfg.Model)
}
