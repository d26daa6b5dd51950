// Package wgpu_renderer implements renderer.Renderer with WebGPU (wgpu-native) on a window surface.
package wgpu_renderer

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-view/engine/input"
	"github.com/Carmen-Shannon/oxy-view/engine/model"
	"github.com/Carmen-Shannon/oxy-view/engine/renderer"
	"github.com/Carmen-Shannon/oxy-view/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

// SurfaceWindow is a window that can describe its native surface to WebGPU.
type SurfaceWindow interface {
	window.Window

	// SurfaceDescriptor returns the platform surface descriptor of the window.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
}

// Renderer is a renderer.Renderer that owns GPU resources.
type Renderer interface {
	renderer.Renderer

	// Release frees every GPU resource held by the renderer. The renderer must not be used afterwards.
	Release()
}

type wgpuRendererImpl struct {
	*renderer.CameraState

	settings renderer.Settings
	window   SurfaceWindow

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	surface  *wgpu.Surface

	surfaceFormat wgpu.TextureFormat
	alphaMode     wgpu.CompositeAlphaMode
	presentMode   wgpu.PresentMode
	width         int
	height        int
	state         renderer.SurfaceState

	depthTexture *wgpu.Texture
	depthView    *wgpu.TextureView
	msaaTexture  *wgpu.Texture
	msaaView     *wgpu.TextureView

	pipeline        *wgpu.RenderPipeline
	cameraBuffer    *wgpu.Buffer
	cameraBindGroup *wgpu.BindGroup
	vertexBuffer    *wgpu.Buffer
	indexBuffer     *wgpu.Buffer
	indexCount      uint32
}

var _ Renderer = &wgpuRendererImpl{}

// NewRenderer creates the WebGPU device for the window surface, uploads the geometry and builds the
// camera pipeline. The geometry is copied to the GPU once; the renderer keeps no reference to it.
// Must be called on the goroutine that owns the window.
//
// Parameters:
//   - win: the window to present to
//   - geometry: the mesh to draw every frame
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the ready renderer
//   - error: error if the adapter, device, pipeline or buffers cannot be created
func NewRenderer(win SurfaceWindow, geometry *model.Geometry, options ...renderer.RendererBuilderOption) (Renderer, error) {
	runtime.LockOSThread()

	if win == nil {
		return nil, errors.New("window is required")
	}
	if geometry == nil {
		return nil, errors.New("geometry is required")
	}
	if err := geometry.Validate(); err != nil {
		return nil, fmt.Errorf("invalid geometry: %w", err)
	}

	settings := renderer.NewSettings(options...)
	width, height := win.InnerSize()
	r := &wgpuRendererImpl{
		CameraState: renderer.NewCameraState(settings, width, height),
		settings:    settings,
		window:      win,
		width:       width,
		height:      height,
		instance:    wgpu.CreateInstance(nil),
	}

	if err := r.initDevice(); err != nil {
		r.Release()
		return nil, err
	}
	if err := r.configureSurface(); err != nil {
		r.Release()
		return nil, err
	}
	if err := r.initCamera(); err != nil {
		r.Release()
		return nil, err
	}
	if err := r.initPipeline(); err != nil {
		r.Release()
		return nil, err
	}
	if err := r.initMesh(geometry); err != nil {
		r.Release()
		return nil, err
	}
	return r, nil
}

func (r *wgpuRendererImpl) initDevice() error {
	r.surface = r.instance.CreateSurface(r.window.SurfaceDescriptor())

	a, err := r.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: r.settings.ForceFallbackAdapter,
		CompatibleSurface:    r.surface,
	})
	if err != nil {
		return fmt.Errorf("request adapter: %w", err)
	}
	r.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		return fmt.Errorf("request device: %w", err)
	}
	r.device = d
	r.queue = d.GetQueue()

	capabilities := r.surface.GetCapabilities(r.adapter)
	if len(capabilities.Formats) == 0 || len(capabilities.AlphaModes) == 0 {
		return errors.New("surface is not compatible with the adapter")
	}
	r.surfaceFormat = capabilities.Formats[0]
	r.alphaMode = capabilities.AlphaModes[0]
	r.presentMode = choosePresentMode(r.settings.PresentMode, capabilities.PresentModes)
	return nil
}

// choosePresentMode maps the requested mode onto one the surface supports. FIFO is always available.
func choosePresentMode(mode renderer.PresentMode, supported []wgpu.PresentMode) wgpu.PresentMode {
	want := wgpu.PresentModeImmediate
	if mode == renderer.PresentModeVSync {
		want = wgpu.PresentModeFifo
	}
	for _, m := range supported {
		if m == want {
			return want
		}
	}
	return wgpu.PresentModeFifo
}

func (r *wgpuRendererImpl) Input(ev input.Event) bool {
	return r.CameraState.Input(ev)
}

func (r *wgpuRendererImpl) Update() {
	r.CameraState.Update()
	r.queue.WriteBuffer(r.cameraBuffer, 0, r.Uniform.Bytes())
}

func (r *wgpuRendererImpl) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	r.SetAspect(width, height)
	// Resize has no error path; a device that cannot allocate render targets is unusable.
	if err := r.configureSurface(); err != nil {
		panic(err)
	}
}

func (r *wgpuRendererImpl) Size() (int, int) {
	return r.width, r.height
}

func (r *wgpuRendererImpl) Window() window.Window {
	return r.window
}

func (r *wgpuRendererImpl) SurfaceState() renderer.SurfaceState {
	return r.state
}

func (r *wgpuRendererImpl) Release() {
	r.releaseTargets()
	if r.cameraBindGroup != nil {
		r.cameraBindGroup.Release()
		r.cameraBindGroup = nil
	}
	for _, b := range []*wgpu.Buffer{r.cameraBuffer, r.vertexBuffer, r.indexBuffer} {
		if b != nil {
			b.Release()
		}
	}
	r.cameraBuffer, r.vertexBuffer, r.indexBuffer = nil, nil, nil
	if r.pipeline != nil {
		r.pipeline.Release()
		r.pipeline = nil
	}
	if r.surface != nil {
		r.surface.Release()
		r.surface = nil
	}
	if r.queue != nil {
		r.queue.Release()
		r.queue = nil
	}
	if r.device != nil {
		r.device.Release()
		r.device = nil
	}
	if r.adapter != nil {
		r.adapter.Release()
		r.adapter = nil
	}
	if r.instance != nil {
		r.instance.Release()
		r.instance = nil
	}
	r.state = renderer.SurfaceFatal
}
