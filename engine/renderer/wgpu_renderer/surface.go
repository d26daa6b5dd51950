package wgpu_renderer

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-view/engine/renderer"
	"github.com/cogentcore/webgpu/wgpu"
)

// configureSurface (re)configures the swapchain for the current size and recreates the depth and
// MSAA targets to match. Leaves the surface in the ready state.
func (r *wgpuRendererImpl) configureSurface() error {
	r.surface.Configure(r.adapter, r.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      r.surfaceFormat,
		Width:       uint32(r.width),
		Height:      uint32(r.height),
		PresentMode: r.presentMode,
		AlphaMode:   r.alphaMode,
	})

	r.releaseTargets()

	var err error
	r.depthTexture, r.depthView, err = r.createTarget("Depth Texture", wgpu.TextureFormatDepth24Plus)
	if err != nil {
		return err
	}
	if r.settings.SampleCount > 1 {
		r.msaaTexture, r.msaaView, err = r.createTarget("MSAA Texture", r.surfaceFormat)
		if err != nil {
			return err
		}
	}

	r.state = renderer.SurfaceReady
	return nil
}

// createTarget allocates a render attachment of the surface size. Its sample count matches the
// pipeline so depth and color attachments stay compatible.
func (r *wgpuRendererImpl) createTarget(label string, format wgpu.TextureFormat) (*wgpu.Texture, *wgpu.TextureView, error) {
	tex, err := r.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: label,
		Size: wgpu.Extent3D{
			Width:              uint32(r.width),
			Height:             uint32(r.height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   uint32(r.settings.SampleCount),
		Dimension:     wgpu.TextureDimension2D,
		Format:        format,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", label, err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, nil, fmt.Errorf("create %s view: %w", label, err)
	}
	return tex, view, nil
}

func (r *wgpuRendererImpl) releaseTargets() {
	if r.depthView != nil {
		r.depthView.Release()
		r.depthView = nil
	}
	if r.depthTexture != nil {
		r.depthTexture.Release()
		r.depthTexture = nil
	}
	if r.msaaView != nil {
		r.msaaView.Release()
		r.msaaView = nil
	}
	if r.msaaTexture != nil {
		r.msaaTexture.Release()
		r.msaaTexture = nil
	}
}

// Render acquires the next swapchain texture, draws the mesh with the camera bind group and presents.
// Acquisition failures are classified into a *renderer.SurfaceError and update SurfaceState.
func (r *wgpuRendererImpl) Render() error {
	if r.surface == nil {
		return renderer.NewSurfaceError(renderer.SurfaceErrorLost, errors.New("renderer has been released"))
	}

	surfaceTexture, err := r.surface.GetCurrentTexture()
	if err != nil {
		se := renderer.ClassifySurfaceError(err)
		r.state = se.Kind.State()
		return se
	}
	defer surfaceTexture.Release()

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create surface view: %w", err)
	}
	defer view.Release()

	encoder, err := r.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "Frame Encoder"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	defer encoder.Release()

	bg := r.settings.ClearColor
	color := wgpu.RenderPassColorAttachment{
		View:       view,
		LoadOp:     wgpu.LoadOpClear,
		StoreOp:    wgpu.StoreOpStore,
		ClearValue: wgpu.Color{R: bg[0], G: bg[1], B: bg[2], A: bg[3]},
	}
	// With MSAA the pass draws into the multisampled target and resolves into the swapchain view.
	if r.msaaView != nil {
		color.View = r.msaaView
		color.ResolveTarget = view
		color.StoreOp = wgpu.StoreOpDiscard
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{color},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            r.depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	})
	pass.SetPipeline(r.pipeline)
	pass.SetBindGroup(0, r.cameraBindGroup, nil)
	pass.SetVertexBuffer(0, r.vertexBuffer, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(r.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	pass.DrawIndexed(r.indexCount, 1, 0, 0, 0)
	pass.End()
	pass.Release()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish frame: %w", err)
	}
	defer commandBuffer.Release()

	r.queue.Submit(commandBuffer)
	r.surface.Present()
	r.state = renderer.SurfaceReady
	return nil
}
