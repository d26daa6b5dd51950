package wgpu_renderer

import (
	_ "embed"
	"fmt"

	"github.com/Carmen-Shannon/oxy-view/engine/model"
	"github.com/Carmen-Shannon/oxy-view/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/mesh.wgsl
var meshShaderBody string

// meshShaderSource pre-processes the mesh shader and locates the camera uniform binding.
func meshShaderSource() (string, shader.Annotation, error) {
	p := shader.NewPreProcessor()
	src, err := p.Process(meshShaderBody)
	if err != nil {
		return "", shader.Annotation{}, fmt.Errorf("preprocess mesh shader: %w", err)
	}
	decl, ok := shader.Find(p.Declarations(), shader.AnnotationArgCamera)
	if !ok || !decl.IsUniform() {
		return "", shader.Annotation{}, fmt.Errorf("mesh shader declares no camera uniform")
	}
	return src, decl, nil
}

// vertexBufferLayout describes model.GPUVertex: position at location 0, texture coordinates at 1.
func vertexBufferLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: model.GPUVertexSize,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1},
		},
	}
}

// initCamera creates the camera uniform buffer and its bind group layout and bind group,
// seeded with the transform staged by the camera state.
func (r *wgpuRendererImpl) initCamera() error {
	buf, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Camera Buffer",
		Size:  uint64(r.Uniform.Size()),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create camera buffer: %w", err)
	}
	r.cameraBuffer = buf
	r.queue.WriteBuffer(buf, 0, r.Uniform.Bytes())
	return nil
}

func (r *wgpuRendererImpl) initPipeline() error {
	code, cameraDecl, err := meshShaderSource()
	if err != nil {
		return err
	}
	if *cameraDecl.Group != 0 {
		return fmt.Errorf("camera uniform must be in group 0, declared in group %d", *cameraDecl.Group)
	}
	cameraBinding := uint32(*cameraDecl.Binding)

	module, err := r.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Mesh Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: code,
		},
	})
	if err != nil {
		return fmt.Errorf("create shader module: %w", err)
	}
	defer module.Release()

	layoutEntry := wgpu.BindGroupLayoutEntry{
		Binding:    cameraBinding,
		Visibility: wgpu.ShaderStageVertex,
	}
	layoutEntry.Buffer.Type = wgpu.BufferBindingTypeUniform
	layoutEntry.Buffer.MinBindingSize = uint64(r.Uniform.Size())

	bindGroupLayout, err := r.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   "Camera Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{layoutEntry},
	})
	if err != nil {
		return fmt.Errorf("create camera bind group layout: %w", err)
	}
	defer bindGroupLayout.Release()

	r.cameraBindGroup, err = r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Camera Bind Group",
		Layout: bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{{
			Binding: cameraBinding,
			Buffer:  r.cameraBuffer,
			Offset:  0,
			Size:    wgpu.WholeSize,
		}},
	})
	if err != nil {
		return fmt.Errorf("create camera bind group: %w", err)
	}

	pipelineLayout, err := r.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Mesh Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{bindGroupLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	defer pipelineLayout.Release()

	r.pipeline, err = r.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Mesh Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers:    []wgpu.VertexBufferLayout{vertexBufferLayout()},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    r.surfaceFormat,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		// Loaded meshes may be mirrored by the axis remap, so both windings are drawn.
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: uint32(r.settings.SampleCount),
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create render pipeline: %w", err)
	}
	return nil
}

// initMesh uploads the geometry into vertex and index buffers.
func (r *wgpuRendererImpl) initMesh(g *model.Geometry) error {
	vertexData, indexData := g.VertexBytes(), g.IndexBytes()

	vb, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: g.Label + " Vertex Buffer",
		Size:  uint64(len(vertexData)),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create vertex buffer: %w", err)
	}
	r.vertexBuffer = vb
	r.queue.WriteBuffer(vb, 0, vertexData)

	ib, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: g.Label + " Index Buffer",
		Size:  uint64(len(indexData)),
		Usage: wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create index buffer: %w", err)
	}
	r.indexBuffer = ib
	r.queue.WriteBuffer(ib, 0, indexData)
	r.indexCount = g.IndexCount()
	return nil
}
