// Package glbackend implements render.Backend against desktop OpenGL 3.3
// core via go-gl/gl, grounded on the teacher's own render/opengl.go and
// render/gl/bind.go (shader compile/link error handling in particular).
package glbackend

import (
	gl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/goud-engine/core/handle"
	"github.com/goud-engine/core/internal/enginelog"
	"github.com/goud-engine/core/render"
)

type bufferMeta struct {
	id      uint32
	bufType render.BufferType
	usage   render.BufferUsage
	size    int
}

type textureMeta struct {
	id     uint32
	width  int
	height int
	format render.TextureFormat
}

type shaderMeta struct {
	program uint32

	// uniformCache is reserved for future use (spec.md §9 Open Questions):
	// get_uniform_location takes &self in the source and cannot cache, so
	// this backend queries GL on every call and never populates the map.
	uniformCache map[string]int32
}

// Backend is the OpenGL 3.3 core implementation of render.Backend. It owns
// one vertex array object for the lifetime of the backend — the spec
// models vertex state as stride/attributes against "the currently bound
// vertex buffer" rather than a first-class VAO resource, so a single VAO
// is sufficient to host that state.
type Backend struct {
	info render.Info
	vao  uint32

	bufferAlloc  *handle.Allocator[render.BufferTag]
	buffers      map[uint32]*bufferMeta
	textureAlloc *handle.Allocator[render.TextureTag]
	textures     map[uint32]*textureMeta
	shaderAlloc  *handle.Allocator[render.ShaderTag]
	shaders      map[uint32]*shaderMeta

	boundBuffers map[render.BufferType]render.BufferHandle
	haveBound    map[render.BufferType]bool
	boundTexture map[int]render.TextureHandle
	haveTexture  map[int]bool
	boundShader  render.ShaderHandle
	haveShader   bool

	logger *enginelog.Logger
}

// Option configures a Backend at construction time.
type Option func(*Backend)

// WithLogger attaches l so the backend can report shader compiler
// diagnostics (compile and link failures).
func WithLogger(l *enginelog.Logger) Option {
	return func(b *Backend) { b.logger = l }
}

// New creates a Backend and queries GL for its identity and capabilities.
// The caller must have an active OpenGL context (see hostwindow) before
// calling New.
func New(opts ...Option) *Backend {
	gl.Init()

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var maxTexUnits, maxTexSize, maxVertexAttrs int32
	gl.GetIntegerv(gl.MAX_TEXTURE_IMAGE_UNITS, &maxTexUnits)
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxTexSize)
	gl.GetIntegerv(gl.MAX_VERTEX_ATTRIBS, &maxVertexAttrs)

	b := &Backend{
		vao:          vao,
		bufferAlloc:  handle.NewAllocator[render.BufferTag](),
		buffers:      make(map[uint32]*bufferMeta),
		textureAlloc: handle.NewAllocator[render.TextureTag](),
		textures:     make(map[uint32]*textureMeta),
		shaderAlloc:  handle.NewAllocator[render.ShaderTag](),
		shaders:      make(map[uint32]*shaderMeta),
		boundBuffers: make(map[render.BufferType]render.BufferHandle),
		haveBound:    make(map[render.BufferType]bool),
		boundTexture: make(map[int]render.TextureHandle),
		haveTexture:  make(map[int]bool),
	}
	b.info = render.Info{
		Name:     "OpenGL",
		Version:  glString(gl.VERSION),
		Vendor:   glString(gl.VENDOR),
		Renderer: glString(gl.RENDERER),
		Capabilities: render.Capabilities{
			MaxTextureUnits:              int(maxTexUnits),
			MaxTextureSize:               int(maxTexSize),
			MaxVertexAttributes:          int(maxVertexAttrs),
			MaxUniformBufferSize:         16384,
			SupportsInstancing:           true,
			SupportsComputeShaders:       false,
			SupportsGeometryShaders:      true,
			SupportsTessellation:         false,
			SupportsMultisampling:        true,
			SupportsAnisotropicFiltering: false,
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func glString(name uint32) string {
	cstr := gl.GoStr(gl.GetString(name))
	return cstr
}

// Info returns the backend's identity and capabilities.
func (b *Backend) Info() render.Info { return b.info }

// BeginFrame brackets the start of a frame; this backend needs no
// per-frame setup since GL commands execute immediately.
func (b *Backend) BeginFrame() {}

// EndFrame brackets the end of a frame.
func (b *Backend) EndFrame() {}

func bufferTarget(t render.BufferType) uint32 {
	switch t {
	case render.BufferVertex:
		return gl.ARRAY_BUFFER
	case render.BufferIndex:
		return gl.ELEMENT_ARRAY_BUFFER
	case render.BufferUniform:
		return gl.UNIFORM_BUFFER
	default:
		return gl.ARRAY_BUFFER
	}
}

func bufferUsageHint(u render.BufferUsage) uint32 {
	switch u {
	case render.UsageStatic:
		return gl.STATIC_DRAW
	case render.UsageDynamic:
		return gl.DYNAMIC_DRAW
	case render.UsageStream:
		return gl.STREAM_DRAW
	default:
		return gl.STATIC_DRAW
	}
}

func topologyMode(t render.Topology) uint32 {
	switch t {
	case render.TopologyPoints:
		return gl.POINTS
	case render.TopologyLines:
		return gl.LINES
	case render.TopologyLineStrip:
		return gl.LINE_STRIP
	case render.TopologyTriangles:
		return gl.TRIANGLES
	case render.TopologyTriangleStrip:
		return gl.TRIANGLE_STRIP
	case render.TopologyTriangleFan:
		return gl.TRIANGLE_FAN
	default:
		return gl.TRIANGLES
	}
}

func blendFactorEnum(f render.BlendFactor) uint32 {
	switch f {
	case render.BlendZero:
		return gl.ZERO
	case render.BlendOne:
		return gl.ONE
	case render.BlendSrcColor:
		return gl.SRC_COLOR
	case render.BlendOneMinusSrcColor:
		return gl.ONE_MINUS_SRC_COLOR
	case render.BlendDstColor:
		return gl.DST_COLOR
	case render.BlendOneMinusDstColor:
		return gl.ONE_MINUS_DST_COLOR
	case render.BlendSrcAlpha:
		return gl.SRC_ALPHA
	case render.BlendOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case render.BlendDstAlpha:
		return gl.DST_ALPHA
	case render.BlendOneMinusDstAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	case render.BlendConstantColor:
		return gl.CONSTANT_COLOR
	case render.BlendOneMinusConstantColor:
		return gl.ONE_MINUS_CONSTANT_COLOR
	case render.BlendConstantAlpha:
		return gl.CONSTANT_ALPHA
	case render.BlendOneMinusConstantAlpha:
		return gl.ONE_MINUS_CONSTANT_ALPHA
	default:
		return gl.ONE
	}
}

func cullFaceEnum(f render.CullFace) uint32 {
	switch f {
	case render.CullFront:
		return gl.FRONT
	case render.CullBack:
		return gl.BACK
	case render.CullFrontAndBack:
		return gl.FRONT_AND_BACK
	default:
		return gl.BACK
	}
}
