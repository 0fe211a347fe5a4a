package render

// Capabilities advertises the limits and optional features the active
// backend supports (spec.md §4.I). Draw calls requiring an unsupported
// capability return BackendNotSupportedError.
type Capabilities struct {
	MaxTextureUnits              int
	MaxTextureSize               int
	MaxVertexAttributes          int
	MaxUniformBufferSize         int
	SupportsInstancing           bool
	SupportsComputeShaders       bool
	SupportsGeometryShaders      bool
	SupportsTessellation         bool
	SupportsMultisampling        bool
	SupportsAnisotropicFiltering bool
}

// Info describes the active backend's identity (spec.md §4.I "backend
// identity").
type Info struct {
	Name         string
	Version      string
	Vendor       string
	Renderer     string
	Capabilities Capabilities
}

// Backend is the graphics API abstraction every concrete implementation
// (OpenGL, ...) satisfies. All fallible operations return a typed error
// from internal/engerr rather than panicking (spec.md §7).
//
// Implementations internally track, per binding point, the last-bound
// resource id; binding a new handle replaces it, and destroying the
// currently bound handle clears the record to "none" (spec.md Testable
// Property 15).
type Backend interface {
	Info() Info

	BeginFrame()
	EndFrame()

	SetClearColor(r, g, b, a float32)
	ClearColor() error
	ClearDepth() error
	Clear() error
	SetViewport(x, y, w, h int)

	EnableDepthTest()
	DisableDepthTest()
	EnableBlending()
	DisableBlending()
	SetBlendFunc(src, dst BlendFactor)
	EnableCulling()
	DisableCulling()
	SetCullFace(face CullFace)

	CreateBuffer(bufType BufferType, usage BufferUsage, data []byte) (BufferHandle, error)
	UpdateBuffer(h BufferHandle, offset int, data []byte) error
	DestroyBuffer(h BufferHandle) bool
	IsBufferValid(h BufferHandle) bool
	BufferSize(h BufferHandle) (int, bool)
	BindBuffer(h BufferHandle) error
	UnbindBuffer(bufType BufferType)

	CreateTexture(width, height int, format TextureFormat, filter TextureFilter, wrap TextureWrap, data []byte) (TextureHandle, error)
	UpdateTexture(h TextureHandle, x, y, w, height int, data []byte) error
	DestroyTexture(h TextureHandle) bool
	IsTextureValid(h TextureHandle) bool
	TextureSize(h TextureHandle) (width, height int, ok bool)
	BindTexture(h TextureHandle, unit int) error
	UnbindTexture(unit int)

	CreateShader(vertexSrc, fragmentSrc string) (ShaderHandle, error)
	DestroyShader(h ShaderHandle) bool
	IsShaderValid(h ShaderHandle) bool
	BindShader(h ShaderHandle) error
	UnbindShader()
	GetUniformLocation(h ShaderHandle, name string) (int32, bool)
	SetUniformInt(location int32, v int32)
	SetUniformFloat(location int32, v float32)
	SetUniformVec2(location int32, x, y float32)
	SetUniformVec3(location int32, x, y, z float32)
	SetUniformVec4(location int32, x, y, z, w float32)
	SetUniformMat4(location int32, m [16]float32)

	SetVertexAttributes(layout VertexLayout) error

	DrawArrays(topology Topology, first, count int) error
	DrawIndexed(topology Topology, count int, byteOffset int) error
	DrawIndexedU16(topology Topology, count int, byteOffset int) error
	DrawArraysInstanced(topology Topology, first, count, instances int) error
	DrawIndexedInstanced(topology Topology, count, offset, instances int) error
}
