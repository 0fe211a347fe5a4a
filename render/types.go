// Package render defines the graphics backend abstraction (spec.md
// §3.9/§4.I): a vocabulary of buffer/texture/shader enums, a capability
// struct, and the Backend interface a concrete API (OpenGL, ...) implements.
// This package is API-agnostic; internal/glbackend supplies the OpenGL-class
// implementation.
package render

import "github.com/goud-engine/core/handle"

// BufferTag, TextureTag, and ShaderTag are the phantom tags distinguishing
// the three handle spaces a Backend allocates into.
type BufferTag struct{}
type TextureTag struct{}
type ShaderTag struct{}

// BufferHandle, TextureHandle, and ShaderHandle identify GPU resources
// without exposing the backend's native id.
type BufferHandle = handle.Handle[BufferTag]
type TextureHandle = handle.Handle[TextureTag]
type ShaderHandle = handle.Handle[ShaderTag]

// BufferType distinguishes the binding target a buffer was created for.
type BufferType int

const (
	BufferVertex BufferType = iota
	BufferIndex
	BufferUniform
)

// BufferUsage is a hint to the backend about expected update frequency.
type BufferUsage int

const (
	UsageStatic BufferUsage = iota
	UsageDynamic
	UsageStream
)

// TextureFormat enumerates the pixel formats create_texture accepts.
type TextureFormat int

const (
	FormatR8 TextureFormat = iota
	FormatRG8
	FormatRGB8
	FormatRGBA8
	FormatRGBA16F
	FormatRGBA32F
	FormatDepth
	FormatDepthStencil
)

// BytesPerPixel returns the storage size of one pixel in f, used to
// validate update_texture's data length (spec.md Testable Property 14).
func (f TextureFormat) BytesPerPixel() int {
	switch f {
	case FormatR8:
		return 1
	case FormatRG8:
		return 2
	case FormatRGB8:
		return 3
	case FormatRGBA8:
		return 4
	case FormatRGBA16F:
		return 8
	case FormatRGBA32F:
		return 16
	case FormatDepth:
		return 4
	case FormatDepthStencil:
		return 4
	default:
		return 0
	}
}

// TextureFilter is applied to both minification and magnification.
type TextureFilter int

const (
	FilterNearest TextureFilter = iota
	FilterLinear
)

// TextureWrap is applied to both the S and T texture coordinate axes.
type TextureWrap int

const (
	WrapRepeat TextureWrap = iota
	WrapMirroredRepeat
	WrapClampToEdge
	WrapClampToBorder
)

// BlendFactor enumerates the fixed-function blend equation operands.
type BlendFactor int

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcColor
	BlendOneMinusSrcColor
	BlendDstColor
	BlendOneMinusDstColor
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstAlpha
	BlendOneMinusDstAlpha
	BlendConstantColor
	BlendOneMinusConstantColor
	BlendConstantAlpha
	BlendOneMinusConstantAlpha
)

// CullFace selects which winding-order face(s) are culled.
type CullFace int

const (
	CullFront CullFace = iota
	CullBack
	CullFrontAndBack
)

// Topology enumerates the primitive assembly modes draw calls accept.
type Topology int

const (
	TopologyPoints Topology = iota
	TopologyLines
	TopologyLineStrip
	TopologyTriangles
	TopologyTriangleStrip
	TopologyTriangleFan
)

// VertexAttributeType enumerates the per-attribute component layouts
// set_vertex_attributes accepts.
type VertexAttributeType int

const (
	AttrFloat VertexAttributeType = iota
	AttrFloat2
	AttrFloat3
	AttrFloat4
	AttrInt
	AttrInt2
	AttrInt3
	AttrInt4
	AttrUInt
	AttrUInt2
	AttrUInt3
	AttrUInt4
)

// VertexAttribute describes one attribute within a VertexLayout.
type VertexAttribute struct {
	Location   uint32
	Type       VertexAttributeType
	ByteOffset uint32
	Normalized bool
}

// VertexLayout describes the stride and attribute set of the currently
// bound vertex buffer, consumed by SetVertexAttributes.
type VertexLayout struct {
	Stride     uint32
	Attributes []VertexAttribute
}
