package glbackend

import (
	gl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/goud-engine/core/render"
)

// SetClearColor sets the color buffer's clear value.
func (b *Backend) SetClearColor(r, g, b2, a float32) { gl.ClearColor(r, g, b2, a) }

// ClearColor clears only the color buffer.
func (b *Backend) ClearColor() error {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	return nil
}

// ClearDepth clears only the depth buffer.
func (b *Backend) ClearDepth() error {
	gl.Clear(gl.DEPTH_BUFFER_BIT)
	return nil
}

// Clear clears both the color and depth buffers.
func (b *Backend) Clear() error {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	return nil
}

// SetViewport sets the GL viewport rectangle.
func (b *Backend) SetViewport(x, y, w, h int) {
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
}

// EnableDepthTest enables GL_DEPTH_TEST.
func (b *Backend) EnableDepthTest() { gl.Enable(gl.DEPTH_TEST) }

// DisableDepthTest disables GL_DEPTH_TEST.
func (b *Backend) DisableDepthTest() { gl.Disable(gl.DEPTH_TEST) }

// EnableBlending enables GL_BLEND.
func (b *Backend) EnableBlending() { gl.Enable(gl.BLEND) }

// DisableBlending disables GL_BLEND.
func (b *Backend) DisableBlending() { gl.Disable(gl.BLEND) }

// SetBlendFunc sets the source and destination blend factors.
func (b *Backend) SetBlendFunc(src, dst render.BlendFactor) {
	gl.BlendFunc(blendFactorEnum(src), blendFactorEnum(dst))
}

// EnableCulling enables GL_CULL_FACE.
func (b *Backend) EnableCulling() { gl.Enable(gl.CULL_FACE) }

// DisableCulling disables GL_CULL_FACE.
func (b *Backend) DisableCulling() { gl.Disable(gl.CULL_FACE) }

// SetCullFace selects which face(s) are culled.
func (b *Backend) SetCullFace(face render.CullFace) { gl.CullFace(cullFaceEnum(face)) }
