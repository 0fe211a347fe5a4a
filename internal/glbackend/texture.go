package glbackend

import (
	"unsafe"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/goud-engine/core/internal/engerr"
	"github.com/goud-engine/core/render"
)

func textureFormatEnums(f render.TextureFormat) (internalFormat int32, format, pixelType uint32) {
	switch f {
	case render.FormatR8:
		return gl.R8, gl.RED, gl.UNSIGNED_BYTE
	case render.FormatRG8:
		return gl.RG8, gl.RG, gl.UNSIGNED_BYTE
	case render.FormatRGB8:
		return gl.RGB8, gl.RGB, gl.UNSIGNED_BYTE
	case render.FormatRGBA8:
		return gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE
	case render.FormatRGBA16F:
		return gl.RGBA16F, gl.RGBA, gl.FLOAT
	case render.FormatRGBA32F:
		return gl.RGBA32F, gl.RGBA, gl.FLOAT
	case render.FormatDepth:
		return gl.DEPTH_COMPONENT32F, gl.DEPTH_COMPONENT, gl.FLOAT
	case render.FormatDepthStencil:
		return gl.DEPTH24_STENCIL8, gl.DEPTH_STENCIL, gl.UNSIGNED_INT_24_8
	default:
		return gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE
	}
}

func textureFilterEnum(f render.TextureFilter) int32 {
	if f == render.FilterNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func textureWrapEnum(w render.TextureWrap) int32 {
	switch w {
	case render.WrapRepeat:
		return gl.REPEAT
	case render.WrapMirroredRepeat:
		return gl.MIRRORED_REPEAT
	case render.WrapClampToEdge:
		return gl.CLAMP_TO_EDGE
	case render.WrapClampToBorder:
		return gl.CLAMP_TO_BORDER
	default:
		return gl.REPEAT
	}
}

// CreateTexture allocates a 2D texture. Empty data is allowed (render
// target case); w==0 or h==0 is rejected (spec.md §4.I).
func (b *Backend) CreateTexture(width, height int, format render.TextureFormat, filter render.TextureFilter, wrap render.TextureWrap, data []byte) (render.TextureHandle, error) {
	if width == 0 || height == 0 {
		return render.TextureHandle{}, &engerr.TextureCreationError{Message: "width and height must be nonzero"}
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	internalFormat, glFormat, pixelType := textureFormatEnums(format)
	var dataPtr unsafe.Pointer
	if len(data) > 0 {
		dataPtr = gl.Ptr(data)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, int32(width), int32(height), 0, glFormat, pixelType, dataPtr)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, textureFilterEnum(filter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, textureFilterEnum(filter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, textureWrapEnum(wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, textureWrapEnum(wrap))

	if glerr := gl.GetError(); glerr != gl.NO_ERROR {
		gl.DeleteTextures(1, &id)
		return render.TextureHandle{}, &engerr.TextureCreationError{Message: "glTexImage2D failed"}
	}

	h, err := b.textureAlloc.Allocate()
	if err != nil {
		gl.DeleteTextures(1, &id)
		return render.TextureHandle{}, &engerr.TextureCreationError{Message: err.Error()}
	}
	b.textures[h.Index()] = &textureMeta{id: id, width: width, height: height, format: format}
	return h, nil
}

func (b *Backend) textureMetaFor(h render.TextureHandle) (*textureMeta, bool) {
	if !b.textureAlloc.IsAlive(h) {
		return nil, false
	}
	m, ok := b.textures[h.Index()]
	return m, ok
}

// UpdateTexture replaces a sub-region. Rejects out-of-bounds regions or a
// data length mismatched to w*h*bytes_per_pixel(format) (spec.md Testable
// Property 14).
func (b *Backend) UpdateTexture(h render.TextureHandle, x, y, w, height int, data []byte) error {
	m, ok := b.textureMetaFor(h)
	if !ok {
		return &engerr.InvalidHandleError{Kind: "texture"}
	}
	if x+w > m.width || y+height > m.height {
		return &engerr.InvalidStateError{Reason: "texture update region exceeds bounds"}
	}
	if len(data) != w*height*m.format.BytesPerPixel() {
		return &engerr.InvalidStateError{Reason: "texture update data length mismatch"}
	}

	gl.BindTexture(gl.TEXTURE_2D, m.id)
	_, glFormat, pixelType := textureFormatEnums(m.format)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, int32(x), int32(y), int32(w), int32(height), glFormat, pixelType, gl.Ptr(data))
	return nil
}

// DestroyTexture tears down the GPU object, clears any bound-unit record
// referencing h, and deallocates the handle.
func (b *Backend) DestroyTexture(h render.TextureHandle) bool {
	m, ok := b.textureMetaFor(h)
	if !ok {
		return false
	}
	gl.DeleteTextures(1, &m.id)
	delete(b.textures, h.Index())
	b.textureAlloc.Deallocate(h)

	for unit, bound := range b.boundTexture {
		if b.haveTexture[unit] && bound == h {
			delete(b.haveTexture, unit)
			delete(b.boundTexture, unit)
		}
	}
	return true
}

// IsTextureValid reports whether h currently identifies a live texture.
func (b *Backend) IsTextureValid(h render.TextureHandle) bool {
	_, ok := b.textureMetaFor(h)
	return ok
}

// TextureSize returns the texture's dimensions at creation time.
func (b *Backend) TextureSize(h render.TextureHandle) (width, height int, ok bool) {
	m, found := b.textureMetaFor(h)
	if !found {
		return 0, 0, false
	}
	return m.width, m.height, true
}

// BindTexture binds h to texture unit, rejecting unit >= the backend's
// MaxTextureUnits capability.
func (b *Backend) BindTexture(h render.TextureHandle, unit int) error {
	if unit >= b.info.Capabilities.MaxTextureUnits {
		return &engerr.BackendNotSupportedError{Feature: "texture unit beyond MaxTextureUnits"}
	}
	m, ok := b.textureMetaFor(h)
	if !ok {
		return &engerr.InvalidHandleError{Kind: "texture"}
	}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, m.id)
	b.boundTexture[unit] = h
	b.haveTexture[unit] = true
	return nil
}

// UnbindTexture clears unit's binding record.
func (b *Backend) UnbindTexture(unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	delete(b.haveTexture, unit)
	delete(b.boundTexture, unit)
}
