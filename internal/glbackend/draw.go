package glbackend

import (
	gl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/goud-engine/core/internal/engerr"
	"github.com/goud-engine/core/render"
)

func attrTypeEnum(t render.VertexAttributeType) (glType uint32, components int32, integer bool) {
	switch t {
	case render.AttrFloat:
		return gl.FLOAT, 1, false
	case render.AttrFloat2:
		return gl.FLOAT, 2, false
	case render.AttrFloat3:
		return gl.FLOAT, 3, false
	case render.AttrFloat4:
		return gl.FLOAT, 4, false
	case render.AttrInt:
		return gl.INT, 1, true
	case render.AttrInt2:
		return gl.INT, 2, true
	case render.AttrInt3:
		return gl.INT, 3, true
	case render.AttrInt4:
		return gl.INT, 4, true
	case render.AttrUInt:
		return gl.UNSIGNED_INT, 1, true
	case render.AttrUInt2:
		return gl.UNSIGNED_INT, 2, true
	case render.AttrUInt3:
		return gl.UNSIGNED_INT, 3, true
	case render.AttrUInt4:
		return gl.UNSIGNED_INT, 4, true
	default:
		return gl.FLOAT, 1, false
	}
}

// SetVertexAttributes enables and configures each attribute against the
// currently bound vertex buffer (spec.md §4.I).
func (b *Backend) SetVertexAttributes(layout render.VertexLayout) error {
	if _, bound := b.boundBufferOfType(render.BufferVertex); !bound {
		return &engerr.InvalidStateError{Reason: "no vertex buffer bound"}
	}
	for _, attr := range layout.Attributes {
		glType, components, integer := attrTypeEnum(attr.Type)
		gl.EnableVertexAttribArray(attr.Location)
		if integer {
			gl.VertexAttribIPointer(attr.Location, components, glType, int32(layout.Stride), gl.PtrOffset(int(attr.ByteOffset)))
		} else {
			gl.VertexAttribPointerWithOffset(attr.Location, components, glType, attr.Normalized, int32(layout.Stride), uintptr(attr.ByteOffset))
		}
	}
	return nil
}

// requireDrawPreconditions validates the shader/vertex-buffer bindings
// every draw call needs.
func (b *Backend) requireDrawPreconditions() error {
	if !b.haveShader {
		return &engerr.InvalidStateError{Reason: "no shader bound"}
	}
	if _, bound := b.boundBufferOfType(render.BufferVertex); !bound {
		return &engerr.InvalidStateError{Reason: "no vertex buffer bound"}
	}
	return nil
}

// DrawArrays issues a non-indexed draw call.
func (b *Backend) DrawArrays(topology render.Topology, first, count int) error {
	if err := b.requireDrawPreconditions(); err != nil {
		return err
	}
	gl.DrawArrays(topologyMode(topology), int32(first), int32(count))
	return nil
}

// DrawIndexed issues a 32-bit indexed draw call; requires a bound index buffer.
func (b *Backend) DrawIndexed(topology render.Topology, count int, byteOffset int) error {
	if err := b.requireDrawPreconditions(); err != nil {
		return err
	}
	if _, bound := b.boundBufferOfType(render.BufferIndex); !bound {
		return &engerr.InvalidStateError{Reason: "no index buffer bound"}
	}
	gl.DrawElements(topologyMode(topology), int32(count), gl.UNSIGNED_INT, gl.PtrOffset(byteOffset))
	return nil
}

// DrawIndexedU16 issues a 16-bit indexed draw call; requires a bound index buffer.
func (b *Backend) DrawIndexedU16(topology render.Topology, count int, byteOffset int) error {
	if err := b.requireDrawPreconditions(); err != nil {
		return err
	}
	if _, bound := b.boundBufferOfType(render.BufferIndex); !bound {
		return &engerr.InvalidStateError{Reason: "no index buffer bound"}
	}
	gl.DrawElements(topologyMode(topology), int32(count), gl.UNSIGNED_SHORT, gl.PtrOffset(byteOffset))
	return nil
}

// DrawArraysInstanced issues an instanced non-indexed draw call; requires
// the instancing capability.
func (b *Backend) DrawArraysInstanced(topology render.Topology, first, count, instances int) error {
	if !b.info.Capabilities.SupportsInstancing {
		return &engerr.BackendNotSupportedError{Feature: "instancing"}
	}
	if err := b.requireDrawPreconditions(); err != nil {
		return err
	}
	gl.DrawArraysInstanced(topologyMode(topology), int32(first), int32(count), int32(instances))
	return nil
}

// DrawIndexedInstanced issues an instanced indexed draw call; requires the
// instancing capability and a bound index buffer.
func (b *Backend) DrawIndexedInstanced(topology render.Topology, count, offset, instances int) error {
	if !b.info.Capabilities.SupportsInstancing {
		return &engerr.BackendNotSupportedError{Feature: "instancing"}
	}
	if err := b.requireDrawPreconditions(); err != nil {
		return err
	}
	if _, bound := b.boundBufferOfType(render.BufferIndex); !bound {
		return &engerr.InvalidStateError{Reason: "no index buffer bound"}
	}
	gl.DrawElementsInstanced(topologyMode(topology), int32(count), gl.UNSIGNED_INT, gl.PtrOffset(offset), int32(instances))
	return nil
}
