package glbackend

import (
	gl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/goud-engine/core/internal/engerr"
	"github.com/goud-engine/core/render"
)

// CreateBuffer allocates a GPU buffer of bufType/usage and uploads data.
// On a GL error the partial object is destroyed and BufferCreationError is
// returned (spec.md §4.I).
func (b *Backend) CreateBuffer(bufType render.BufferType, usage render.BufferUsage, data []byte) (render.BufferHandle, error) {
	target := bufferTarget(bufType)

	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(target, id)
	if len(data) > 0 {
		gl.BufferData(target, len(data), gl.Ptr(data), bufferUsageHint(usage))
	} else {
		gl.BufferData(target, 0, nil, bufferUsageHint(usage))
	}

	if glerr := gl.GetError(); glerr != gl.NO_ERROR {
		gl.DeleteBuffers(1, &id)
		return render.BufferHandle{}, &engerr.BufferCreationError{Message: "glBufferData failed"}
	}

	h, err := b.bufferAlloc.Allocate()
	if err != nil {
		gl.DeleteBuffers(1, &id)
		return render.BufferHandle{}, &engerr.BufferCreationError{Message: err.Error()}
	}
	b.buffers[h.Index()] = &bufferMeta{id: id, bufType: bufType, usage: usage, size: len(data)}
	return h, nil
}

func (b *Backend) bufferMetaFor(h render.BufferHandle) (*bufferMeta, bool) {
	if !b.bufferAlloc.IsAlive(h) {
		return nil, false
	}
	m, ok := b.buffers[h.Index()]
	return m, ok
}

// UpdateBuffer uploads data at offset, rejecting out-of-bounds updates or a
// stale handle (spec.md Testable Property 13).
func (b *Backend) UpdateBuffer(h render.BufferHandle, offset int, data []byte) error {
	m, ok := b.bufferMetaFor(h)
	if !ok {
		return &engerr.InvalidHandleError{Kind: "buffer"}
	}
	if offset+len(data) > m.size {
		return &engerr.InvalidStateError{Reason: "buffer update out of bounds"}
	}
	target := bufferTarget(m.bufType)
	gl.BindBuffer(target, m.id)
	if len(data) > 0 {
		gl.BufferSubData(target, offset, len(data), gl.Ptr(data))
	}
	return nil
}

// DestroyBuffer tears down the GPU object, clears the bound-record if it
// referenced h, and deallocates the handle (spec.md Testable Property 15).
func (b *Backend) DestroyBuffer(h render.BufferHandle) bool {
	m, ok := b.bufferMetaFor(h)
	if !ok {
		return false
	}
	gl.DeleteBuffers(1, &m.id)
	delete(b.buffers, h.Index())
	b.bufferAlloc.Deallocate(h)

	if b.haveBound[m.bufType] && b.boundBuffers[m.bufType] == h {
		delete(b.haveBound, m.bufType)
		delete(b.boundBuffers, m.bufType)
	}
	return true
}

// IsBufferValid reports whether h currently identifies a live buffer.
func (b *Backend) IsBufferValid(h render.BufferHandle) bool {
	_, ok := b.bufferMetaFor(h)
	return ok
}

// BufferSize returns the buffer's byte size at creation time.
func (b *Backend) BufferSize(h render.BufferHandle) (int, bool) {
	m, ok := b.bufferMetaFor(h)
	if !ok {
		return 0, false
	}
	return m.size, true
}

// BindBuffer binds h to its type's binding point and records it as bound.
func (b *Backend) BindBuffer(h render.BufferHandle) error {
	m, ok := b.bufferMetaFor(h)
	if !ok {
		return &engerr.InvalidHandleError{Kind: "buffer"}
	}
	gl.BindBuffer(bufferTarget(m.bufType), m.id)
	b.boundBuffers[m.bufType] = h
	b.haveBound[m.bufType] = true
	return nil
}

// UnbindBuffer clears the binding record for bufType without affecting any
// other buffer's state.
func (b *Backend) UnbindBuffer(bufType render.BufferType) {
	gl.BindBuffer(bufferTarget(bufType), 0)
	delete(b.haveBound, bufType)
	delete(b.boundBuffers, bufType)
}

// boundBufferOfType reports the currently bound buffer handle for bufType,
// used by draw calls to validate preconditions.
func (b *Backend) boundBufferOfType(bufType render.BufferType) (render.BufferHandle, bool) {
	if !b.haveBound[bufType] {
		return render.BufferHandle{}, false
	}
	return b.boundBuffers[bufType], true
}
