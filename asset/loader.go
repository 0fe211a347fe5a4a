// Package asset defines the boundary between the engine core and codec
// collaborators (spec.md §6): a Loader trait and the AssetLoadError
// taxonomy it returns. The core ships no codec bodies beyond one worked
// example (internal/assets' bitmap loader); every other format is a
// caller-supplied collaborator satisfying this package's Loader interface.
// Grounded on original_source/goud_engine/src/assets/loader.rs's
// AssetLoader trait and LoadContext, and on the teacher's
// engine/loader/loader_backend.go interface-boundary shape.
package asset

import (
	"path/filepath"
	"strings"
)

// LoadContext carries the path of the asset currently being decoded, for
// loaders that need it in error messages or extension dispatch.
type LoadContext struct {
	path string
}

// NewLoadContext creates a LoadContext for path.
func NewLoadContext(path string) *LoadContext {
	return &LoadContext{path: path}
}

// Path returns the full asset path as given to NewLoadContext.
func (c *LoadContext) Path() string { return c.path }

// Extension returns the lowercase file extension without its leading dot
// (spec.md §6: "lowercase extension list without leading dot").
func (c *LoadContext) Extension() string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(c.path), "."))
}

// FileName returns the base name of the asset path.
func (c *LoadContext) FileName() string { return filepath.Base(c.path) }

// Loader decodes raw bytes into an asset of type A. A is the concrete type
// this loader produces; settings is loader-specific configuration passed
// as any since each loader defines its own settings shape (pass nil for a
// loader with none).
type Loader[A any] interface {
	// Extensions returns the lowercase extensions (no leading dot) this
	// loader handles.
	Extensions() []string

	// Load decodes data into an asset, or returns an *engerr.AssetLoadError
	// describing why it could not.
	Load(data []byte, settings any, ctx *LoadContext) (A, error)
}

// SupportsExtension reports whether ext (case-insensitive, no leading dot)
// is one of l.Extensions().
func SupportsExtension[A any](l Loader[A], ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, e := range l.Extensions() {
		if e == ext {
			return true
		}
	}
	return false
}
