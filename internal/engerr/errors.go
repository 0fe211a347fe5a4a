// Package engerr defines the typed error taxonomy shared across the engine
// core. Every fallible operation in the core packages returns one of these
// kinds (or wraps one via fmt.Errorf("%w", ...)) rather than a bare string
// or a panic, per spec.md §7.
package engerr

import "fmt"

// InvalidHandleError reports a handle that is stale (generation mismatch)
// or was never allocated. Never recoverable locally; it signals a logic bug
// in the caller.
type InvalidHandleError struct {
	// Kind names the handle tag (e.g. "buffer", "texture", "entity") for a
	// short, kind-discriminated display string.
	Kind string
}

func (e *InvalidHandleError) Error() string {
	return fmt.Sprintf("invalid %s handle", e.Kind)
}

// InvalidStateError reports that the preconditions of a draw call or
// resource update were not met (e.g. no shader bound, update out of bounds).
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: %s", e.Reason)
}

// BackendNotSupportedError reports a requested operation the active render
// backend's capabilities do not advertise (e.g. instancing).
type BackendNotSupportedError struct {
	Feature string
}

func (e *BackendNotSupportedError) Error() string {
	return fmt.Sprintf("backend does not support %s", e.Feature)
}

// BufferCreationError reports a buffer upload failure at creation time.
type BufferCreationError struct {
	Message string
}

func (e *BufferCreationError) Error() string {
	return fmt.Sprintf("buffer creation failed: %s", e.Message)
}

// TextureCreationError reports a texture allocation failure at creation time.
type TextureCreationError struct {
	Message string
}

func (e *TextureCreationError) Error() string {
	return fmt.Sprintf("texture creation failed: %s", e.Message)
}

// ShaderCompileError reports a GLSL-class compile failure for one stage.
// Log carries the backend's compiler info log verbatim.
type ShaderCompileError struct {
	Stage string
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed:\n%s", e.Stage, e.Log)
}

// ShaderLinkError reports a program link failure. Log carries the backend's
// link info log verbatim.
type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return fmt.Sprintf("shader link failed:\n%s", e.Log)
}

// CyclicHierarchyError reports that transform propagation found a cycle
// reachable from the named entity through the Parent relation. The cycle is
// excluded from propagation; this error is logged, not fatal.
type CyclicHierarchyError struct {
	// EntityIndex and EntityGeneration identify the entity at which the
	// cycle was detected. Kept as plain fields (not the handle package's
	// generic type) to avoid an import cycle between ecs and transform.
	EntityIndex      uint32
	EntityGeneration uint32
}

func (e *CyclicHierarchyError) Error() string {
	return fmt.Sprintf("cyclic hierarchy detected at entity(index=%d, generation=%d)",
		e.EntityIndex, e.EntityGeneration)
}

// InternalError reports registry corruption or a programmer-error condition
// as an error value; the engine does not panic on these conditions in any
// build.
type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("internal error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("internal error: %s", e.Message)
}

func (e *InternalError) Unwrap() error { return e.Cause }

// AssetLoadErrorKind discriminates the AssetLoadError variants of spec.md §6.
type AssetLoadErrorKind int

const (
	AssetNotFound AssetLoadErrorKind = iota
	AssetIoError
	AssetDecodeFailed
	AssetUnsupportedFormat
	AssetDependencyFailed
	AssetCustom
)

func (k AssetLoadErrorKind) String() string {
	switch k {
	case AssetNotFound:
		return "NotFound"
	case AssetIoError:
		return "IoError"
	case AssetDecodeFailed:
		return "DecodeFailed"
	case AssetUnsupportedFormat:
		return "UnsupportedFormat"
	case AssetDependencyFailed:
		return "DependencyFailed"
	case AssetCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// AssetLoadError is the error taxonomy returned by asset.Loader.Load. Errors
// always include the path (or extension/dependency path) that failed, per
// spec.md §7's user-visible failure behavior.
type AssetLoadError struct {
	Kind           AssetLoadErrorKind
	Path           string
	DependencyPath string
	Extension      string
	Message        string
	Cause          error
}

func (e *AssetLoadError) Error() string {
	switch e.Kind {
	case AssetNotFound:
		return fmt.Sprintf("asset not found: %s", e.Path)
	case AssetIoError:
		return fmt.Sprintf("asset io error (%s): %s", e.Path, e.Message)
	case AssetDecodeFailed:
		if e.Path != "" {
			return fmt.Sprintf("asset decode failed (%s): %s", e.Path, e.Message)
		}
		return fmt.Sprintf("asset decode failed: %s", e.Message)
	case AssetUnsupportedFormat:
		return fmt.Sprintf("unsupported asset format: .%s", e.Extension)
	case AssetDependencyFailed:
		return fmt.Sprintf("asset %s: dependency %s failed: %s", e.Path, e.DependencyPath, e.Message)
	case AssetCustom:
		if e.Path != "" {
			return fmt.Sprintf("asset load error (%s): %s", e.Path, e.Message)
		}
		return fmt.Sprintf("asset load error: %s", e.Message)
	default:
		return fmt.Sprintf("asset load error: %s", e.Message)
	}
}

func (e *AssetLoadError) Unwrap() error { return e.Cause }

// InvalidContextError reports an FFI ContextId that is the invalid
// sentinel, out of range, or stale (generation mismatch), per spec.md §6.
type InvalidContextError struct{}

func (e *InvalidContextError) Error() string { return "invalid or destroyed context" }
