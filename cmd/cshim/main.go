// Command cshim builds the engine core as a C-callable shared library via
// cgo's //export mechanism. It is gated behind the "cshim" build tag (and
// requires CGO_ENABLED=1) so `go build ./...` on the pure-Go module never
// needs a C toolchain; only `go build -tags cshim -buildmode=c-shared`
// does. Grounded on original_source/goud_engine/src/ffi/context.rs, whose
// goud_context_create/goud_context_destroy symbol names are preserved
// verbatim (spec.md §6).
//
//go:build cshim

package main

/*
#include <stdint.h>
*/
import "C"

import (
	"github.com/goud-engine/core/ffi"
)

var registry = ffi.NewRegistry()

// goud_context_create allocates a new engine instance and returns its id,
// or the all-bits-set sentinel on failure (index space exhausted).
//
//export goud_context_create
func goud_context_create() C.uint64_t {
	id, err := registry.Create()
	if err != nil {
		return C.uint64_t(ffi.InvalidContextId)
	}
	return C.uint64_t(id)
}

// goud_context_destroy releases a context. Returns 0 on success, nonzero
// if id was already invalid or stale (spec.md §6).
//
//export goud_context_destroy
func goud_context_destroy(id C.uint64_t) C.int {
	if err := registry.Destroy(ffi.ContextId(id)); err != nil {
		return 1
	}
	return 0
}

// goud_context_is_valid reports whether id currently identifies a live
// context (1) or not (0).
//
//export goud_context_is_valid
func goud_context_is_valid(id C.uint64_t) C.int {
	if registry.IsValid(ffi.ContextId(id)) {
		return 1
	}
	return 0
}

func main() {}
