// Package engdebug isolates the debug-build-only check spec.md §5 calls
// for (ownership tracking for non-send resources) behind the "enginedebug"
// build tag, so release builds pay nothing for it. Go has no first-class OS/goroutine identity in the standard
// library; this package's debug variant parses it out of a runtime.Stack
// dump, a well-known (if unglamorous) trick for exactly this purpose.
package engdebug

// Enabled reports whether the engine was built with the enginedebug tag.
// Overridden per build variant in goroutine_debug.go / goroutine_release.go.
var Enabled = enabled

// CurrentGoroutineID returns an identifier stable for the lifetime of the
// calling goroutine. In release builds it always returns 0 and Enabled is
// false, so callers should gate on Enabled rather than comparing IDs alone.
func CurrentGoroutineID() uint64 {
	return currentGoroutineID()
}
