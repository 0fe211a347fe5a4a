//go:build enginedebug

package engdebug

import (
	"bytes"
	"runtime"
	"strconv"
)

const enabled = true

// currentGoroutineID parses "goroutine NNN [running]:" off the top of a
// runtime.Stack dump for the calling goroutine only (buf sized generously
// so the header always fits without truncation).
func currentGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]

	const prefix = "goroutine "
	i := bytes.Index(b, []byte(prefix))
	if i < 0 {
		return 0
	}
	b = b[i+len(prefix):]
	j := bytes.IndexByte(b, ' ')
	if j < 0 {
		return 0
	}
	id, err := strconv.ParseUint(string(b[:j]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
