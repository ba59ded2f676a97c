package testsupport

import (
	"bytes"
	"testing"
)

// WriteJunk writes size bytes of a repeating pattern that no metadata reader
// recognizes. A size <= 0 writes a single byte.
func WriteJunk(t testing.TB, path string, size int) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	writeBytes(t, path, bytes.Repeat([]byte{0x42}, size))
}

// Touch creates an empty file at path.
func Touch(t testing.TB, path string) {
	t.Helper()
	writeBytes(t, path, nil)
}
