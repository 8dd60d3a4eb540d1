//go:build !windows

package wincred

// newNativeAPI has no backend off Windows; New fails cleanly so callers
// can fall back to another store.
func newNativeAPI() (nativeAPI, error) {
	return nil, ErrUnsupportedPlatform
}
