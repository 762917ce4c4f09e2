//go:build !linux

package readers

// probeAdvanced reports no advanced facility off Linux; the synchronous
// backend is the primary implementation there.
func probeAdvanced() Backend {
	return nil
}

// MapFile is unsupported off Linux; callers fall back to streaming.
func MapFile(path string) ([]byte, func(), error) {
	return nil, nil, ErrNotMappable
}
