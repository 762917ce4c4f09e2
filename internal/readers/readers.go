// Package readers provides the platform I/O backends behind the scan
// orchestration. A backend is selected once per process by capability
// probing: the advanced batched backend where the probe succeeds, a plain
// synchronous read loop everywhere else. The fallback is silent; counting
// code never learns which backend served it.
package readers

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"syscall"
)

// ErrNotMappable reports that an input cannot be served by the zero-copy
// mapping path and must be streamed instead.
var ErrNotMappable = errors.New("readers: input not mappable")

// maxMapLen is the largest input length one mapping can represent on this
// platform. On 32-bit builds an int64 size above this would wrap when
// converted to int and map only a truncated prefix.
const maxMapLen = int64(^uint(0) >> 1)

// mappable reports whether a file of the given size may be mapped whole;
// anything else streams.
func mappable(size int64) bool {
	return size > 0 && size <= maxMapLen
}

// Source is one open input stream. A Source and its buffers are owned by a
// single worker for their lifetime.
type Source interface {
	io.ReadCloser
	// SizeHint returns the input length from file metadata. The bool is
	// true only for a confirmed regular (seekable) file; pipes, sockets,
	// and other unseekable inputs must be read and counted instead.
	SizeHint() (int64, bool)
}

// Backend opens inputs by path.
type Backend interface {
	Open(path string) (Source, error)
	Name() string
}

var selectOnce = sync.OnceValue(func() Backend {
	if be := probeAdvanced(); be != nil {
		return be
	}
	return syncBackend{}
})

// Select returns the process-wide backend, probing on first use. A failed
// probe is never an error; it is only visible through debug logging.
func Select(logger *slog.Logger) Backend {
	be := selectOnce()
	if logger != nil {
		logger.Debug("io backend selected", "backend", be.Name())
	}
	return be
}

// syncBackend is the portable fallback: plain blocking reads on an
// os.File.
type syncBackend struct{}

func (syncBackend) Name() string { return "sync" }

func (syncBackend) Open(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if fi.IsDir() {
		f.Close()
		return nil, &fs.PathError{Op: "read", Path: path, Err: syscall.EISDIR}
	}
	return &fileSource{f: f, size: fi.Size(), regular: fi.Mode().IsRegular()}, nil
}

type fileSource struct {
	f       *os.File
	size    int64
	regular bool
}

func (s *fileSource) Read(p []byte) (int, error) { return s.f.Read(p) }
func (s *fileSource) Close() error               { return s.f.Close() }
func (s *fileSource) SizeHint() (int64, bool)    { return s.size, s.regular }
