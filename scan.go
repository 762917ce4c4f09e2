package simdwc

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/biggeezerdevelopment/simdwc-go/internal/readers"
	"github.com/biggeezerdevelopment/simdwc-go/internal/scanner"
)

// Stdin is the request path naming the standard input stream.
const Stdin = "-"

// ErrorKind classifies a per-file failure.
type ErrorKind uint8

const (
	// KindIO covers read and open failures with no more specific kind.
	KindIO ErrorKind = iota
	KindNotFound
	KindAccessDenied
	KindIsDirectory
	KindNameTooLong
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindAccessDenied:
		return "access denied"
	case KindIsDirectory:
		return "is a directory"
	case KindNameTooLong:
		return "name too long"
	}
	return "i/o error"
}

// FileError records why one input failed. Failures are per-file and never
// abort the batch.
type FileError struct {
	Path string
	Kind ErrorKind
	Err  error
}

func (e *FileError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error { return e.Err }

// FileResult is the outcome for one requested path.
type FileResult struct {
	Path   string
	Counts Counts
	Err    *FileError
}

// ScanRequest names the inputs and the counting configuration for one
// batch.
type ScanRequest struct {
	// Paths in reporting order; Stdin ("-") names standard input.
	Paths []string
	Mode  Mode
	// Semantics defaults to SemanticsAuto (locale resolution).
	Semantics Semantics
	// Logger receives backend-selection diagnostics at Debug. Nil disables.
	Logger *slog.Logger
}

// ScanResponse carries one FileResult per requested path, in request
// order, plus the aggregate over the successful ones.
type ScanResponse struct {
	PerFile  []FileResult
	Total    Counts
	AnyError bool
}

// stdin is replaced in tests.
var stdin io.Reader = os.Stdin

// Scan counts every requested input and returns per-file results keyed by
// input position, independent of completion order. One bad input never
// aborts the batch; its FileResult carries the error and scanning
// continues.
//
// Standard input is consumed at most once per request: a second "-" entry
// yields zero counts rather than re-reading a drained stream.
func Scan(req ScanRequest) ScanResponse {
	cfg := scanner.Config{Mode: req.Mode, Semantics: req.Semantics.resolve()}
	be := readers.Select(req.Logger)

	resp := ScanResponse{PerFile: make([]FileResult, len(req.Paths))}
	var stdinClaimed atomic.Bool

	switch len(req.Paths) {
	case 0:
	case 1:
		// No pool overhead for a lone input; a regular file takes the
		// zero-copy mapping path where available.
		resp.PerFile[0] = countSingle(be, req.Paths[0], cfg, &stdinClaimed)
	default:
		workers := min(runtime.GOMAXPROCS(0), len(req.Paths))
		idx := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range idx {
					resp.PerFile[i] = countPath(be, req.Paths[i], cfg, &stdinClaimed)
				}
			}()
		}
		for i := range req.Paths {
			idx <- i
		}
		close(idx)
		wg.Wait()
	}

	for i := range resp.PerFile {
		if resp.PerFile[i].Err != nil {
			resp.AnyError = true
			continue
		}
		resp.Total = resp.Total.Add(resp.PerFile[i].Counts)
	}
	return resp
}

func countSingle(be readers.Backend, path string, cfg scanner.Config, claimed *atomic.Bool) FileResult {
	if path != Stdin && cfg.Mode != scanner.ModeBytesOnly {
		if data, done, err := readers.MapFile(path); err == nil {
			defer done()
			counts := scanner.CountChunk(data, scanner.State{}, cfg).Finish()
			return FileResult{Path: path, Counts: counts}
		}
		// Not mappable here; stream it like any other input.
	}
	return countPath(be, path, cfg, claimed)
}

func countPath(be readers.Backend, path string, cfg scanner.Config, claimed *atomic.Bool) FileResult {
	if path == Stdin {
		if !claimed.CompareAndSwap(false, true) {
			return FileResult{Path: path}
		}
		counts, err := countStream(stdin, cfg)
		if err != nil {
			return FileResult{Path: path, Err: newFileError(path, err)}
		}
		return FileResult{Path: path, Counts: counts}
	}

	src, err := be.Open(path)
	if err != nil {
		return FileResult{Path: path, Err: newFileError(path, err)}
	}
	defer src.Close()

	// A confirmed regular file answers a bytes-only request from its
	// metadata; unseekable inputs are read and counted instead.
	if cfg.Mode == scanner.ModeBytesOnly {
		if size, ok := src.SizeHint(); ok {
			return FileResult{Path: path, Counts: Counts{Bytes: uint64(size)}}
		}
	}

	counts, err := countStream(src, cfg)
	if err != nil {
		return FileResult{Path: path, Err: newFileError(path, err)}
	}
	return FileResult{Path: path, Counts: counts}
}

func newFileError(path string, err error) *FileError {
	kind := KindIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = KindAccessDenied
	case errors.Is(err, syscall.EISDIR):
		kind = KindIsDirectory
	case errors.Is(err, syscall.ENAMETOOLONG):
		kind = KindNameTooLong
	}
	return &FileError{Path: path, Kind: kind, Err: err}
}
