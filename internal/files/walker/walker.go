package walker

import (
	"errors"
	"io/fs"
	"path/filepath"
	"regexp"

	"github.com/dirsum/dirsum/internal/files/filesystem"
	"github.com/dirsum/dirsum/pkg/dirsum"
)

// Walker discovers files under a directory tree, filtering them with
// glob patterns. It is best-effort by contract: missing directories and
// permission-denied subtrees contribute nothing to the result instead of
// failing the scan.
// Walker is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider and logger are also thread-safe.
type Walker struct {
	fsProvider filesystem.FileSystemProvider
	logger     dirsum.Logger
}

// New creates a new Walker using the OS filesystem.
// Panics if logger is nil.
func New(logger dirsum.Logger) *Walker {
	return NewWithFS(filesystem.NewOSFileSystem(), logger)
}

// NewWithFS creates a new Walker with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider or logger is nil.
func NewWithFS(fsProvider filesystem.FileSystemProvider, logger dirsum.Logger) *Walker {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Walker{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// result carries one traversal's outcome: the files found plus the paths
// that were skipped because they could not be accessed. Only the entries
// cross the package boundary; skipped paths surface through verbose
// logging, never as an error.
type result struct {
	entries []string
	skipped []string
}

// ListDirectory lists regular files directly inside dir whose path matches
// matchGlob and does not match excludeGlob.
//
// A missing directory yields an empty slice, not an error. A
// permission-denied directory also yields an empty slice; the path is
// reported via verbose logging only.
func (w *Walker) ListDirectory(dir, excludeGlob, matchGlob string) []string {
	res := w.listDirectory(dir, excludeGlob, matchGlob)
	w.reportSkipped(res.skipped)
	return res.entries
}

// ListRecursive lists files under basePath. The immediate-directory results
// are always included; when recurse is true, every subdirectory directly
// under basePath is traversed with the same patterns.
//
// When subdirectory discovery at a level fails with permission denied, that
// entire level's remaining results are dropped silently. The historical
// checksum tool this engine replaces behaved this way and recorded
// manifests depend on it, so the behavior is kept rather than isolating
// the failure per subdirectory.
func (w *Walker) ListRecursive(basePath, excludeGlob, matchGlob string, recurse bool) []string {
	res := w.listRecursive(basePath, excludeGlob, matchGlob, recurse)
	w.reportSkipped(res.skipped)
	return res.entries
}

func (w *Walker) listDirectory(dir, excludeGlob, matchGlob string) result {
	if matchGlob == "" {
		matchGlob = dirsum.DefaultMatchGlob
	}
	matchRe := compileGlob(matchGlob)

	var excludeRe *regexp.Regexp
	if excludeGlob != "" {
		excludeRe = compileGlob(excludeGlob)
	}

	infos, err := w.fsProvider.ReadDir(dir)
	if err != nil {
		return w.classifyListError(dir, err)
	}

	var res result
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		path := filepath.Join(dir, info.Name())
		if !matchRe.MatchString(path) {
			continue
		}
		if excludeRe != nil && excludeRe.MatchString(path) {
			continue
		}
		res.entries = append(res.entries, path)
	}
	return res
}

func (w *Walker) listRecursive(basePath, excludeGlob, matchGlob string, recurse bool) result {
	res := w.listDirectory(basePath, excludeGlob, matchGlob)
	if !recurse {
		return res
	}

	infos, err := w.fsProvider.ReadDir(basePath)
	if err != nil {
		// Subdirectory discovery failed after the file pass: the whole
		// level is dropped, matching the documented contract.
		if errors.Is(err, fs.ErrPermission) {
			res.skipped = append(res.skipped, basePath)
		}
		return res
	}

	for _, info := range infos {
		if !info.IsDir() {
			continue
		}
		sub := w.listRecursive(filepath.Join(basePath, info.Name()), excludeGlob, matchGlob, recurse)
		res.entries = append(res.entries, sub.entries...)
		res.skipped = append(res.skipped, sub.skipped...)
	}
	return res
}

// classifyListError maps a directory listing failure to the best-effort
// contract: not-exist and permission-denied are absorbed, anything else is
// logged so unrelated failures stay visible.
func (w *Walker) classifyListError(dir string, err error) result {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return result{}
	case errors.Is(err, fs.ErrPermission):
		return result{skipped: []string{dir}}
	default:
		w.logger.Error("failed to list %s: %v", dir, err)
		return result{}
	}
}

func (w *Walker) reportSkipped(skipped []string) {
	for _, p := range skipped {
		w.logger.Verbose("skipping inaccessible path: %s", p)
	}
}

// Verify Walker implements the interface at compile time
var _ dirsum.Walker = (*Walker)(nil)
