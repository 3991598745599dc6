package dirsum

// Walker defines the interface for discovering files under a directory.
// Implementations are read-only and must be safe for concurrent use by
// multiple goroutines.
//
// Both operations are best-effort: a missing base directory or a
// permission-denied condition contributes an empty (or truncated) result
// rather than an error.
type Walker interface {
	// ListDirectory lists regular files directly inside dir whose path
	// matches matchGlob and does not match excludeGlob.
	ListDirectory(dir, excludeGlob, matchGlob string) []string

	// ListRecursive lists files under basePath. It always includes the
	// immediate-directory results; when recurse is true it also descends
	// into every subdirectory directly under basePath.
	ListRecursive(basePath, excludeGlob, matchGlob string, recurse bool) []string
}
