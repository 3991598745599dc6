// Package walker provides recursive, fault-tolerant file discovery with
// glob filtering.
//
// The walker package is responsible for:
//   - Enumerating regular files under a directory, optionally recursing
//     into subdirectories one level at a time
//   - Selecting files with a match glob and removing files with an
//     exclude glob (`*` = any run, `?` = one character, unanchored
//     substring matching against the whole path)
//   - Tolerating missing directories and permission-denied subtrees,
//     which contribute empty results instead of errors
//
// The walker is filesystem-agnostic through the
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
//
// No ordering guarantee is made for returned paths beyond whatever the
// underlying directory enumeration yields.
package walker
