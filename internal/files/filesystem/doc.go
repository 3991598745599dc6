// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines the operations dirsum performs against a filesystem
// (single-level directory listing, stat, streaming file reads), enabling
// testability through an in-memory implementation while maintaining
// compatibility with the OS filesystem.
//
// Key pieces:
//   - FileSystemProvider: The abstraction the walker and digester consume
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing, with helpers
//     to simulate permission-denied directories and mid-stream read errors
package filesystem
