// Package files groups the file discovery subsystem: the filesystem
// abstraction and the glob-filtering directory walker built on top of it.
package files
