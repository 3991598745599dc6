// Package checksum provides file content hashing for a fixed set of
// algorithms.
//
// The supported kinds are MD5, SHA-1, SHA-256 and SHA-512; the set is
// closed and exhaustively switched, so an out-of-range kind fails with a
// defined error rather than an unset algorithm.
//
// Digests are lowercase hexadecimal strings, two characters per digest
// byte (32/40/64/128 characters respectively). The empty string is a
// sentinel meaning "computation failed": an unreadable file produces it
// instead of an error, matching the best-effort scanning contract.
//
// File content is streamed through the hash context rather than loaded
// whole, and the file handle is released on every exit path.
//
// # Thread Safety
//
// Calculator is safe for concurrent use by multiple goroutines.
package checksum
