// Package manifest reads and writes dirsum's YAML manifest files.
//
// A manifest records the digests of every file a scan discovered,
// together with the algorithm used, the scan root, a unique id and a
// generation timestamp. The verify command compares a fresh scan
// against a stored manifest.
//
// Writes go through a temporary file plus rename so an interrupted run
// cannot leave a half-written manifest.
package manifest
