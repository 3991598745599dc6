// Package services wires the core components into the operations the CLI
// exposes.
//
// ScanService feeds the walker's output through the digest calculator one
// path at a time. VerifierService builds manifests from scans and
// compares fresh scans against stored manifests, classifying every path
// as matched, modified, missing, extra or unreadable.
package services
