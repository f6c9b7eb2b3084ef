// Package types defines the core types used throughout a3modlink.
// This includes the ContentEntry and LinkEntry snapshot types, the
// per-item Outcome values produced by the reconciliation engine, and
// the FS interface that filesystem implementations satisfy.
package types
