// Package taskboard exposes build-level metadata for the taskboard binary.
package taskboard

// Version is the released version of taskboard.
const Version = "v0.1.0"
