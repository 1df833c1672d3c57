// Package types defines the Task entity, the wire-format request and
// response shapes, and the standard errors shared across the application.
// The HTTP handlers, the repository, and the terminal client all agree on
// the wire format through this package.
package types
