// Package guard holds the constructor guard embedded by commands, queries and
// value objects to reject zero-value instances.
package guard
