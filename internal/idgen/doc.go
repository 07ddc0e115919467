// Package idgen hides the UUID generator behind a stub point so tests can
// produce deterministic identifiers. Callers should treat the returned
// values as opaque strings.
package idgen
