// Package emit holds the per-translation-unit state consulted by the
// code emitter.
//
// A Context tracks the type currently being emitted, the methods declared on
// it (used to detect name clashes in the case-insensitive target language),
// the namespaces imported into the current unit and the enum types that need
// a flattened constant export.
//
// A Context is not safe for concurrent use. Emitting types in parallel
// requires one Context per task; ForType returns such a fresh instance.
package emit
