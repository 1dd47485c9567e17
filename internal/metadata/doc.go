// Package metadata holds the binary-metadata model of a compiled program.
//
// An Image is a flat, order-stable dump of the program's types and their
// declared properties, produced by an external metadata reader. It is the
// authoritative identity model used by the override loader: a type is found
// by its fully qualified name and its properties keep declaration order, so
// first-match lookups are reproducible across runs.
//
// Images are stored in one of three encodings, chosen by file extension:
//
//   - .cbor            CBOR (core deterministic encoding)
//   - .msgpack, .mp    MessagePack
//   - .json, .jsonc    JSON, comments and trailing commas allowed
package metadata
