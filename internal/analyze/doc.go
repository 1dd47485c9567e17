// Package analyze provides the semantic model of the source program.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to build an
// in-memory model of named types and their properties (exported struct
// fields). This is the model the emitter walks; the override catalog is keyed
// by the binary model instead, so every PropertyInfo can name its declaring
// type in the binary encoding (package path as namespace, generic arity as
// "`N") for correlation.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: kind (struct/interface/enum/basic/other), type parameters, properties
//   - PropertyInfo: property name, declaring type, Go type string, tags
package analyze
