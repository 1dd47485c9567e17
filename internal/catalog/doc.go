// Package catalog stores resolved override records and namespace remaps.
//
// A Catalog and a Remapper are created once per compilation run, written
// during the load phase and then frozen. Writes are write-once: declaring
// the same type, property or namespace twice is a DuplicateDeclaration
// error, never a merge. After Freeze every write fails with ErrFrozen and
// the stores may be read from any number of goroutines without locking.
//
// Queries never fail. A missing record is reported through the boolean
// result ("no override"), not an error.
package catalog
