// Package loader validates override documents against the compiled program
// and populates the override catalog and namespace remapper.
//
// Documents are processed strictly in the order given. Each document is
// validated into a staging area first: every namespace, class and property
// must be well formed, resolve against the compiled program and not collide
// with anything already committed or staged. Only a fully valid document is
// committed. The first error aborts the load; documents committed before the
// failing one stay in place, and nothing from the failing document is
// visible.
//
// Check runs the same validation without committing and keeps going after
// errors, collecting every problem into diagnostic.Diagnostics.
package loader
