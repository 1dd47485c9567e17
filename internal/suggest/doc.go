// Package suggest finds the closest known name to a misspelled one.
//
// It is used to decorate unresolved-reference errors with a
// "did you mean" hint. Names are compared after identifier normalization,
// so "colour_name" and "ColourName" are considered equal.
package suggest
