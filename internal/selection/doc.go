// Package selection decides whether the scenarios of a feature should run under the
// active filter.
//
// Features and pickles are owned by the test engine; this package only walks the
// pickle sequence in document order and asks an opaque Predicate about each one.
// Both lookups stop at the first accepted pickle, so a predicate is never consulted
// for pickles after the one that decided the result.
package selection
