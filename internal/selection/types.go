package selection

import "fmt"

// Location is the line and column of a pickle within its feature document.
type Location struct {
	Line   int
	Column int
}

// String renders the location as "line:column".
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Pickle is a single executable scenario instance expanded from a feature,
// including each example row of a scenario outline.
type Pickle interface {
	Location() Location
}

// Feature is an engine-owned feature document.
type Feature interface {
	// URI identifies the feature source, e.g. "classpath:features/orders.feature".
	URI() string
	// Pickles returns the scenario instances in document order.
	Pickles() []Pickle
}

// Predicate is the engine's accept/reject filter over a pickle.
type Predicate interface {
	Test(p Pickle) bool
}

// PredicateFunc adapts a plain function to a Predicate.
type PredicateFunc func(p Pickle) bool

// Test calls f(p).
func (f PredicateFunc) Test(p Pickle) bool {
	return f(p)
}
