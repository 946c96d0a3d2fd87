package enum

// Behavior maps enumeration instances to per-instance functions.
//
// It stands in for per-value methods: each instance gets its own function,
// and a fallback covers instances without one. Instances are keyed by
// value, consistent with enumeration equality.
type Behavior[E Member[V], V Integer, R any] struct {
	byValue  map[V]func(E) R
	fallback func(E) R
}

// NewBehavior creates a table whose unmapped instances use fallback.
// A nil fallback yields R's zero value.
func NewBehavior[E Member[V], V Integer, R any](fallback func(E) R) *Behavior[E, V, R] {
	return &Behavior[E, V, R]{
		byValue:  make(map[V]func(E) R),
		fallback: fallback,
	}
}

// On sets the function for e and returns the table for chaining.
func (b *Behavior[E, V, R]) On(e E, fn func(E) R) *Behavior[E, V, R] {
	b.byValue[e.Value()] = fn
	return b
}

// Has reports whether e has its own function.
func (b *Behavior[E, V, R]) Has(e E) bool {
	_, ok := b.byValue[e.Value()]
	return ok
}

// Apply runs e's function, or the fallback.
func (b *Behavior[E, V, R]) Apply(e E) R {
	if fn, ok := b.byValue[e.Value()]; ok {
		return fn(e)
	}
	if b.fallback != nil {
		return b.fallback(e)
	}
	var zero R
	return zero
}
