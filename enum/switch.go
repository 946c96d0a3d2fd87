package enum

// Switch is a fluent branching helper over an enumeration instance.
//
// Cases are kept as an ordered list of (predicate, action) pairs. Nothing
// runs until Default or Run: the first matching case's action fires, and
// Default's action fires when no case matched.
//
//	enum.SwitchOn(color).
//		When(Red).Then(stop).
//		When(Green).Then(go).
//		Default(wait)
type Switch[E Member[V], V Integer] struct {
	value   E
	cases   []switchCase[E]
	pending func(E) bool
}

type switchCase[E any] struct {
	match  func(E) bool
	action func()
}

// SwitchOn starts a Switch over value.
func SwitchOn[E Member[V], V Integer](value E) *Switch[E, V] {
	return &Switch[E, V]{value: value}
}

// When adds a case matching instances equal to candidate.
func (s *Switch[E, V]) When(candidate E) *Switch[E, V] {
	want := candidate.Value()
	return s.WhenFunc(func(e E) bool { return e.Value() == want })
}

// WhenFunc adds a case matching instances for which match returns true.
func (s *Switch[E, V]) WhenFunc(match func(E) bool) *Switch[E, V] {
	s.pending = match
	return s
}

// Then sets the action for the preceding When. A Then without a When is ignored.
func (s *Switch[E, V]) Then(action func()) *Switch[E, V] {
	if s.pending != nil {
		s.cases = append(s.cases, switchCase[E]{match: s.pending, action: action})
		s.pending = nil
	}
	return s
}

// Run evaluates the cases in order and reports whether one matched.
func (s *Switch[E, V]) Run() bool {
	for _, c := range s.cases {
		if c.match(s.value) {
			c.action()
			return true
		}
	}
	return false
}

// Default evaluates the cases and runs action if none matched.
func (s *Switch[E, V]) Default(action func()) {
	if !s.Run() {
		action()
	}
}
