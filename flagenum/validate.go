package flagenum

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/roach88/smartenum/enum"
)

// validate checks the power-of-two and contiguity rules and fills in the
// decomposition tables of v.
func (s *Set[E, V]) validate(v *validation[E, V]) error {
	var powers []V
	for _, e := range s.registry.List() {
		value := e.Value()
		if isSentinel(value) {
			continue
		}
		if !isPowerOfTwo(value) {
			if s.policy.AllowUnsafeValues {
				continue
			}
			return &enum.Error{
				Code:    enum.CodeNotPowerOfTwo,
				Type:    s.TypeName(),
				Name:    e.Name(),
				Value:   fmt.Sprint(value),
				Message: fmt.Sprintf("flag value %d for flag %q is not a power of two", value, e.Name()),
			}
		}
		powers = append(powers, value)
	}

	slices.Sort(powers)
	powers = slices.Compact(powers)

	var expected V = 1
	for _, value := range powers {
		if value != expected && !s.policy.AllowUnsafeValues {
			return &enum.Error{
				Code:    enum.CodeMissingFlag,
				Type:    s.TypeName(),
				Value:   fmt.Sprint(expected),
				Message: fmt.Sprintf("flag value %d is missing from %s (next declared is %d)", expected, s.TypeName(), value),
			}
		}
		expected <<= 1
	}

	// Largest first, first registrant per value.
	v.flags = make([]E, 0, len(powers))
	for i := len(powers) - 1; i >= 0; i-- {
		value := powers[i]
		e, _ := s.registry.TryFromValue(value)
		v.flags = append(v.flags, e)
		v.covered |= value
	}
	return nil
}

// isPowerOfTwo reports whether exactly one bit is set in a positive value.
func isPowerOfTwo[V enum.Integer](v V) bool {
	return v > 0 && v&(v-1) == 0
}

// isSentinel reports whether v is the "None" (zero) or "All" (all ones) value.
func isSentinel[V enum.Integer](v V) bool {
	return v == 0 || v == allOnes[V]()
}

// allOnes returns the value with every bit set: -1 for signed types.
func allOnes[V enum.Integer]() V {
	return ^V(0)
}

// sortDescending orders instances by value, largest first, keeping
// registration order among equal values.
func sortDescending[E enum.Member[V], V enum.Integer](instances []E) {
	slices.SortStableFunc(instances, func(a, b E) int {
		return cmp.Compare(b.Value(), a.Value())
	})
}
