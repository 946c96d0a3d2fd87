package flagenum

import (
	"strings"

	"github.com/roach88/smartenum/enum"
)

// FromValueToString renders the decomposition of value as names joined
// with ", ", in decomposition order.
func (s *Set[E, V]) FromValueToString(value V) (string, error) {
	flags, err := s.FromValue(value)
	if err != nil {
		return "", err
	}
	return Join[E, V](flags), nil
}

// TryFromValueToString is FromValueToString reporting failure as false.
func (s *Set[E, V]) TryFromValueToString(value V) (string, bool) {
	str, err := s.FromValueToString(value)
	if err != nil {
		return "", false
	}
	return str, true
}

// Join renders instances as their names joined with ", ".
func Join[E enum.Member[V], V enum.Integer](flags []E) string {
	var b strings.Builder
	for i, f := range flags {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name())
	}
	return b.String()
}
