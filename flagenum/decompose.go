package flagenum

import (
	"fmt"
	"strings"

	"github.com/roach88/smartenum/enum"
)

// FromValue returns the instances making up value, largest value first.
//
// An instance declared with exactly this value is returned alone, so
// explicit combinations and sentinels win over decomposition. Zero without
// a declared zero instance decomposes to an empty list.
func (s *Set[E, V]) FromValue(value V) ([]E, error) {
	v := s.validated()
	if v.err != nil {
		return nil, v.err
	}

	if e, ok := s.registry.TryFromValue(value); ok {
		return []E{e}, nil
	}

	if value == allOnes[V]() {
		if !s.policy.AllowNegativeInput {
			return nil, s.negativeValueError(value)
		}
		return s.nonZero(), nil
	}

	if value < 0 && !s.policy.AllowNegativeInput {
		return nil, s.negativeValueError(value)
	}

	if value&^v.covered != 0 {
		return nil, &enum.Error{
			Code:    enum.CodeNotFound,
			Type:    s.TypeName(),
			Value:   fmt.Sprint(value),
			Message: fmt.Sprintf("value %d could not be converted to a valid flag for %s", value, s.TypeName()),
		}
	}

	result := make([]E, 0, len(v.flags))
	remaining := value
	for _, flag := range v.flags {
		if remaining == 0 {
			break
		}
		fv := flag.Value()
		if remaining&fv == fv {
			result = append(result, flag)
			remaining &^= fv
		}
	}
	if remaining != 0 {
		return nil, &enum.Error{
			Code:    enum.CodeInternal,
			Type:    s.TypeName(),
			Value:   fmt.Sprint(value),
			Message: fmt.Sprintf("bits %#x of %d left after decomposition", remaining, value),
		}
	}
	return result, nil
}

// TryFromValue is FromValue reporting failure as false.
func (s *Set[E, V]) TryFromValue(value V) ([]E, bool) {
	result, err := s.FromValue(value)
	if err != nil {
		return nil, false
	}
	return result, true
}

// FromName parses a comma-separated list of flag names. Tokens are trimmed
// of spaces and tabs; empty tokens are skipped. Any unknown token fails the
// whole call with CodeParseFailed. The result keeps input order.
func (s *Set[E, V]) FromName(names string, ignoreCase bool) ([]E, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	result := []E{}
	if names == "" {
		return result, nil
	}
	for _, part := range strings.Split(names, ",") {
		part = strings.Trim(part, " \t")
		if part == "" {
			continue
		}
		flag, err := s.registry.FromName(part, ignoreCase)
		if err != nil {
			return nil, &enum.Error{
				Code:    enum.CodeParseFailed,
				Type:    s.TypeName(),
				Name:    part,
				Message: fmt.Sprintf("failed to parse one or more flags in %q for type %s", names, s.TypeName()),
				Err:     err,
			}
		}
		result = append(result, flag)
	}
	return result, nil
}

// TryFromName is FromName reporting failure as false.
func (s *Set[E, V]) TryFromName(names string, ignoreCase bool) ([]E, bool) {
	result, err := s.FromName(names, ignoreCase)
	if err != nil {
		return nil, false
	}
	return result, true
}

// ParseMask parses a comma-separated name list into a combined mask.
func (s *Set[E, V]) ParseMask(names string, ignoreCase bool) (V, error) {
	flags, err := s.FromName(names, ignoreCase)
	if err != nil {
		return 0, err
	}
	return Or[E, V](flags...), nil
}

// nonZero returns every instance with a non-zero value, largest first.
func (s *Set[E, V]) nonZero() []E {
	var result []E
	for _, e := range s.registry.List() {
		if e.Value() != 0 {
			result = append(result, e)
		}
	}
	sortDescending[E, V](result)
	return result
}

func (s *Set[E, V]) negativeValueError(value V) *enum.Error {
	return &enum.Error{
		Code:    enum.CodeNegativeValue,
		Type:    s.TypeName(),
		Value:   fmt.Sprint(value),
		Message: fmt.Sprintf("negative flag value %d not allowed for type %s", value, s.TypeName()),
	}
}
