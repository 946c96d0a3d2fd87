package flagenum

import (
	"sync"
	"sync/atomic"

	"github.com/roach88/smartenum/enum"
)

// Set is a flag enumeration: an enum.Registry plus a flag policy and the
// memoized result of definition validation.
type Set[E enum.Member[V], V enum.Integer] struct {
	registry *enum.Registry[E, V]
	policy   Policy

	check atomic.Pointer[validation[E, V]]
}

// validation is the compute-once result of checking the definitions at one
// registry generation.
type validation[E enum.Member[V], V enum.Integer] struct {
	generation uint64
	once       sync.Once
	err        error

	// flags holds one instance per distinct power-of-two value, largest first.
	flags []E
	// covered is the union of all flag bits.
	covered V
}

// New creates an empty flag set for the type named typeName.
func New[E enum.Member[V], V enum.Integer](typeName string, opts ...Option) *Set[E, V] {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	return &Set[E, V]{
		registry: enum.New[E, V](typeName, c.enumOpts...),
		policy:   c.policy,
	}
}

// Register adds a flag instance. See enum.Registry.Register.
// Registering after the first flag query causes re-validation.
func (s *Set[E, V]) Register(e E) (E, error) {
	return s.registry.Register(e)
}

// MustRegister is like Register but panics on error.
func (s *Set[E, V]) MustRegister(e E) E {
	return s.registry.MustRegister(e)
}

// Registry returns the underlying registry for single-instance lookups.
func (s *Set[E, V]) Registry() *enum.Registry[E, V] {
	return s.registry
}

// Policy returns the set's capability markers.
func (s *Set[E, V]) Policy() Policy {
	return s.policy
}

// TypeName returns the flag type name.
func (s *Set[E, V]) TypeName() string {
	return s.registry.TypeName()
}

// Validate checks the flag definitions. The result is computed once per
// instance set and reused by every flag query.
func (s *Set[E, V]) Validate() error {
	return s.validated().err
}

// validated returns the memoized validation for the current generation,
// computing it on first use.
func (s *Set[E, V]) validated() *validation[E, V] {
	gen := s.registry.Generation()
	v := s.check.Load()
	if v == nil || v.generation != gen {
		fresh := &validation[E, V]{generation: gen}
		if s.check.CompareAndSwap(v, fresh) {
			v = fresh
		} else {
			v = s.check.Load()
		}
	}
	v.once.Do(func() {
		v.err = s.validate(v)
		if v.err != nil {
			s.registry.Logger().Debug("flag definitions rejected",
				"type", s.TypeName(),
				"error", v.err)
		}
	})
	return v
}

// List validates the definitions and returns all instances in
// registration order.
func (s *Set[E, V]) List() ([]E, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.registry.List(), nil
}

// Or returns the bitwise OR of the given instances' values.
func (s *Set[E, V]) Or(flags ...E) V {
	return Or[E, V](flags...)
}

// Has reports whether mask contains every bit of flag.
func (s *Set[E, V]) Has(mask V, flag E) bool {
	return Has[E, V](mask, flag)
}

// Or returns the bitwise OR of the given instances' values. The result is
// a raw mask, not a named instance.
func Or[E enum.Member[V], V enum.Integer](flags ...E) V {
	var mask V
	for _, f := range flags {
		mask |= f.Value()
	}
	return mask
}

// Has reports whether mask contains every bit of flag.
func Has[E enum.Member[V], V enum.Integer](mask V, flag E) bool {
	fv := flag.Value()
	return mask&fv == fv
}
