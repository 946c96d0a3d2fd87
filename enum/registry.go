package enum

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Registry owns every instance of one enumeration type.
//
// The zero value is not usable; create registries with New.
type Registry[E Member[V], V Integer] struct {
	typeName string
	logger   *slog.Logger

	instances []E
	byName    map[string]E
	byFold    map[string]E
	byValue   map[V]E

	// generation counts successful registrations. Layers that memoize
	// per-type results compare it to detect a changed instance set.
	generation uint64
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for registration diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates an empty registry for the enumeration type named typeName.
func New[E Member[V], V Integer](typeName string, opts ...Option) *Registry[E, V] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return &Registry[E, V]{
		typeName: typeName,
		logger:   o.logger,
		byName:   make(map[string]E),
		byFold:   make(map[string]E),
		byValue:  make(map[V]E),
	}
}

// TypeName returns the enumeration type name used in errors.
func (r *Registry[E, V]) TypeName() string {
	return r.typeName
}

// Logger returns the registry's logger.
func (r *Registry[E, V]) Logger() *slog.Logger {
	return r.logger
}

// Generation returns a counter that increases on every registration.
func (r *Registry[E, V]) Generation() uint64 {
	return r.generation
}

// Register adds an instance.
//
// Fails with CodeInvalidName if the name is empty and CodeDuplicateName if
// the exact name is taken. Value and case-insensitive name collisions are
// not errors: the earlier instance keeps the index slot.
func (r *Registry[E, V]) Register(e E) (E, error) {
	name := e.Name()
	if name == "" {
		return e, &Error{
			Code:    CodeInvalidName,
			Type:    r.typeName,
			Value:   fmt.Sprint(e.Value()),
			Message: fmt.Sprintf("%s name cannot be empty", r.typeName),
		}
	}
	if _, exists := r.byName[name]; exists {
		return e, &Error{
			Code:    CodeDuplicateName,
			Type:    r.typeName,
			Name:    name,
			Message: fmt.Sprintf("duplicate %s name %q", r.typeName, name),
		}
	}

	r.instances = append(r.instances, e)
	r.byName[name] = e

	key := foldName(name)
	if prev, shadowed := r.byFold[key]; shadowed {
		r.logger.Debug("case-insensitive name shadowed by earlier instance",
			"type", r.typeName,
			"name", name,
			"kept", prev.Name())
	} else {
		r.byFold[key] = e
	}

	value := e.Value()
	if prev, shadowed := r.byValue[value]; shadowed {
		r.logger.Debug("value shadowed by earlier instance",
			"type", r.typeName,
			"name", name,
			"value", value,
			"kept", prev.Name())
	} else {
		r.byValue[value] = e
	}

	r.generation++
	return e, nil
}

// MustRegister is like Register but panics on error.
// Intended for package-level var declarations.
func (r *Registry[E, V]) MustRegister(e E) E {
	registered, err := r.Register(e)
	if err != nil {
		panic(err)
	}
	return registered
}

// List returns all instances in registration order.
// The returned slice is a copy.
func (r *Registry[E, V]) List() []E {
	return slices.Clone(r.instances)
}

// SortedByName returns all instances ordered by name.
func (r *Registry[E, V]) SortedByName() []E {
	sorted := slices.Clone(r.instances)
	slices.SortStableFunc(sorted, func(a, b E) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return sorted
}

// Len returns the number of registered instances.
func (r *Registry[E, V]) Len() int {
	return len(r.instances)
}

// Names returns instance names in registration order.
func (r *Registry[E, V]) Names() []string {
	names := make([]string, len(r.instances))
	for i, e := range r.instances {
		names[i] = e.Name()
	}
	return names
}

// Values returns instance values in registration order.
func (r *Registry[E, V]) Values() []V {
	values := make([]V, len(r.instances))
	for i, e := range r.instances {
		values[i] = e.Value()
	}
	return values
}

// FromName returns the instance with the given name.
// With ignoreCase the lookup uses Unicode case folding.
func (r *Registry[E, V]) FromName(name string, ignoreCase bool) (E, error) {
	e, ok := r.TryFromName(name, ignoreCase)
	if !ok {
		return e, newNameNotFound(r.typeName, name)
	}
	return e, nil
}

// TryFromName is FromName reporting a miss as false.
func (r *Registry[E, V]) TryFromName(name string, ignoreCase bool) (E, bool) {
	var zero E
	if name == "" {
		return zero, false
	}
	var (
		e  E
		ok bool
	)
	if ignoreCase {
		e, ok = r.byFold[foldName(name)]
	} else {
		e, ok = r.byName[name]
	}
	if !ok {
		return zero, false
	}
	return e, true
}

// FromValue returns the first registered instance with the given value.
func (r *Registry[E, V]) FromValue(value V) (E, error) {
	e, ok := r.TryFromValue(value)
	if !ok {
		return e, newValueNotFound(r.typeName, value)
	}
	return e, nil
}

// TryFromValue is FromValue reporting a miss as false.
func (r *Registry[E, V]) TryFromValue(value V) (E, bool) {
	e, ok := r.byValue[value]
	return e, ok
}

// Contains reports whether some instance has the given value.
func (r *Registry[E, V]) Contains(value V) bool {
	_, ok := r.byValue[value]
	return ok
}
