package enum

// Integer is the set of underlying value types an enumeration may use.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Member is implemented by every enumeration instance type.
// Embedding Entry[V] is the usual way to satisfy it.
type Member[V Integer] interface {
	Name() string
	Value() V
}

// Entry is the immutable (name, value) pair backing an enumeration instance.
type Entry[V Integer] struct {
	name  string
	value V
}

// NewEntry creates an Entry. Name validation happens at registration.
func NewEntry[V Integer](name string, value V) Entry[V] {
	return Entry[V]{name: name, value: value}
}

// Name returns the instance name.
func (e Entry[V]) Name() string { return e.name }

// Value returns the underlying value.
func (e Entry[V]) Value() V { return e.value }

// String returns the instance name.
func (e Entry[V]) String() string { return e.name }

// Equals reports whether other has the same value. Names are ignored.
func (e Entry[V]) Equals(other Member[V]) bool {
	return e.value == other.Value()
}

// Equal reports whether a and b have the same value.
func Equal[E Member[V], V Integer](a, b E) bool {
	return a.Value() == b.Value()
}
