// Package enum provides closed-set, named, integer-valued enumerations.
//
// An enumeration is a Go type embedding Entry[V] plus one Registry that owns
// every instance of that type. Instances are registered once, at package
// initialization, and never change afterwards:
//
//	type Color struct{ enum.Entry[int] }
//
//	var Colors = enum.New[Color, int]("Color")
//
//	var (
//		Red   = Colors.MustRegister(Color{enum.NewEntry("Red", 1)})
//		Green = Colors.MustRegister(Color{enum.NewEntry("Green", 2)})
//	)
//
// The registry answers identity queries: List in registration order, lookup
// by exact or case-insensitive name, and lookup by value. Every lookup that
// returns an error has a Try form reporting success as a bool.
//
// INDEX RULES:
//
// Exact names are unique per registry; a duplicate fails registration.
// Value and case-insensitive name collisions are tolerated and the first
// registrant keeps the index slot. Shadowed entries are still listed and
// still reachable by exact name. A debug record is logged for each shadow.
//
// Equality is value equality: two instances with the same value are equal
// whatever their names.
//
// CONCURRENCY:
//
// Registration is not synchronized. Register everything during package
// initialization; afterwards all queries are read-only and safe for
// concurrent use.
package enum
