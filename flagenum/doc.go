// Package flagenum layers bitflag semantics over enum registries.
//
// A flag set is an enumeration whose values are single bits that combine
// with bitwise OR. Set validates its definitions lazily, once, before the
// first flag query, and converts between combined masks, comma-separated
// name lists, and canonical lists of contributing instances.
//
//	type Perm struct{ enum.Entry[uint32] }
//
//	var Perms = flagenum.New[Perm, uint32]("Perm")
//
//	var (
//		None  = Perms.MustRegister(Perm{enum.NewEntry[uint32]("None", 0)})
//		Read  = Perms.MustRegister(Perm{enum.NewEntry[uint32]("Read", 1)})
//		Write = Perms.MustRegister(Perm{enum.NewEntry[uint32]("Write", 2)})
//	)
//
//	Perms.FromValueToString(Perms.Or(Read, Write)) // "Write, Read"
//
// DEFINITION RULES:
//
// The zero value ("None") and the all-ones value (-1 for signed types, the
// maximum for unsigned types, "All") are sentinels and exempt. Every other
// value must be a power of two, and the distinct powers must form the
// unbroken sequence 1, 2, 4, ... Definitions that break these rules fail
// the first flag query with CodeNotPowerOfTwo or CodeMissingFlag, never
// registration. AllowUnsafeValues lifts both rules; explicitly declared
// combinations (e.g. ReadWrite = 3) need it.
//
// DECOMPOSITION:
//
// An exact value match always wins, so declared combinations and sentinels
// come back as themselves. Otherwise the mask is split greedily over the
// declared power-of-two flags from largest to smallest. Results are always
// ordered by descending value.
//
// Negative input, including the all-ones sentinel when no instance declares
// it, is rejected unless the set was created with AllowNegativeInput. With
// it, all-ones means every instance with a non-zero value.
package flagenum
