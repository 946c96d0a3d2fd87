// Package catalog loads declarative enumeration definitions and
// materializes them into enum registries and flagenum sets.
//
// A catalog file is CUE (.cue), HCL (.hcl), or YAML (.yaml, .yml). CUE and
// YAML files hold two optional top-level maps, keyed by type name:
//
//	enum: Color: {
//		members: [{name: "Red", value: 1}, {name: "Green", value: 2}]
//	}
//
//	flags: Permission: {
//		allow_negative_input: true
//		members: [
//			{name: "None", value: 0},
//			{name: "Read", value: 1},
//			{name: "Write", value: 2},
//			{name: "All", value: -1},
//		]
//	}
//
// HCL files declare one labeled block per type and per member. Member
// values may call bit(n) for 1<<n and use all_bits for -1:
//
//	flags "Permission" {
//	  member "Read"  { value = bit(0) }
//	  member "Write" { value = bit(1) }
//	}
//
// Values are int64. Unknown fields are rejected in every format so that a
// typo such as "member:" fails loudly instead of producing an empty type.
//
// Loading stops at the first error and reports it as a *LoadError with a
// stable code and, where available, the file and line. Flag definition
// rules are not checked while loading; they are checked lazily, exactly
// as for hand-written flag sets, or eagerly for every type by Validate.
package catalog
