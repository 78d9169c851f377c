package ast

// NodeFlags is the bitset of modifiers carried by a Node, per the data
// model's "bitset of modifier flags" (export, default, static,
// accessibility, let, const, async, ambient, block-scoped, synthesized,
// multiline).
type NodeFlags uint32

const (
	FlagNone NodeFlags = 0

	FlagExport NodeFlags = 1 << iota
	FlagDefault
	FlagStatic
	FlagAsync
	FlagAmbient
	FlagSynthesized
	FlagMultiLine

	// Variable declaration kind - mutually exclusive with each other.
	FlagLet
	FlagConst

	// Accessibility - mutually exclusive with each other.
	FlagPublic
	FlagPrivate
	FlagProtected
	FlagReadonly

	// Block-scoped binding (let/const, or a function param captured by a
	// catch/for binding) - drives the Name Generator's collision check.
	FlagBlockScoped

	// Rest/optional parameter markers.
	FlagRest
	FlagOptional

	// Generator function (`function*`).
	FlagGenerator

	// Computed property name container (`[expr]: value`).
	FlagComputedName
)

// Has reports whether all bits in want are set.
func (f NodeFlags) Has(want NodeFlags) bool {
	return f&want == want
}

// HasAny reports whether any bit in want is set.
func (f NodeFlags) HasAny(want NodeFlags) bool {
	return f&want != 0
}

// Set returns f with want set.
func (f NodeFlags) Set(want NodeFlags) NodeFlags {
	return f | want
}

// Clear returns f with want cleared.
func (f NodeFlags) Clear(want NodeFlags) NodeFlags {
	return f &^ want
}
