package emitter

import (
	"fmt"
	"strings"

	"github.com/viant/jsemit/ast"
)

// tempFlags bit layout: bits 0-27 are the temp-variable counter; bits 28
// and 29 are "_i in use" / "_n in use" reservation flags.
type tempFlags uint32

const (
	tempCounterMask  tempFlags = 0x0FFFFFFF
	tempReservedI    tempFlags = 1 << 28
	tempReservedN    tempFlags = 1 << 29
)

// NameGenerator handles temporaries, unique suffixed names,
// and per-node deterministic aliases, plus the block-scoped renaming table.
//
// tempFlags/tempVariables/tempParameters are per-source-file state that
// must be saved and restored around function-body/class-body boundaries;
// NameGenerator exposes Save/Restore for exactly that.
type NameGenerator struct {
	file *ast.SourceFile

	flags         tempFlags
	tempVariables []string // flushed as `var t1, t2;` at function-body exit
	tempParameters []string

	generatedNames map[string]bool // permanent within the file (makeUniqueName winners)

	nodeNames map[int]string // node-id -> generated name (generateNameForNode memo)

	blockScopedRenames map[int]string // blockScopedVariableId -> renamed identifier
}

// NewNameGenerator creates a generator bound to file's declared-identifier
// universe.
func NewNameGenerator(file *ast.SourceFile) *NameGenerator {
	return &NameGenerator{
		file:               file,
		generatedNames:     map[string]bool{},
		nodeNames:          map[int]string{},
		blockScopedRenames: map[int]string{},
	}
}

// namegenState is the save/restore snapshot for the scoped-state stack
// discipline: save(tempFlags, tempVariables, tempParameters); reset to
// empty; emit; flush; restore.
type namegenState struct {
	flags         tempFlags
	tempVariables []string
	tempParameters []string
}

// Save snapshots the per-scope fields and resets them to empty, returning
// a token to pass to Restore.
func (g *NameGenerator) Save() namegenState {
	saved := namegenState{
		flags:          g.flags,
		tempVariables:  g.tempVariables,
		tempParameters: g.tempParameters,
	}
	g.flags = 0
	g.tempVariables = nil
	g.tempParameters = nil
	return saved
}

// Restore undoes Save, discarding whatever temp state accumulated in the
// nested scope (it has already been flushed into that scope's own `var`
// prelude by the caller).
func (g *NameGenerator) Restore(saved namegenState) {
	g.flags = saved.flags
	g.tempVariables = saved.tempVariables
	g.tempParameters = saved.tempParameters
}

// FlushTempVariables returns (and clears) the temp variable names
// accumulated in the current scope, for the Orchestrator to render as a
// single `var t1, t2;` declaration at the scope's end.
func (g *NameGenerator) FlushTempVariables() []string {
	out := g.tempVariables
	g.tempVariables = nil
	return out
}

var tempLetters = "abcdefghijklmnopqrstuvwxyz"

// ReserveI / ReserveN let a caller (the for-of lowering) claim the bare
// `_i`/`_n` name explicitly, consuming the corresponding reserved bit so
// makeTempVariableName skips re-minting it.
func (g *NameGenerator) ReserveI() string {
	g.flags |= tempReservedI
	return "_i"
}

func (g *NameGenerator) ReserveN() string {
	g.flags |= tempReservedN
	return "_n"
}

// MakeTempVariableName cycles
// `_a.._z, _0, _1, ...`, always skipping the positions that would produce
// `_i`/`_n` (those are handed out only by ReserveI/ReserveN), testing each
// candidate with
// isUniqueName. The counter advances on success but the name itself is not
// recorded permanently, so it may be reused in a disjoint, later-restored
// scope. isDeclaration selects whether the winner is also queued for the
// function-body's flushed `var` prelude (tempVariables) or is a parameter
// name (tempParameters, not declared with `var`).
func (g *NameGenerator) MakeTempVariableName(resolver ast.Resolver, isDeclaration bool) string {
	for {
		counter := uint32(g.flags & tempCounterMask)
		g.flags = (g.flags &^ tempCounterMask) | tempFlags(counter+1)&tempCounterMask

		var candidate string
		if counter < 26 {
			candidate = "_" + string(tempLetters[counter])
		} else {
			candidate = fmt.Sprintf("_%d", counter-26)
		}

		if candidate == "_i" || candidate == "_n" {
			continue
		}
		if !g.isUniqueName(resolver, candidate) {
			continue
		}
		if isDeclaration {
			g.tempVariables = append(g.tempVariables, candidate)
		} else {
			g.tempParameters = append(g.tempParameters, candidate)
		}
		return candidate
	}
}

// isUniqueName reports whether name is free: not a Resolver global, not
// in the source file's identifier set, not already a generated name still
// live in this file.
func (g *NameGenerator) isUniqueName(resolver ast.Resolver, name string) bool {
	if resolver != nil && resolver.HasGlobalName(name) {
		return false
	}
	if g.file != nil && g.file.HasIdentifier(name) {
		return false
	}
	if g.generatedNames[name] {
		return false
	}
	return true
}

// MakeUniqueName tries base_1, base_2, ... until unique, permanently
// recording the winner.
func (g *NameGenerator) MakeUniqueName(resolver ast.Resolver, base string) string {
	if g.isUniqueName(resolver, base) {
		g.generatedNames[base] = true
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d", base, i)
		if g.isUniqueName(resolver, candidate) {
			g.generatedNames[candidate] = true
			return candidate
		}
	}
}

// GenerateNameForNode makes a deterministic per-node-kind choice,
// memoized by node id so repeated calls for the same node return the
// same name.
func (g *NameGenerator) GenerateNameForNode(resolver ast.Resolver, node *ast.Node) string {
	if node == nil {
		return g.MakeUniqueName(resolver, "default")
	}
	if existing, ok := g.nodeNames[node.NodeID]; ok && node.NodeID != 0 {
		return existing
	}

	var name string
	switch node.Kind {
	case ast.KindFunctionDeclaration, ast.KindFunctionExpression, ast.KindClassDeclaration, ast.KindClassExpression:
		if node.Name != nil && node.Name.Text != "" {
			if g.isUniqueName(resolver, node.Name.Text) {
				name = node.Name.Text
			} else {
				name = g.MakeUniqueName(resolver, node.Name.Text)
			}
		} else {
			name = g.MakeUniqueName(resolver, "default")
		}
	case ast.KindImportDeclaration, ast.KindExportDeclaration:
		base := "module"
		if node.ModuleSpecifier != nil {
			base = ast.ModuleNameHint(node.ModuleSpecifier.Text)
		}
		name = g.MakeUniqueName(resolver, base)
	case ast.KindExportAssignment:
		name = g.MakeUniqueName(resolver, "default")
	default:
		if node.Name != nil && node.Name.Text != "" {
			name = g.MakeUniqueName(resolver, node.Name.Text)
		} else {
			name = g.MakeUniqueName(resolver, "default")
		}
	}

	if node.NodeID != 0 {
		g.nodeNames[node.NodeID] = name
	}
	return name
}

// RenameBlockScoped implements block-scoped renaming: a let/const binding
// whose original name is already visible as a value in
// an enclosing scope gets mapped to makeUniqueName(originalText); every
// later identifier reference sharing the same blockScopedVariableId
// substitutes the new name (ResolveBlockScoped).
func (g *NameGenerator) RenameBlockScoped(resolver ast.Resolver, variableID int, originalText string) string {
	if renamed, ok := g.blockScopedRenames[variableID]; ok {
		return renamed
	}
	renamed := g.MakeUniqueName(resolver, originalText)
	g.blockScopedRenames[variableID] = renamed
	return renamed
}

// ResolveBlockScoped returns the renamed identifier for variableID, or ok
// false if it was never renamed.
func (g *NameGenerator) ResolveBlockScoped(variableID int) (string, bool) {
	name, ok := g.blockScopedRenames[variableID]
	return name, ok
}

// QualifiedScopeName builds a "parent.child" scope label for the
// Source-Map Recorder's names table, bracketing a computed name's text.
func QualifiedScopeName(parent, child string, childIsComputed bool) string {
	if parent == "" {
		return child
	}
	if childIsComputed {
		return parent + "[" + child + "]"
	}
	var b strings.Builder
	b.WriteString(parent)
	b.WriteByte('.')
	b.WriteString(child)
	return b.String()
}
