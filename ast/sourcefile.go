package ast

import "strings"

// SourceFile is one compilation unit: file name/path plus a handful of
// indexed lookups, holding a single AST root rather than parallel
// declaration slices — the emitter's input is a whole resolved tree, not
// a flat inventory.
type SourceFile struct {
	FileName string // as given to the Orchestrator, e.g. "src/app.ts"
	Text     string // original source text, consulted for trivia/comment slicing and same-line formatting checks
	Root     *Node  // KindSourceFile node; Root.Statements holds the top-level statement list

	// Identifiers is the "declared names" universe the Name Generator's
	// isUniqueName consults so a manufactured name never shadows a real
	// source identifier.
	Identifiers map[string]bool

	// LineStarts is a 0-based-line -> byte-offset table built once per
	// file, used by the same-line formatting checks
	// (nodeStartPositionsAreOnSameLine) without re-scanning Text per call.
	LineStarts []int

	// IsExternalModule is true when the file contains at least one
	// import/export declaration. The module framer does not read it: the
	// envelope is chosen from CompilerOptions.Module alone.
	IsExternalModule bool
}

// NewSourceFile builds line-start and identifier tables from text and
// returns a SourceFile with an empty KindSourceFile root.
func NewSourceFile(fileName, text string) *SourceFile {
	sf := &SourceFile{
		FileName:    fileName,
		Text:        text,
		Root:        NewNode(KindSourceFile),
		Identifiers: map[string]bool{},
	}
	sf.Root.SetSpan(0, len(text))
	sf.LineStarts = computeLineStarts(text)
	return sf
}

func computeLineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// LineAndColumnOf converts a byte offset into a 1-based (line, column) pair
// for source-map purposes (all column/line counts are 1-based).
func (sf *SourceFile) LineAndColumnOf(pos int) (line, column int) {
	// binary search over LineStarts
	lo, hi := 0, len(sf.LineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if sf.LineStarts[mid] <= pos {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1, pos - sf.LineStarts[lo] + 1
}

// SameLine reports whether two byte offsets fall on the same source line,
// backing nodeStartPositionsAreOnSameLine / nodeEndIsOnSameLineAsNodeStart
// list-emission formatting rules.
func (sf *SourceFile) SameLine(a, b int) bool {
	la, _ := sf.LineAndColumnOf(a)
	lb, _ := sf.LineAndColumnOf(b)
	return la == lb
}

// DeclareIdentifier registers name in the declared-names universe.
func (sf *SourceFile) DeclareIdentifier(name string) {
	if name == "" {
		return
	}
	sf.Identifiers[name] = true
}

// HasIdentifier reports whether name is already declared somewhere in the
// file, consulted by isUniqueName.
func (sf *SourceFile) HasIdentifier(name string) bool {
	return sf.Identifiers[name]
}

// ModuleNameHint derives the identifier base used by generateNameForNode
// for an import/export whose only name comes from the module specifier
// text, e.g. "./foo-bar.js" -> "fooBar".
func ModuleNameHint(modulePath string) string {
	base := modulePath
	if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
		base = base[idx+1:]
	}
	base = strings.TrimSuffix(base, ".js")
	base = strings.TrimSuffix(base, ".ts")
	base = strings.TrimSuffix(base, ".jsx")
	base = strings.TrimSuffix(base, ".tsx")

	var b strings.Builder
	upperNext := false
	for i, r := range base {
		switch {
		case r == '-' || r == '_' || r == '.' || r == ' ':
			upperNext = true
		case i == 0:
			b.WriteRune(r)
		case upperNext:
			b.WriteString(strings.ToUpper(string(r)))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		return "_"
	}
	return out
}
