package emitter

import (
	"encoding/json"
	"strings"
)

// Span is one emitted-to-source mapping.
type Span struct {
	EmittedLine   int // 1-based
	EmittedColumn int // 1-based
	SourceIndex   int
	SourceLine    int // 1-based
	SourceColumn  int // 1-based
	NameIndex     int // -1 when no name is attached
}

// SourceMapData is the JSON sidecar shape: a .js file plus a .js.map file
// containing JSON {version:3, file, sourceRoot, sources[], names[],
// mappings}.
type SourceMapData struct {
	Version    int      `json:"version"`
	File       string   `json:"file"`
	SourceRoot string   `json:"sourceRoot,omitempty"`
	Sources    []string `json:"sources"`
	Names      []string `json:"names"`
	Mappings   string   `json:"mappings"`
}

// Marshal renders the source map as a JSON document.
func (d *SourceMapData) Marshal() ([]byte, error) {
	return json.Marshal(d)
}

// SourceMapRecorder brackets every node emission
// with start/end span recording, dedups spans that didn't move, and
// flushes the accumulated spans to a Base64-VLQ "mappings" string.
type SourceMapRecorder struct {
	outputFile string
	sourceRoot string

	sources     []string
	sourceIndex map[string]int

	names     []string
	nameIndex map[string]int
	nameStack []int // scope-name stack, top used as the active nameIndex for new spans

	pending []Span // spans recorded this file, not yet flushed to mappings
	last    Span   // last *recorded* span, for the dedup check

	mappings strings.Builder
	lastEnc  Span // last *encoded* span, deltas are relative to this
	hasEnc   bool
	lastLine int // last encoded emitted line, to know when to emit ';'

	currentSourceIndex int
	currentFile        string
}

// NewSourceMapRecorder creates a recorder for outputFile.
func NewSourceMapRecorder(outputFile, sourceRoot string) *SourceMapRecorder {
	return &SourceMapRecorder{
		outputFile:  outputFile,
		sourceRoot:  sourceRoot,
		sourceIndex: map[string]int{},
		nameIndex:   map[string]int{},
		lastLine:    1,
	}
}

// PushSourceFile registers (or re-selects) a source file and returns its
// sourceIndex. Each source-file boundary pushes a new sourceIndex.
func (r *SourceMapRecorder) PushSourceFile(fileName string) int {
	if idx, ok := r.sourceIndex[fileName]; ok {
		r.currentSourceIndex = idx
		r.currentFile = fileName
		return idx
	}
	idx := len(r.sources)
	r.sources = append(r.sources, fileName)
	r.sourceIndex[fileName] = idx
	r.currentSourceIndex = idx
	r.currentFile = fileName
	return idx
}

// PushScopeName interns name (if new) and pushes it as the active name for
// subsequent spans.
func (r *SourceMapRecorder) PushScopeName(name string) {
	idx, ok := r.nameIndex[name]
	if !ok {
		idx = len(r.names)
		r.names = append(r.names, name)
		r.nameIndex[name] = idx
	}
	r.nameStack = append(r.nameStack, idx)
}

// PopScopeName leaves the current named scope.
func (r *SourceMapRecorder) PopScopeName() {
	if len(r.nameStack) > 0 {
		r.nameStack = r.nameStack[:len(r.nameStack)-1]
	}
}

func (r *SourceMapRecorder) activeNameIndex() int {
	if len(r.nameStack) == 0 {
		return -1
	}
	return r.nameStack[len(r.nameStack)-1]
}

// RecordEmitPos records a span at the current writer position, mapping to
// (sourceLine, sourceColumn) in the currently pushed source file. It is the
// shared primitive behind node-start/node-end/token span recording:
// callers that want the active scope name attached pass withName=true.
func (r *SourceMapRecorder) RecordEmitPos(emittedLine, emittedColumn, sourceLine, sourceColumn int, withName bool) {
	span := Span{
		EmittedLine:   emittedLine,
		EmittedColumn: emittedColumn,
		SourceIndex:   r.currentSourceIndex,
		SourceLine:    sourceLine,
		SourceColumn:  sourceColumn,
		NameIndex:     -1,
	}
	if withName {
		span.NameIndex = r.activeNameIndex()
	}

	// Span dedup: only keep a new record if the emitted position moved, or
	// the source position moved backwards (needed when lowering rewrites
	// order).
	if len(r.pending) > 0 {
		moved := span.EmittedLine != r.last.EmittedLine || span.EmittedColumn != r.last.EmittedColumn
		wentBackwards := span.SourceLine < r.last.SourceLine ||
			(span.SourceLine == r.last.SourceLine && span.SourceColumn < r.last.SourceColumn)
		if !moved && !wentBackwards {
			return
		}
	}
	r.pending = append(r.pending, span)
	r.last = span
}

// Flush encodes every pending span into the mappings string and clears the
// pending list. Called once per emitted file, or incrementally; either way
// deltas are always relative to the last *encoded* span.
func (r *SourceMapRecorder) Flush() {
	for _, span := range r.pending {
		r.encodeOne(span)
	}
	r.pending = r.pending[:0]
}

func (r *SourceMapRecorder) encodeOne(span Span) {
	if !r.hasEnc {
		// First-ever segment: no separator, deltas relative to zero except
		// emittedColumn which is relative to the start of its own line.
		for span.EmittedLine > r.lastLine {
			r.mappings.WriteByte(';')
			r.lastLine++
		}
		r.appendSegment(span, Span{})
		r.lastEnc = span
		r.hasEnc = true
		return
	}

	if span.EmittedLine > r.lastEnc.EmittedLine {
		for span.EmittedLine > r.lastEnc.EmittedLine {
			r.mappings.WriteByte(';')
			r.lastEnc.EmittedLine++
		}
		// a new line resets the emittedColumn delta base to 0.
		zeroColBase := r.lastEnc
		zeroColBase.EmittedColumn = 0
		r.appendSegment(span, zeroColBase)
	} else {
		r.mappings.WriteByte(',')
		r.appendSegment(span, r.lastEnc)
	}
	r.lastEnc = span
}

func (r *SourceMapRecorder) appendSegment(span, base Span) {
	buf := make([]byte, 0, 20)
	buf = appendVLQ(buf, int64(span.EmittedColumn-base.EmittedColumn))
	buf = appendVLQ(buf, int64(span.SourceIndex-base.SourceIndex))
	buf = appendVLQ(buf, int64(span.SourceLine-base.SourceLine))
	buf = appendVLQ(buf, int64(span.SourceColumn-base.SourceColumn))
	if span.NameIndex >= 0 {
		baseNameIndex := base.NameIndex
		if baseNameIndex < 0 {
			baseNameIndex = 0
		}
		buf = appendVLQ(buf, int64(span.NameIndex-baseNameIndex))
	}
	r.mappings.Write(buf)
}

// Data renders the accumulated state into a SourceMapData for the given
// output file name.
func (r *SourceMapRecorder) Data() *SourceMapData {
	return &SourceMapData{
		Version:    3,
		File:       r.outputFile,
		SourceRoot: r.sourceRoot,
		Sources:    append([]string(nil), r.sources...),
		Names:      append([]string(nil), r.names...),
		Mappings:   r.mappings.String(),
	}
}

// DecodeMappings decodes a mappings string back into an ordered list of
// Spans with absolute (not delta) coordinates, so a caller can inspect
// the segments an emitted mappings string holds.
func DecodeMappings(mappings string) []Span {
	var out []Span
	line := 1
	var cur Span
	cur.EmittedColumn = 0
	cur.SourceIndex = 0
	cur.SourceLine = 0
	cur.SourceColumn = 0
	cur.NameIndex = 0
	haveName := false

	segStart := 0
	flushSegment := func(raw string) {
		if raw == "" {
			return
		}
		pos := 0
		var dCol, dSrc, dLine, dColSrc int64
		dCol, pos = decodeVLQSegment(raw, pos)
		if pos < len(raw) {
			dSrc, pos = decodeVLQSegment(raw, pos)
			dLine, pos = decodeVLQSegment(raw, pos)
			dColSrc, pos = decodeVLQSegment(raw, pos)
		}
		cur.EmittedColumn += int(dCol)
		cur.SourceIndex += int(dSrc)
		cur.SourceLine += int(dLine)
		cur.SourceColumn += int(dColSrc)
		span := Span{
			EmittedLine:   line,
			EmittedColumn: cur.EmittedColumn,
			SourceIndex:   cur.SourceIndex,
			SourceLine:    cur.SourceLine,
			SourceColumn:  cur.SourceColumn,
			NameIndex:     -1,
		}
		if pos < len(raw) {
			var dName int64
			dName, _ = decodeVLQSegment(raw, pos)
			cur.NameIndex += int(dName)
			span.NameIndex = cur.NameIndex
			haveName = true
		}
		_ = haveName
		out = append(out, span)
	}

	for i := 0; i <= len(mappings); i++ {
		if i == len(mappings) || mappings[i] == ',' || mappings[i] == ';' {
			flushSegment(mappings[segStart:i])
			segStart = i + 1
			if i < len(mappings) && mappings[i] == ';' {
				line++
				cur.EmittedColumn = 0
			}
		}
	}
	return out
}
