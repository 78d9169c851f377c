package hostfs

import (
	"strings"

	"github.com/viant/jsemit/ast"
)

// MemoryHost is an in-memory ast.Host double: AddFile registers source
// text directly, and WriteFile records output in Written instead of
// touching a real filesystem, for use by tests and the fixture harness.
type MemoryHost struct {
	CurrentDirectory string
	NewLine          string
	Options          *ast.CompilerOptions
	CaseSensitive    bool

	files   []*ast.SourceFile
	Written map[string][]byte
}

// NewMemoryHost creates an empty host with the given compiler options
// (ast.DefaultCompilerOptions if nil).
func NewMemoryHost(options *ast.CompilerOptions) *MemoryHost {
	if options == nil {
		options = ast.DefaultCompilerOptions()
	}
	return &MemoryHost{
		CurrentDirectory: "/",
		NewLine:          "\n",
		Options:          options,
		CaseSensitive:    true,
		Written:          map[string][]byte{},
	}
}

// AddFile registers fileName/text as one of this host's source files and
// returns the created SourceFile.
func (h *MemoryHost) AddFile(fileName, text string) *ast.SourceFile {
	sf := ast.NewSourceFile(fileName, text)
	h.files = append(h.files, sf)
	return sf
}

func (h *MemoryHost) GetSourceFiles() []*ast.SourceFile        { return h.files }
func (h *MemoryHost) GetCompilerOptions() *ast.CompilerOptions { return h.Options }
func (h *MemoryHost) GetNewLine() string                       { return h.NewLine }
func (h *MemoryHost) GetCurrentDirectory() string               { return h.CurrentDirectory }

// GetCommonSourceDirectory folds every registered file's directory into a
// common-prefix accumulator on demand (the in-memory host has no
// incremental loading step to hook, unlike AfsHost).
func (h *MemoryHost) GetCommonSourceDirectory() string {
	common := ""
	for i, sf := range h.files {
		dir := sf.FileName
		if idx := strings.LastIndex(dir, "/"); idx >= 0 {
			dir = dir[:idx]
		} else {
			dir = ""
		}
		common = updateCommonDir(common, dir, i == 0)
	}
	return common
}

func (h *MemoryHost) GetCanonicalFileName(fileName string) string {
	if h.CaseSensitive {
		return fileName
	}
	return strings.ToLower(fileName)
}

func (h *MemoryHost) WriteFile(path string, text []byte, writeBOM bool) error {
	if writeBOM {
		text = append([]byte{0xEF, 0xBB, 0xBF}, text...)
	}
	h.Written[path] = text
	return nil
}
