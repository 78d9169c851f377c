// Package hostfs implements ast.Host against real storage: AfsHost backs
// it with github.com/viant/afs, reading file content for an already-built
// tree via DownloadWithURL, and MemoryHost is an in-memory double for
// tests that never touch a real filesystem.
package hostfs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/jsemit/ast"
)

// AfsHost implements ast.Host over an afs.Service, reading source files
// with DownloadWithURL and writing emitted output with Upload.
type AfsHost struct {
	fs                    afs.Service
	ctx                   context.Context
	currentDirectory      string
	commonSourceDirectory string
	newLine               string
	options               *ast.CompilerOptions
	files                 []*ast.SourceFile
	caseSensitive         bool
}

// NewAfsHost creates a host rooted at currentDirectory, using afs.New's
// default service.
func NewAfsHost(ctx context.Context, currentDirectory string, options *ast.CompilerOptions) *AfsHost {
	if options == nil {
		options = ast.DefaultCompilerOptions()
	}
	return &AfsHost{
		fs:               afs.New(),
		ctx:              ctx,
		currentDirectory: currentDirectory,
		newLine:          "\n",
		options:          options,
		caseSensitive:    true,
	}
}

// LoadSourceFile downloads path's content and registers it as one of this
// host's source files.
func (h *AfsHost) LoadSourceFile(path string) (*ast.SourceFile, error) {
	data, err := h.fs.DownloadWithURL(h.ctx, path)
	if err != nil {
		return nil, err
	}
	sf := ast.NewSourceFile(path, string(data))
	h.files = append(h.files, sf)
	h.commonSourceDirectory = updateCommonDir(h.commonSourceDirectory, filepath.Dir(path), len(h.files) == 1)
	return sf, nil
}

func (h *AfsHost) GetSourceFiles() []*ast.SourceFile         { return h.files }
func (h *AfsHost) GetCompilerOptions() *ast.CompilerOptions  { return h.options }
func (h *AfsHost) GetNewLine() string                        { return h.newLine }
func (h *AfsHost) GetCurrentDirectory() string                { return h.currentDirectory }
func (h *AfsHost) GetCommonSourceDirectory() string           { return h.commonSourceDirectory }

func (h *AfsHost) GetCanonicalFileName(fileName string) string {
	if h.caseSensitive {
		return fileName
	}
	return strings.ToLower(fileName)
}

// WriteFile uploads text to path, prefixing a UTF-8 BOM when requested.
func (h *AfsHost) WriteFile(path string, text []byte, writeBOM bool) error {
	if writeBOM {
		text = append([]byte{0xEF, 0xBB, 0xBF}, text...)
	}
	return h.fs.Upload(h.ctx, path, os.FileMode(0o644), bytes.NewReader(text))
}

// updateCommonDir folds dir into the running common-source-directory
// accumulator, matching tsc's "common ancestor of every input file"
// semantics.
func updateCommonDir(current, dir string, first bool) string {
	if first {
		return dir
	}
	currentParts := strings.Split(filepath.ToSlash(current), "/")
	dirParts := strings.Split(filepath.ToSlash(dir), "/")
	n := len(currentParts)
	if len(dirParts) < n {
		n = len(dirParts)
	}
	i := 0
	for i < n && currentParts[i] == dirParts[i] {
		i++
	}
	return strings.Join(currentParts[:i], "/")
}
