package ast

// Host is the file-I/O and path-canonicalization capability the
// Orchestrator calls through. The concrete implementation (hostfs.AfsHost)
// backs this with github.com/viant/afs; tests use hostfs.MemoryHost.
type Host interface {
	GetSourceFiles() []*SourceFile
	GetCompilerOptions() *CompilerOptions
	GetNewLine() string
	GetCurrentDirectory() string
	GetCommonSourceDirectory() string
	GetCanonicalFileName(fileName string) string
	WriteFile(path string, text []byte, writeBOM bool) error
}
