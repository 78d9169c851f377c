package ast

// Package groups a set of source files emitted together (a file set plus
// a lazily-built name index).
type Package struct {
	Name  string
	Files []*SourceFile

	fileMap map[string]int // FileName -> index, lazily built by IndexFiles
}

// AddFile appends file to the package's file set.
func (p *Package) AddFile(file *SourceFile) {
	p.Files = append(p.Files, file)
}

// IndexFiles (re)builds the FileName -> index lookup table.
func (p *Package) IndexFiles() {
	p.fileMap = make(map[string]int, len(p.Files))
	for i, f := range p.Files {
		if f == nil {
			continue
		}
		p.fileMap[f.FileName] = i
	}
}

// GetFile looks up a file by name, building the index on first use.
func (p *Package) GetFile(name string) *SourceFile {
	if p.fileMap == nil {
		p.IndexFiles()
	}
	if idx, ok := p.fileMap[name]; ok && idx < len(p.Files) {
		return p.Files[idx]
	}
	return nil
}

// Project is a multi-file compile unit: a package list plus a name index.
// The Orchestrator only needs this when `out` concatenates several files
// or when the System module framer must assign stable exports_N registrar
// names across files that import one another.
type Project struct {
	Name     string
	Packages []*Package

	moduleIndex     map[string]int // SourceFile.FileName -> stable registrar index, 1-based
	packageMap      map[string]int
}

// AddPackage appends pkg to the project.
func (p *Project) AddPackage(pkg *Package) {
	p.Packages = append(p.Packages, pkg)
}

// GetPackage looks up a package by name, building the index on first use.
func (p *Project) GetPackage(name string) *Package {
	if p.packageMap == nil {
		p.packageMap = make(map[string]int, len(p.Packages))
		for i, pkg := range p.Packages {
			if pkg != nil {
				p.packageMap[pkg.Name] = i
			}
		}
	}
	if idx, ok := p.packageMap[name]; ok && idx < len(p.Packages) {
		return p.Packages[idx]
	}
	return nil
}

// IndexModules assigns every file a stable 1-based registrar index in
// declaration order across all packages, used by the System module framer
// to name exports_N consistently for a multi-file build.
func (p *Project) IndexModules() {
	p.moduleIndex = make(map[string]int)
	n := 0
	for _, pkg := range p.Packages {
		for _, f := range pkg.Files {
			if f == nil {
				continue
			}
			n++
			p.moduleIndex[f.FileName] = n
		}
	}
}

// ModuleIndexOf returns the stable registrar index for fileName, building
// the index on first use. Returns 0 if the file is not part of the project.
func (p *Project) ModuleIndexOf(fileName string) int {
	if p.moduleIndex == nil {
		p.IndexModules()
	}
	return p.moduleIndex[fileName]
}
