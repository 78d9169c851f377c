// Package projectdetect locates the root of a JavaScript/TypeScript
// project from a source file path and extracts the project's declared
// name. A package.json is plain JSON, so the manifest is decoded with
// encoding/json rather than a dedicated parser package.
package projectdetect

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Manifest is the subset of package.json this detector reads.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Type    string `json:"type"` // "module" or "commonjs"
}

// Project describes a detected JS/TS project root.
type Project struct {
	RootPath     string // absolute path to the project root directory
	Kind         string // "npm", "typescript", "git", or "unknown"
	Name         string // extracted from package.json, falling back to the directory name
	RelativePath string // path from RootPath to the file DetectProject was given
	Manifest     *Manifest
}

// Repository describes the enclosing git repository, if any, separately
// from the npm/tsconfig project root (a monorepo's git root and package
// root commonly differ).
type Repository struct {
	Root   string
	Origin string
	Info   *Project
}

// Detector walks a file's ancestor directories looking for project root
// markers.
type Detector struct {
	markers []string
}

// New creates a detector recognizing the standard JS/TS project markers.
func New() *Detector {
	return &Detector{
		markers: []string{"package.json", "tsconfig.json", "jsconfig.json", ".git"},
	}
}

// DetectProject finds the project root enclosing filePath. baseURL, if
// given, is used as a fallback root when no marker is found.
func (d *Detector) DetectProject(filePath string, baseURL ...string) (*Project, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}

	startDir := absPath
	if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, kind := d.findProjectRoot(startDir)

	project := &Project{Kind: "unknown", RootPath: absPath}
	if rootPath == "" && len(baseURL) > 0 && baseURL[0] != "" {
		project.RootPath = baseURL[0]
	} else if rootPath != "" {
		project.RootPath = rootPath
		project.Kind = kind
	}

	relPath, err := filepath.Rel(project.RootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	project.RelativePath = filepath.ToSlash(relPath)

	if manifest, err := readManifest(filepath.Join(project.RootPath, "package.json")); err == nil {
		project.Manifest = manifest
		project.Name = manifest.Name
	}
	if project.Name == "" {
		project.Name = filepath.Base(project.RootPath)
	}

	return project, nil
}

// DetectRepository finds the enclosing git repository, if any, and the
// project root within it.
func (d *Detector) DetectRepository(filePath string) (*Repository, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}
	startDir := absPath
	if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	repo := &Repository{}
	if gitRoot := d.findGitRoot(startDir); gitRoot != "" {
		repo.Root = gitRoot
		repo.Origin = extractGitOrigin(gitRoot)
	}

	info, err := d.DetectProject(filePath)
	if err != nil {
		return nil, err
	}
	repo.Info = info
	if repo.Root == "" {
		repo.Root = info.RootPath
	}
	return repo, nil
}

func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, kindOfMarker(marker)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

func kindOfMarker(marker string) string {
	switch marker {
	case "package.json":
		return "npm"
	case "tsconfig.json", "jsconfig.json":
		return "typescript"
	case ".git":
		return "git"
	default:
		return "unknown"
	}
}

func (d *Detector) findGitRoot(startDir string) string {
	dir := startDir
	homeDir := os.Getenv("HOME")
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir || parent == homeDir {
			break
		}
		dir = parent
	}
	return ""
}

func extractGitOrigin(gitRoot string) string {
	configPath := filepath.Join(gitRoot, ".git", "config")
	file, err := os.Open(configPath)
	if err != nil {
		return ""
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	inRemoteOrigin := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == `[remote "origin"]` {
			inRemoteOrigin = true
			continue
		}
		if inRemoteOrigin && strings.HasPrefix(line, "url") {
			if idx := strings.Index(line, "="); idx >= 0 {
				return strings.TrimSpace(line[idx+1:])
			}
		}
		if strings.HasPrefix(line, "[") && line != `[remote "origin"]` {
			inRemoteOrigin = false
		}
	}
	return ""
}

func readManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
