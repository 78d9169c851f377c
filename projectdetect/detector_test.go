package projectdetect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetector_DetectProject(t *testing.T) {
	tests := []struct {
		description  string
		manifest     string
		expectName   string
		expectKind   string
		relativeFile string
	}{
		{
			description:  "npm package with name",
			manifest:     `{"name": "widgets", "version": "1.0.0"}`,
			expectName:   "widgets",
			expectKind:   "npm",
			relativeFile: "src/index.ts",
		},
		{
			description:  "npm package with scoped name",
			manifest:     `{"name": "@acme/widgets"}`,
			expectName:   "@acme/widgets",
			expectKind:   "npm",
			relativeFile: "lib/main.js",
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			root := t.TempDir()
			assert.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(tc.manifest), 0o644))
			target := filepath.Join(root, tc.relativeFile)
			assert.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
			assert.NoError(t, os.WriteFile(target, []byte("export {};\n"), 0o644))

			d := New()
			project, err := d.DetectProject(target)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectName, project.Name)
			assert.Equal(t, tc.expectKind, project.Kind)
			assert.Equal(t, filepath.ToSlash(tc.relativeFile), project.RelativePath)
		})
	}
}

func TestDetector_DetectProject_FallsBackToDirectoryName(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "index.js")
	assert.NoError(t, os.WriteFile(target, []byte("1;\n"), 0o644))

	d := New()
	project, err := d.DetectProject(target, root)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Base(root), project.Name)
	assert.Equal(t, "unknown", project.Kind)
}

func TestDetector_DetectProject_TypescriptMarker(t *testing.T) {
	root := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(root, "tsconfig.json"), []byte(`{"compilerOptions": {}}`), 0o644))
	target := filepath.Join(root, "src", "app.ts")
	assert.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
	assert.NoError(t, os.WriteFile(target, []byte("export {};\n"), 0o644))

	d := New()
	project, err := d.DetectProject(target)
	assert.NoError(t, err)
	assert.Equal(t, "typescript", project.Kind)
	assert.Equal(t, root, project.RootPath)
}
