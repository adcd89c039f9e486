package stdlib_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shiika-lang/shiika-core/internal/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifestFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadManifestFileAugmentsExistingClass(t *testing.T) {
	path := writeManifestFile(t, `
augment:
  Int:
    ivars:
      - name: cached
        type: Bool
    methods:
      - name: abs
        returns: Int
`)

	m, err := stdlib.LoadManifestFile(path)
	require.NoError(t, err)

	intDecl := m.Classes["Int"]
	require.Len(t, intDecl.IVars, 1)
	assert.Equal(t, "cached", intDecl.IVars[0].Name)

	var found bool
	for _, meth := range intDecl.InstanceMethods {
		if meth.Name == "abs" {
			found = true
		}
	}
	assert.True(t, found, "expected augmented Int to declare abs")
}

func TestLoadManifestFileRejectsUnknownClass(t *testing.T) {
	path := writeManifestFile(t, `
augment:
  NotAClass:
    methods:
      - name: foo
        returns: Int
`)

	_, err := stdlib.LoadManifestFile(path)
	assert.Error(t, err)
}

func TestLoadManifestFileRejectsMissingFile(t *testing.T) {
	_, err := stdlib.LoadManifestFile(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestLoadManifestFileRejectsMalformedYAML(t *testing.T) {
	path := writeManifestFile(t, "augment: [not, a, map]")
	_, err := stdlib.LoadManifestFile(path)
	assert.Error(t, err)
}
