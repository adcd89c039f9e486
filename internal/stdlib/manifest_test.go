package stdlib_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/shiika-lang/shiika-core/internal/ast"
	"github.com/shiika-lang/shiika-core/internal/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifestSeedsObjectFirst(t *testing.T) {
	m := stdlib.LoadManifest()
	require.NotEmpty(t, m.Order)
	assert.Equal(t, "Object", m.Order[0])
}

func TestLoadManifestIncludesCoreClasses(t *testing.T) {
	m := stdlib.LoadManifest()
	for _, name := range []string{"Object", "Int", "Float", "Bool", "Void", "Array", "Fn"} {
		_, ok := m.Classes[name]
		assert.True(t, ok, "expected manifest to declare %s", name)
	}
}

func TestArrayPushReturnsSpecializedArrayType(t *testing.T) {
	m := stdlib.LoadManifest()
	arr := m.Classes["Array"]
	require.True(t, arr.IsGeneric())

	var push *ast.Method
	for _, meth := range arr.InstanceMethods {
		if meth.Name == "push" {
			push = meth
		}
	}
	require.NotNil(t, push)

	gen, ok := push.ReturnType.(*ast.GenericTypeSpec)
	require.True(t, ok, "push must return a GenericTypeSpec, got %T", push.ReturnType)
	assert.Equal(t, "Array", gen.Name)
	assert.Equal(t, "Array<T>", gen.String())
}

func TestOpaqueMethodsCarryTheMarkerBody(t *testing.T) {
	m := stdlib.LoadManifest()
	for _, decl := range m.ClassDecls() {
		for _, meth := range decl.InstanceMethods {
			assert.True(t, ast.IsOpaqueBody(meth.Body), "%s#%s should have an opaque body", decl.Name, meth.Name)
		}
	}
}

// TestManifestClassOrderSnapshot grounds the manifest's seed order against a
// recorded snapshot so an accidental reordering shows up as a diff.
func TestManifestClassOrderSnapshot(t *testing.T) {
	m := stdlib.LoadManifest()
	snaps.MatchSnapshot(t, m.Order)
}
