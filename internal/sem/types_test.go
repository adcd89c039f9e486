package sem_test

import (
	"testing"

	"github.com/shiika-lang/shiika-core/internal/sem"
	"github.com/stretchr/testify/assert"
)

func TestEqualStructural(t *testing.T) {
	a := &sem.Spe{Name: "Array", Args: []sem.Type{&sem.Raw{Name: "Int"}}}
	b := &sem.Spe{Name: "Array", Args: []sem.Type{&sem.Raw{Name: "Int"}}}
	c := &sem.Spe{Name: "Array", Args: []sem.Type{&sem.Raw{Name: "Bool"}}}

	assert.True(t, sem.Equal(a, b))
	assert.False(t, sem.Equal(a, c))
}

func TestNoParentSentinel(t *testing.T) {
	assert.True(t, sem.IsNoParent(sem.NoParent))
	assert.False(t, sem.IsNoParent(&sem.Raw{Name: "Object"}))
}

func TestToKeyAndKeyForArgs(t *testing.T) {
	args := []sem.Type{&sem.Raw{Name: "Int"}, &sem.Raw{Name: "Bool"}}
	assert.Equal(t, "Int,Bool", sem.KeyForArgs(args))
	assert.Equal(t, "Int", sem.ToKey(&sem.Raw{Name: "Int"}))
}

func TestSubstituteReplacesFreeParams(t *testing.T) {
	generic := &sem.Method{
		Name:       "fst",
		ParamTypes: nil,
		ReturnType: &sem.Param{Name: "A"},
	}
	subst := map[string]sem.Type{"A": &sem.Raw{Name: "Int"}, "B": &sem.Raw{Name: "Bool"}}
	got := sem.Substitute(generic, subst)

	assert.Equal(t, &sem.Method{Name: "fst", ReturnType: &sem.Raw{Name: "Int"}}, got)
}

func TestSubstituteRoundTrip(t *testing.T) {
	// substitute(substitute(t, m), m) == substitute(t, m) when m maps only
	// free parameters of t (spec §8 "round-trip on the type algebra").
	t1 := &sem.Spe{Name: "Pair", Args: []sem.Type{&sem.Param{Name: "A"}, &sem.Param{Name: "B"}}}
	m := map[string]sem.Type{"A": &sem.Raw{Name: "Int"}, "B": &sem.Raw{Name: "Bool"}}

	once := sem.Substitute(t1, m)
	twice := sem.Substitute(once, m)
	assert.True(t, sem.Equal(once, twice))
}

func TestSubstituteLeavesUnmappedParamUntouched(t *testing.T) {
	got := sem.Substitute(&sem.Param{Name: "A"}, map[string]sem.Type{"B": &sem.Raw{Name: "Int"}})
	assert.Equal(t, &sem.Param{Name: "A"}, got)
}
