package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowListContains(t *testing.T) {
	list := NewAllowList("AE", "DM", "VS")

	assert.True(t, list.Contains("AE"))
	assert.True(t, list.Contains("VS"))
	assert.False(t, list.Contains("ae"), "matching is case sensitive")
	assert.False(t, list.Contains("ZZ"))
	assert.False(t, list.Contains(""))
}

func TestAllowListValuesPreservesOrder(t *testing.T) {
	list := NewAllowList("DM", "CO", "SE", "DM")

	assert.Equal(t, []string{"DM", "CO", "SE"}, list.Values(), "duplicates collapse, order holds")
	assert.Equal(t, 3, list.Len())

	// Mutating the returned slice must not affect the list.
	values := list.Values()
	values[0] = "XX"
	assert.True(t, list.Contains("DM"))
	assert.Equal(t, "DM", list.Values()[0])
}

func TestDependentAllowList(t *testing.T) {
	dep := NewDependentAllowList().
		Add("adamig-1-0", "ADSL", "BDS").
		Add("adam-tte-1-0", "ADTTE")

	assert.Equal(t, []string{"adamig-1-0", "adam-tte-1-0"}, dep.Parents())
	assert.True(t, dep.ContainsParent("adamig-1-0"))
	assert.False(t, dep.ContainsParent("ADSL"), "children are not parents")

	children := dep.ChildrenOf("adamig-1-0")
	require.NotNil(t, children)
	assert.True(t, children.Contains("BDS"))
	assert.False(t, children.Contains("ADTTE"), "children are scoped to their parent")

	assert.Nil(t, dep.ChildrenOf("unknown"))
}
