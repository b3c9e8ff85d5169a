package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySnapshot(t *testing.T) {
	registry := DefaultRegistry()
	snaps := registry.Snapshot()
	require.Len(t, snaps, registry.Len())

	byTool := make(map[string]OperationSnapshot, len(snaps))
	for i, snap := range snaps {
		assert.Equal(t, registry.Names()[i], snap.Tool, "snapshot preserves table order")
		byTool[snap.Tool] = snap
	}

	sdtmig := byTool["get_sdtmig_class_info"]
	require.Len(t, sdtmig.Params, 2)
	assert.True(t, sdtmig.Params[0].Required)
	assert.Equal(t, SDTMIGClasses.Values(), sdtmig.Params[1].Allowed)

	adam := byTool["get_adam_datastructure_info"]
	require.Len(t, adam.Params, 2)
	assert.Equal(t, "product", adam.Params[1].DependsOn)
	assert.Equal(t, []string{"ADSL", "BDS", "TTE"}, adam.Params[1].AllowedBy["adamig-1-3"])

	ct := byTool["get_package_ct_info"]
	require.Len(t, ct.Params, 1)
	assert.Equal(t, CTPackages.Len(), len(ct.Params[0].Allowed))
}
