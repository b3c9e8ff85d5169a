package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryCompleteness(t *testing.T) {
	registry := DefaultRegistry()

	expected := []string{
		"get_CDISC_Library_api_product_list",
		"get_sdtmig_class_info",
		"get_sdtmig_dataset_info",
		"get_sdtm_model_class_info",
		"get_sdtm_model_dataset_info",
		"get_sendig_class_info",
		"get_sendig_dataset_info",
		"get_cdashig_class_info",
		"get_cdashig_domain_info",
		"get_cdashig_scenarios_info",
		"get_cdash_model_class_info",
		"get_cdash_model_domain_info",
		"get_adam_product_info",
		"get_adam_datastructure_info",
		"get_qrs_info",
		"get_package_ct_info",
		"get_package_ct_codelist_info",
		"get_package_ct_codelist_term_info",
	}
	assert.Equal(t, expected, registry.Names())
	assert.Equal(t, len(expected), registry.Len())

	_, err := registry.Get("get_nonexistent")
	assert.Error(t, err)
}

func TestDefaultRegistryTimeouts(t *testing.T) {
	registry := DefaultRegistry()
	for _, name := range registry.Names() {
		op := registry.MustGet(name)
		if op.Family == FamilyCT {
			assert.Equal(t, 30*time.Second, op.Timeout, name)
		} else {
			assert.Equal(t, 15*time.Second, op.Timeout, name)
		}
	}
}

func TestDefaultRegistryShapers(t *testing.T) {
	registry := DefaultRegistry()

	shaped := map[string]bool{
		"get_adam_product_info":       true,
		"get_adam_datastructure_info": true,
		"get_package_ct_info":         true,
	}
	for _, name := range registry.Names() {
		op := registry.MustGet(name)
		if shaped[name] {
			assert.NotNil(t, op.Shape, name)
		} else {
			assert.Nil(t, op.Shape, name)
		}
	}
}

func TestDefaultRegistryPaths(t *testing.T) {
	registry := DefaultRegistry()

	tests := []struct {
		tool   string
		params map[string]string
		want   string
	}{
		{"get_CDISC_Library_api_product_list", nil, "/mdr/products?expand=false"},
		{"get_sdtmig_class_info", map[string]string{"version": "3-4"}, "/mdr/sdtmig/3-4/classes"},
		{"get_sdtmig_class_info", map[string]string{"version": "3-4", "className": "Events"}, "/mdr/sdtmig/3-4/classes/Events/datasets?expand=false"},
		{"get_sdtmig_dataset_info", map[string]string{"version": "3-3", "dataset": "AE"}, "/mdr/sdtmig/3-3/datasets/AE"},
		{"get_sdtm_model_class_info", map[string]string{"version": "2-0", "className": "Findings"}, "/mdr/sdtm/2-0/classes/Findings"},
		{"get_sendig_dataset_info", map[string]string{"version": "3-1"}, "/mdr/sendig/3-1/datasets"},
		{"get_cdashig_class_info", map[string]string{"version": "2-2", "className": "Events"}, "/mdr/cdashig/2-2/classes/Events/domains"},
		{"get_cdashig_scenarios_info", map[string]string{"version": "2-2"}, "/mdr/cdashig/2-2/scenarios"},
		{"get_adam_product_info", map[string]string{"product": "adamig-1-3"}, "/mdr/adam/adamig-1-3"},
		{"get_adam_datastructure_info", map[string]string{"product": "adamig-1-3", "datastructure": "BDS"}, "/mdr/adam/adamig-1-3/datastructures/BDS"},
		{"get_qrs_info", map[string]string{"instrument": "SIXMW1", "version": "1-0"}, "/mdr/qrs/instruments/SIXMW1/versions/1-0"},
		{"get_package_ct_info", map[string]string{"package": "sdtmct-2025-09-26"}, "/mdr/ct/packages/sdtmct-2025-09-26"},
		{"get_package_ct_codelist_info", map[string]string{"package": "sdtmct-2025-09-26", "codelist": "C66731"}, "/mdr/ct/packages/sdtmct-2025-09-26/codelists/C66731"},
		{"get_package_ct_codelist_term_info", map[string]string{"package": "sdtmct-2025-09-26", "codelist": "C66731", "term": "C49487"}, "/mdr/ct/packages/sdtmct-2025-09-26/codelists/C66731/terms/C49487"},
	}
	for _, tt := range tests {
		op := registry.MustGet(tt.tool)
		require.NoError(t, op.Validate(tt.params), tt.tool)
		assert.Equal(t, tt.want, op.BuildPath(tt.params), tt.tool)
	}
}

func TestCTPackagesWellFormed(t *testing.T) {
	assert.Greater(t, CTPackages.Len(), 180)
	assert.True(t, CTPackages.Contains("sdtmct-2025-09-26"))
	assert.True(t, CTPackages.Contains("qs-ftct-2014-09-26"))
	assert.True(t, CTPackages.Contains("tmfct-2024-09-27"))
	assert.False(t, CTPackages.Contains("sdtmct-1999-01-01"))
}
