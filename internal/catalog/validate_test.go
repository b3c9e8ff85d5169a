package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFlat(t *testing.T) {
	list := NewAllowList("Interventions", "Events", "Findings")

	assert.NoError(t, ValidateFlat("className", "Events", list))

	err := ValidateFlat("className", "Observations", list)
	require.Error(t, err)
	assert.Equal(t,
		"Error: Invalid className 'Observations'. Valid values are: Interventions, Events, Findings",
		err.Error())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "className", verr.Param)
	assert.Equal(t, "Observations", verr.Value)
	assert.Equal(t, list.Values(), verr.Valid)
}

func TestValidateDependentParentCheckedFirst(t *testing.T) {
	dep := NewDependentAllowList().
		Add("adamig-1-1", "ADSL", "BDS").
		Add("adam-occds-1-1", "OCCDS", "AE")

	// Unknown parent is reported against the parent universe even when the
	// child value would be valid somewhere.
	err := ValidateDependent("product", "adamig-9-9", "datastructure", "ADSL", dep)
	require.Error(t, err)
	assert.Equal(t,
		"Error: Invalid product 'adamig-9-9'. Valid values are: adamig-1-1, adam-occds-1-1",
		err.Error())

	// Known parent, child valid elsewhere: the message is scoped to the
	// requested parent and its children.
	err = ValidateDependent("product", "adamig-1-1", "datastructure", "OCCDS", dep)
	require.Error(t, err)
	assert.Equal(t,
		"Error: Invalid datastructure 'OCCDS' for product 'adamig-1-1'. Valid values are: ADSL, BDS",
		err.Error())

	assert.NoError(t, ValidateDependent("product", "adam-occds-1-1", "datastructure", "AE", dep))
}

func TestValidateDependentQRSPairs(t *testing.T) {
	// The published pairs, checked through the real table.
	assert.NoError(t, ValidateDependent("instrument", "AIMS01", "version", "2-0", QRSInstrumentVersions))
	err := ValidateDependent("instrument", "AIMS01", "version", "1-0", QRSInstrumentVersions)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid version '1-0' for instrument 'AIMS01'")
	assert.Contains(t, err.Error(), "2-0")
}
