package material

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osama-ata/structural-analysis/internal/analysis"
)

func TestByName(t *testing.T) {
	m, err := ByName("steel")
	require.NoError(t, err)
	assert.Equal(t, 200e9, m.ElasticModulus)
	assert.Equal(t, 250e6, m.YieldStrength)

	m, err = ByName("timber")
	require.NoError(t, err)
	assert.Equal(t, 11e9, m.ElasticModulus)
}

func TestByNameUnknown(t *testing.T) {
	_, err := ByName("unobtainium")

	var ipe *analysis.InvalidParameterError
	require.ErrorAs(t, err, &ipe)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "steel")
	assert.Contains(t, names, "aluminum")
	assert.Contains(t, names, "concrete")
	assert.Contains(t, names, "timber")
}
