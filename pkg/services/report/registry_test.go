package report

import (
	"testing"

	"github.com/de-tools/csv-reporter/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Generate(t *testing.T) {
	registry, err := NewRegistry(map[string]Generator{
		"performance": Performance,
	})
	require.NoError(t, err)

	result, err := registry.Generate("performance", sampleTable())
	require.NoError(t, err)
	assert.Equal(t, []string{"№", "position", "performance"}, result.Headers)
	assert.Len(t, result.Rows, 2)
}

func TestRegistry_UnknownReport(t *testing.T) {
	registry, err := NewRegistry(map[string]Generator{
		"performance": Performance,
	})
	require.NoError(t, err)

	_, err = registry.Generate("unknown", sampleTable())
	assert.ErrorIs(t, err, domain.ErrUnknownReport)
	assert.Contains(t, err.Error(), `"unknown"`)
}

func TestRegistry_RegisterValidation(t *testing.T) {
	registry, err := NewRegistry(nil)
	require.NoError(t, err)

	assert.Error(t, registry.Register("", Performance))
	assert.Error(t, registry.Register("performance", nil))

	require.NoError(t, registry.Register("performance", Performance))
	assert.ErrorContains(t, registry.Register("performance", Performance), "already registered")
}

func TestRegistry_Names(t *testing.T) {
	registry, err := NewRegistry(map[string]Generator{
		"performance": Performance,
		"attendance":  Performance,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"attendance", "performance"}, registry.Names())
}
