package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryInvariants(t *testing.T) {
	seen := map[string]bool{}
	for _, res := range Collections {
		assert.NotEmpty(t, res.Collection, res.Name)
		assert.False(t, seen[res.Collection], "duplicate collection %s", res.Collection)
		seen[res.Collection] = true

		assert.NotEmpty(t, res.IDField, res.Name)

		if res.Paginated {
			assert.Greater(t, res.DefaultPageSize, 0, res.Name)
			assert.GreaterOrEqual(t, res.MaxPageSize, res.DefaultPageSize, res.Name)
		}
	}
}

func TestSearchableHaveSearchSpecs(t *testing.T) {
	for _, res := range Searchable {
		require.NotNil(t, res.Search, res.Name)
		assert.NotEmpty(t, res.Search.Type, res.Name)
		assert.NotEmpty(t, res.Search.Fields, res.Name)
		assert.NotEmpty(t, res.Search.URLPrefix, res.Name)
	}
}

func TestByName(t *testing.T) {
	for _, res := range All {
		assert.Same(t, res, ByName(res.Name))
	}
	assert.Nil(t, ByName("admins"), "admins are not routed as content")
	assert.Nil(t, ByName("unknown"))
}
