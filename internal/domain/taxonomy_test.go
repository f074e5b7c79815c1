package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomyIsConsistent(t *testing.T) {
	require.NoError(t, validateTaxonomy())

	assert.Len(t, Categories, 15)
	assert.Len(t, Cities, 10)

	for _, c := range Categories {
		assert.NotEmpty(t, ServicesFor(c), "category %q must have services", c)
	}
}

func TestIsCategory(t *testing.T) {
	assert.True(t, IsCategory("Paslaugos"))
	assert.True(t, IsCategory("Statyba, remontas, medžiagos, NT"))
	assert.False(t, IsCategory("Nežinoma kategorija"))
	assert.False(t, IsCategory(""))
}

func TestIsCity(t *testing.T) {
	assert.True(t, IsCity("Vilnius"))
	assert.True(t, IsCity("Šiauliai"))
	assert.False(t, IsCity("Ryga"))
	assert.False(t, IsCity("vilnius"), "city match is exact")
}

func TestServicesForUnknownCategory(t *testing.T) {
	assert.Nil(t, ServicesFor("Nežinoma"))
}
