package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floripa_guide/internal/catalog"
	"floripa_guide/internal/domain"
	"floripa_guide/internal/geo"
)

func TestPlaces(t *testing.T) {
	cat := catalog.Default()
	ps := geo.Places(cat)
	require.Len(t, ps, len(cat.Spots)+len(cat.Restaurants)+len(cat.Events)+1)

	assert.Equal(t, "spot-1", ps[0].ID)
	assert.Equal(t, domain.PlaceBeach, ps[0].Category)
	require.NotNil(t, ps[0].Rating)
	assert.Equal(t, 4.8, *ps[0].Rating)

	last := ps[len(ps)-1]
	assert.Equal(t, "est1", last.ID)
	assert.Equal(t, domain.PlaceParking, last.Category)
}

func TestPlaces_SkipsEntriesWithoutCoordinates(t *testing.T) {
	cat := catalog.Default()
	delete(cat.Coords.Restaurants, "Ostradamus")
	for _, p := range geo.Places(cat) {
		assert.NotEqual(t, "rest-1", p.ID)
	}
}

func TestFilterPlaces(t *testing.T) {
	ps := geo.Places(catalog.Default())

	trails := geo.FilterPlaces(ps, domain.PlaceTrail)
	require.Len(t, trails, 2)
	for _, p := range trails {
		assert.Equal(t, domain.PlaceTrail, p.Category)
	}

	views := geo.FilterPlaces(ps, domain.PlaceViewpoint)
	require.Len(t, views, 1)
	assert.Equal(t, "morroCruz", views[0].Name)

	assert.Len(t, geo.FilterPlaces(ps, domain.PlaceFood), 8)
	assert.Len(t, geo.FilterPlaces(ps, domain.PlaceEvent), 6)
	assert.NotNil(t, geo.FilterPlaces(nil, domain.PlaceBeach))
}
