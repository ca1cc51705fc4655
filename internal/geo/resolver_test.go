package geo_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floripa_guide/internal/catalog"
	"floripa_guide/internal/domain"
	"floripa_guide/internal/geo"
	"floripa_guide/internal/itinerary"
)

func TestResolve_TitleThenLocation(t *testing.T) {
	r := geo.NewResolver(catalog.Default().Coords)

	c, ok := r.Resolve("Ostradamus", "")
	require.True(t, ok)
	assert.Equal(t, domain.Coords{Lat: -27.5827, Lon: -48.5141}, c)

	c, ok = r.Resolve("Praia da Joaquina", "joaquina")
	require.True(t, ok)
	assert.Equal(t, domain.Coords{Lat: -27.5977, Lon: -48.4695}, c)

	_, ok = r.Resolve("Lugar Nenhum", "")
	assert.False(t, ok)
	_, ok = r.Resolve("Lugar Nenhum", "tambemNao")
	assert.False(t, ok)
}

func TestResolve_SpotTableWinsOverEvents(t *testing.T) {
	r := geo.NewResolver(domain.CoordTables{
		Spots:  map[string]domain.Coords{"x": {Lat: 1, Lon: 1}},
		Events: map[string]domain.Coords{"x": {Lat: 2, Lon: 2}},
	})
	c, ok := r.Resolve("x", "")
	require.True(t, ok)
	assert.Equal(t, 1.0, c.Lat)
}

func TestNewResolver_CopiesTables(t *testing.T) {
	tables := domain.CoordTables{Spots: map[string]domain.Coords{"a": {Lat: 1, Lon: 2}}}
	r := geo.NewResolver(tables)
	tables.Spots["a"] = domain.Coords{Lat: 9, Lon: 9}
	tables.Spots["b"] = domain.Coords{Lat: 3, Lon: 3}

	c, _ := r.Resolve("a", "")
	assert.Equal(t, domain.Coords{Lat: 1, Lon: 2}, c)
	_, ok := r.Resolve("b", "")
	assert.False(t, ok)
}

func TestDayMarkers_FullDay(t *testing.T) {
	cat := catalog.Default()
	r := geo.NewResolver(cat.Coords)
	it := itinerary.Build(cat, domain.Preferences{Days: 2, Budget: domain.BudgetLow, Types: domain.AllActivities})

	ms := r.DayMarkers(it, 1, cat)
	require.Len(t, ms, 5)
	for i, m := range ms {
		assert.Equal(t, it.Days[1].Items[i].Title, m.Name)
		assert.Equal(t, it.Days[1].Items[i].Type, m.Type)
	}
	assert.Equal(t, "1-0", ms[0].ID)
	assert.Equal(t, "1-4", ms[4].ID)

	// day 2 restaurant is Sushi Master, nightlife is the Lagoa party
	assert.Equal(t, "Lagoa da Conceição", ms[2].Address)
	assert.Equal(t, "Lagoa da Conceição", ms[4].Address)
	assert.Empty(t, ms[0].Address)
}

func TestDayMarkers_SkipsUnresolvedAndOutOfRange(t *testing.T) {
	r := geo.NewResolver(catalog.Default().Coords)
	it := domain.Itinerary{Days: []domain.Day{{Day: 1, Items: []domain.Item{
		{Title: "Nowhere", Type: domain.ItemBeach},
		{Title: "Ostradamus", Type: domain.ItemRestaurant},
	}}}}

	ms := r.DayMarkers(it, 0, domain.Catalog{})
	require.Len(t, ms, 1)
	assert.Equal(t, "0-1", ms[0].ID)

	assert.Empty(t, r.DayMarkers(it, 1, domain.Catalog{}))
	assert.Empty(t, r.DayMarkers(it, -1, domain.Catalog{}))
}

func TestPath_NeedsTwoPoints(t *testing.T) {
	r := geo.NewResolver(catalog.Default().Coords)

	assert.Nil(t, r.Path(domain.Day{}))
	assert.Nil(t, r.Path(domain.Day{Items: []domain.Item{{Title: "Ostradamus"}}}))
	assert.Nil(t, r.Path(domain.Day{Items: []domain.Item{{Title: "Ostradamus"}, {Title: "Nowhere"}}}))

	p := r.Path(domain.Day{Items: []domain.Item{{Title: "Ostradamus"}, {Title: "Nowhere"}, {Title: "x", Location: "campeche"}}})
	require.Len(t, p, 2)
	assert.Equal(t, -27.5827, p[0].Lat)
	assert.Equal(t, -27.6585, p[1].Lat)
}

func TestBounds(t *testing.T) {
	assert.Nil(t, geo.Bounds(nil))

	b := geo.Bounds([]domain.Coords{{Lat: -27.5, Lon: -48.6}, {Lat: -27.7, Lon: -48.4}, {Lat: -27.6, Lon: -48.5}})
	require.NotNil(t, b)
	assert.Equal(t, domain.Coords{Lat: -27.7, Lon: -48.6}, b.Min)
	assert.Equal(t, domain.Coords{Lat: -27.5, Lon: -48.4}, b.Max)

	one := geo.Bounds([]domain.Coords{{Lat: 1, Lon: 2}})
	assert.Equal(t, one.Min, one.Max)
}

func TestDayMap(t *testing.T) {
	cat := catalog.Default()
	r := geo.NewResolver(cat.Coords)
	it := itinerary.Build(cat, domain.Preferences{Days: 2, Budget: domain.BudgetMedium, Types: []domain.Activity{domain.ActivityBeaches}})

	m, err := r.DayMap(it, 1, cat)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Day)
	require.Len(t, m.Markers, 2)
	require.Len(t, m.Path, 2)
	require.NotNil(t, m.Bounds)

	_, err = r.DayMap(it, 3, cat)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = r.DayMap(it, 0, cat)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDayMap_SinglePointHasNoPath(t *testing.T) {
	cat := catalog.Default()
	r := geo.NewResolver(cat.Coords)
	it := itinerary.Build(cat, domain.Preferences{Days: 1, Budget: domain.BudgetHigh, Types: []domain.Activity{domain.ActivityRestaurants}})

	m, err := r.DayMap(it, 1, cat)
	require.NoError(t, err)
	assert.Len(t, m.Markers, 1)
	assert.Nil(t, m.Path)
	require.NotNil(t, m.Bounds)
	assert.Equal(t, m.Bounds.Min, m.Bounds.Max)
}
