// Package geo maps catalog and itinerary entries onto map coordinates.
package geo

import (
	"fmt"

	"github.com/paulmach/orb"

	"floripa_guide/internal/domain"
)

// Resolver looks titles and location keys up in the three coordinate tables.
// It keeps private copies of the tables, so later changes to the caller's
// maps are not observed.
type Resolver struct {
	tables []map[string]domain.Coords // spot, restaurant, event
}

func NewResolver(t domain.CoordTables) *Resolver {
	return &Resolver{tables: []map[string]domain.Coords{
		copyTable(t.Spots),
		copyTable(t.Restaurants),
		copyTable(t.Events),
	}}
}

func copyTable(in map[string]domain.Coords) map[string]domain.Coords {
	out := make(map[string]domain.Coords, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (r *Resolver) lookup(key string) (domain.Coords, bool) {
	for _, t := range r.tables {
		if c, ok := t[key]; ok {
			return c, true
		}
	}
	return domain.Coords{}, false
}

// Resolve tries the title first and then the location key, each against the
// spot, restaurant and event tables in that order.
func (r *Resolver) Resolve(title, locationKey string) (domain.Coords, bool) {
	if c, ok := r.lookup(title); ok {
		return c, true
	}
	if locationKey != "" {
		return r.lookup(locationKey)
	}
	return domain.Coords{}, false
}

func (r *Resolver) ResolveItem(it domain.Item) (domain.Coords, bool) {
	return r.Resolve(it.Title, it.Location)
}

// DayMarkers returns the pins for it.Days[dayIndex]; unresolvable items are
// skipped. dayIndex is zero-based.
func (r *Resolver) DayMarkers(it domain.Itinerary, dayIndex int, cat domain.Catalog) []domain.MarkerPoint {
	out := []domain.MarkerPoint{}
	if dayIndex < 0 || dayIndex >= len(it.Days) {
		return out
	}
	for i, item := range it.Days[dayIndex].Items {
		c, ok := r.ResolveItem(item)
		if !ok {
			continue
		}
		out = append(out, domain.MarkerPoint{
			ID:      fmt.Sprintf("%d-%d", dayIndex, i),
			Name:    item.Title,
			Coords:  c,
			Type:    item.Type,
			Address: ItemAddress(item, cat),
		})
	}
	return out
}

// ItemAddress gives restaurants their street address and events their venue.
func ItemAddress(item domain.Item, cat domain.Catalog) string {
	key := item.Location
	if key == "" {
		key = item.Title
	}
	switch item.Type {
	case domain.ItemRestaurant:
		for _, r := range cat.Restaurants {
			if r.Name == key {
				return r.Address
			}
		}
	case domain.ItemNightlife:
		for _, e := range cat.Events {
			if e.NameKey == key {
				return e.Location
			}
		}
	}
	return ""
}

// Path is the route line through a day's resolvable items, in item order.
// Fewer than two points make no line, and nil is returned.
func (r *Resolver) Path(day domain.Day) []domain.Coords {
	var pts []domain.Coords
	for _, item := range day.Items {
		if c, ok := r.ResolveItem(item); ok {
			pts = append(pts, c)
		}
	}
	if len(pts) < 2 {
		return nil
	}
	return pts
}

// Bounds is the smallest box containing all points, or nil for none.
func Bounds(points []domain.Coords) *domain.BoundingBox {
	if len(points) == 0 {
		return nil
	}
	mp := make(orb.MultiPoint, 0, len(points))
	for _, p := range points {
		mp = append(mp, orb.Point{p.Lon, p.Lat})
	}
	b := mp.Bound()
	return &domain.BoundingBox{
		Min: domain.Coords{Lat: b.Min.Lat(), Lon: b.Min.Lon()},
		Max: domain.Coords{Lat: b.Max.Lat(), Lon: b.Max.Lon()},
	}
}

// DayMap assembles markers, route and viewport for a one-based day number.
func (r *Resolver) DayMap(it domain.Itinerary, day int, cat domain.Catalog) (domain.DayMap, error) {
	if day < 1 || day > len(it.Days) {
		return domain.DayMap{}, fmt.Errorf("day %d of %d: %w", day, len(it.Days), domain.ErrNotFound)
	}
	markers := r.DayMarkers(it, day-1, cat)
	pts := make([]domain.Coords, 0, len(markers))
	for _, m := range markers {
		pts = append(pts, m.Coords)
	}
	return domain.DayMap{
		Day:     day,
		Markers: markers,
		Path:    r.Path(it.Days[day-1]),
		Bounds:  Bounds(pts),
	}, nil
}
