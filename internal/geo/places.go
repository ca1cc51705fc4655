package geo

import (
	"fmt"

	"floripa_guide/internal/domain"
)

// parking lots are map-only; they have no catalog entry.
var parking = []domain.Place{
	{ID: "est1", Name: "Estacionamento Joaquina", Category: domain.PlaceParking, Coords: domain.Coords{Lat: -27.5990, Lon: -48.4660}},
}

func spotPlaceCategory(c domain.SpotCategory) domain.PlaceCategory {
	switch c {
	case domain.SpotTrail:
		return domain.PlaceTrail
	case domain.SpotViewpoint:
		return domain.PlaceViewpoint
	}
	return domain.PlaceBeach
}

// Places is the unified directory map: every catalog entry with a known
// coordinate plus the parking lots.
func Places(cat domain.Catalog) []domain.Place {
	out := []domain.Place{}
	for _, s := range cat.Spots {
		c, ok := cat.Coords.Spots[string(s.NameKey)]
		if !ok {
			continue
		}
		rating := s.Rating
		out = append(out, domain.Place{
			ID:          fmt.Sprintf("spot-%d", s.ID),
			Name:        string(s.NameKey),
			Category:    spotPlaceCategory(s.Category),
			Coords:      c,
			Description: s.Description,
			Rating:      &rating,
		})
	}
	for _, r := range cat.Restaurants {
		c, ok := cat.Coords.Restaurants[r.Name]
		if !ok {
			continue
		}
		rating := r.Rating
		out = append(out, domain.Place{
			ID:          fmt.Sprintf("rest-%d", r.ID),
			Name:        r.Name,
			Category:    domain.PlaceFood,
			Coords:      c,
			Description: r.Description,
			Rating:      &rating,
		})
	}
	for _, e := range cat.Events {
		c, ok := cat.Coords.Events[e.NameKey]
		if !ok {
			continue
		}
		out = append(out, domain.Place{
			ID:          fmt.Sprintf("evt-%d", e.ID),
			Name:        e.NameKey,
			Category:    domain.PlaceEvent,
			Coords:      c,
			Description: e.Description,
		})
	}
	return append(out, parking...)
}

func FilterPlaces(places []domain.Place, c domain.PlaceCategory) []domain.Place {
	out := []domain.Place{}
	for _, p := range places {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}
