package domain

// MarkerPoint is a map pin derived from an itinerary item. It is computed on
// demand and never stored.
type MarkerPoint struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Coords  Coords   `json:"coords"`
	Type    ItemType `json:"type"`
	Address string   `json:"address,omitempty"`
}

type PlaceCategory string

const (
	PlaceBeach     PlaceCategory = "praia"
	PlaceTrail     PlaceCategory = "trilha"
	PlaceViewpoint PlaceCategory = "mirante"
	PlaceFood      PlaceCategory = "comida"
	PlaceEvent     PlaceCategory = "evento"
	PlaceParking   PlaceCategory = "estacionamento"
)

var placeCategories = []PlaceCategory{PlaceBeach, PlaceTrail, PlaceViewpoint, PlaceFood, PlaceEvent, PlaceParking}

func ParsePlaceCategory(s string) (PlaceCategory, error) {
	for _, c := range placeCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrInvalidFilter
}

// Place is an entry of the directory map.
type Place struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    PlaceCategory `json:"category"`
	Coords      Coords        `json:"coords"`
	Description string        `json:"description,omitempty"`
	Rating      *float64      `json:"rating,omitempty"`
}

type BoundingBox struct {
	Min Coords `json:"min"`
	Max Coords `json:"max"`
}

// DayMap is what the itinerary map renders for a single day.
type DayMap struct {
	Day     int           `json:"day"`
	Markers []MarkerPoint `json:"markers"`
	Path    []Coords      `json:"path,omitempty"`
	Bounds  *BoundingBox  `json:"bounds,omitempty"`
}
