package catalog

import (
	"strings"

	"floripa_guide/internal/domain"
)

// AllFilter is the front end's "show everything" filter value.
const AllFilter = "todos"

func isAll(f string) bool { return f == "" || f == AllFilter }

func SpotsByCategory(cat domain.Catalog, filter string) ([]domain.Spot, error) {
	if isAll(filter) {
		return cat.Spots, nil
	}
	c, err := domain.ParseSpotCategory(filter)
	if err != nil {
		return nil, err
	}
	out := []domain.Spot{}
	for _, s := range cat.Spots {
		if s.Category == c {
			out = append(out, s)
		}
	}
	return out, nil
}

func RestaurantsByCategory(cat domain.Catalog, filter string) ([]domain.Restaurant, error) {
	if isAll(filter) {
		return cat.Restaurants, nil
	}
	c, err := domain.ParseRestaurantCategory(filter)
	if err != nil {
		return nil, err
	}
	out := []domain.Restaurant{}
	for _, r := range cat.Restaurants {
		if r.Category == c {
			out = append(out, r)
		}
	}
	return out, nil
}

func CouponsByCategory(cat domain.Catalog, filter string) ([]domain.Coupon, error) {
	if isAll(filter) {
		return cat.Coupons, nil
	}
	c, err := domain.ParseCouponCategory(filter)
	if err != nil {
		return nil, err
	}
	out := []domain.Coupon{}
	for _, cp := range cat.Coupons {
		if cp.Category == c {
			out = append(out, cp)
		}
	}
	return out, nil
}

func DriversByType(cat domain.Catalog, filter string) ([]domain.Driver, error) {
	if isAll(filter) {
		return cat.Drivers, nil
	}
	t, err := domain.ParseDriverType(filter)
	if err != nil {
		return nil, err
	}
	out := []domain.Driver{}
	for _, d := range cat.Drivers {
		if d.Type == t {
			out = append(out, d)
		}
	}
	return out, nil
}

type SearchResult struct {
	Spots       []domain.Spot       `json:"spots"`
	Restaurants []domain.Restaurant `json:"restaurants"`
	Events      []domain.Event      `json:"events"`
	Coupons     []domain.Coupon     `json:"coupons"`
}

func (r SearchResult) Empty() bool {
	return len(r.Spots) == 0 && len(r.Restaurants) == 0 && len(r.Events) == 0 && len(r.Coupons) == 0
}

// Search does a case-insensitive substring match over the text fields a
// visitor sees. An empty query matches nothing.
func Search(cat domain.Catalog, q string) SearchResult {
	res := SearchResult{
		Spots:       []domain.Spot{},
		Restaurants: []domain.Restaurant{},
		Events:      []domain.Event{},
		Coupons:     []domain.Coupon{},
	}
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return res
	}
	for _, s := range cat.Spots {
		if matchAny(q, string(s.NameKey), s.Description, string(s.Category)) {
			res.Spots = append(res.Spots, s)
		}
	}
	for _, r := range cat.Restaurants {
		if matchAny(q, r.Name, r.Description, string(r.Category), r.Address) {
			res.Restaurants = append(res.Restaurants, r)
		}
	}
	for _, e := range cat.Events {
		if matchAny(q, e.NameKey, e.Description, string(e.Category), e.Location) {
			res.Events = append(res.Events, e)
		}
	}
	for _, c := range cat.Coupons {
		if matchAny(q, c.Title, c.Business, c.Description, string(c.Category), c.Code) {
			res.Coupons = append(res.Coupons, c)
		}
	}
	return res
}

func matchAny(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
