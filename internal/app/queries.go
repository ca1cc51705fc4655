package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"floripa_guide/internal/adapters/observability"
	"floripa_guide/internal/catalog"
	"floripa_guide/internal/domain"
	"floripa_guide/internal/geo"
	"floripa_guide/internal/itinerary"
)

type QueryService struct {
	cat      domain.Catalog
	places   []domain.Place
	resolver *geo.Resolver
	cache    domain.Cache
	cacheTTL time.Duration
	planner  domain.ItineraryPlanner
}

// NewQueryService serves the catalog c. cache and planner may be nil: without
// a cache every itinerary is rebuilt, without a planner AI requests use the
// heuristic builder.
func NewQueryService(c domain.Catalog, cache domain.Cache, ttl time.Duration, planner domain.ItineraryPlanner) *QueryService {
	return &QueryService{
		cat:      c,
		places:   geo.Places(c),
		resolver: geo.NewResolver(c.Coords),
		cache:    cache,
		cacheTTL: ttl,
		planner:  planner,
	}
}

func (s *QueryService) ListSpots(category string) ([]domain.Spot, error) {
	return catalog.SpotsByCategory(s.cat, category)
}

func (s *QueryService) ListRestaurants(category string) ([]domain.Restaurant, error) {
	return catalog.RestaurantsByCategory(s.cat, category)
}

func (s *QueryService) ListEvents() []domain.Event { return s.cat.Events }

func (s *QueryService) ListCoupons(category string) ([]domain.Coupon, error) {
	return catalog.CouponsByCategory(s.cat, category)
}

func (s *QueryService) ListDrivers(driverType string) ([]domain.Driver, error) {
	return catalog.DriversByType(s.cat, driverType)
}

func (s *QueryService) StayTips() domain.StayTips { return s.cat.Stays }

func (s *QueryService) GetSpot(id int) (domain.Spot, error) {
	for _, v := range s.cat.Spots {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Spot{}, fmt.Errorf("spot %d: %w", id, domain.ErrNotFound)
}

func (s *QueryService) GetRestaurant(id int) (domain.Restaurant, error) {
	for _, v := range s.cat.Restaurants {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Restaurant{}, fmt.Errorf("restaurant %d: %w", id, domain.ErrNotFound)
}

func (s *QueryService) GetEvent(id int) (domain.Event, error) {
	for _, v := range s.cat.Events {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Event{}, fmt.Errorf("event %d: %w", id, domain.ErrNotFound)
}

func (s *QueryService) GetCoupon(id int) (domain.Coupon, error) {
	for _, v := range s.cat.Coupons {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Coupon{}, fmt.Errorf("coupon %d: %w", id, domain.ErrNotFound)
}

func (s *QueryService) GetDriver(id string) (domain.Driver, error) {
	for _, v := range s.cat.Drivers {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Driver{}, fmt.Errorf("driver %s: %w", id, domain.ErrNotFound)
}

func (s *QueryService) Search(q string) catalog.SearchResult {
	return catalog.Search(s.cat, q)
}

// MapPlaces lists map entries, optionally narrowed to one place category.
func (s *QueryService) MapPlaces(category string) ([]domain.Place, error) {
	if category == "" || category == catalog.AllFilter {
		return s.places, nil
	}
	c, err := domain.ParsePlaceCategory(category)
	if err != nil {
		return nil, err
	}
	return geo.FilterPlaces(s.places, c), nil
}

func itineraryKey(prefs domain.Preferences, ai bool) string {
	src := domain.SourceHeuristic
	if ai {
		src = domain.SourceAI
	}
	sum := sha1.Sum([]byte(prefs.Key()))
	return fmt.Sprintf("itinerary:%s:%s", src, hex.EncodeToString(sum[:]))
}

// Itinerary returns the plan for prefs, from cache when possible.
func (s *QueryService) Itinerary(ctx context.Context, prefs domain.Preferences, useAI bool) (domain.Itinerary, error) {
	if err := ctx.Err(); err != nil {
		return domain.Itinerary{}, err
	}
	prefs = prefs.Normalized()
	useAI = useAI && s.planner != nil
	key := itineraryKey(prefs, useAI)

	if s.cache != nil {
		var cached domain.Itinerary
		ok, err := s.cache.Get(ctx, key, &cached)
		if ok && err == nil {
			return cached, nil
		}
		if err != nil {
			// unreadable entry counts as a miss; the rebuild below overwrites it
			log.Warn().Err(err).Str("key", key).Msg("itinerary cache read failed")
		}
	}

	it := s.generate(ctx, prefs, useAI)
	// a heuristic fallback is not stored under the AI key, so the next call retries the planner
	if s.cache != nil && (!useAI || it.Source == domain.SourceAI) {
		_ = s.cache.Set(ctx, key, it, int(s.cacheTTL.Seconds()))
	}
	return it, nil
}

func (s *QueryService) generate(ctx context.Context, prefs domain.Preferences, useAI bool) domain.Itinerary {
	if useAI {
		it, err := s.planner.PlanItinerary(ctx, prefs)
		if err == nil && len(it.Days) == 0 {
			err = errors.New("planner returned no days")
		}
		if err == nil {
			it.Source = domain.SourceAI
			observability.ObserveItinerary(domain.SourceAI)
			return it
		}
		log.Warn().Err(err).Str("prefs", prefs.Key()).Msg("ai planner failed, using heuristic")
	}
	it := itinerary.Build(s.cat, prefs)
	observability.ObserveItinerary(domain.SourceHeuristic)
	return it
}

// DayMap renders the map of one day (1-based) of the itinerary for prefs.
func (s *QueryService) DayMap(ctx context.Context, prefs domain.Preferences, day int, useAI bool) (domain.DayMap, error) {
	it, err := s.Itinerary(ctx, prefs, useAI)
	if err != nil {
		return domain.DayMap{}, err
	}
	return s.resolver.DayMap(it, day, s.cat)
}
