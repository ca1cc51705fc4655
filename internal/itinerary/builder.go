// Package itinerary composes day-by-day plans from the static catalog.
//
// Build is deterministic: candidates for each slot are cycled with modulo
// arithmetic over fixed lists, so equal preferences always yield equal plans.
package itinerary

import (
	"sort"

	"floripa_guide/internal/catalog"
	"floripa_guide/internal/domain"
)

const (
	WeatherSummary       = "Clima ameno e variável"
	ForecastPlaceholder  = "Sol e nuvens"
	RecommendationReason = "Boa avaliação e acesso fácil"
	SuggestedPDFName     = "roteiro-floripa.pdf"
	MaxRecommendations   = 4
)

type transportPlan struct {
	summary     string
	suggestions []string
}

var transportByBudget = map[domain.Budget]transportPlan{
	domain.BudgetLow:    {summary: "Ônibus e caminhadas", suggestions: []string{"Ônibus", "Caminhada"}},
	domain.BudgetMedium: {summary: "Uber e ônibus", suggestions: []string{"Uber", "Ônibus"}},
	domain.BudgetHigh:   {summary: "Aluguel de carro", suggestions: []string{"Aluguel de carro", "Uber", "Bike"}},
}

// TransportFor returns the transport summary and suggestions of a budget.
// Anything outside the three tiers is treated as the low tier.
func TransportFor(b domain.Budget) domain.Transport {
	tp, ok := transportByBudget[b]
	if !ok {
		tp = transportByBudget[domain.BudgetLow]
	}
	return domain.Transport{Summary: tp.summary, Suggestions: append([]string(nil), tp.suggestions...)}
}

// candidates are the per-slot lists a plan cycles through.
type candidates struct {
	beaches     []domain.Spot
	trails      []domain.Spot
	restaurants []domain.Restaurant
	nightlife   []domain.Event
}

func pickCandidates(cat domain.Catalog) candidates {
	var c candidates
	for _, s := range cat.Spots {
		switch s.Category {
		case domain.SpotBeach:
			c.beaches = append(c.beaches, s)
		case domain.SpotTrail:
			c.trails = append(c.trails, s)
		}
	}
	c.restaurants = RankRestaurants(cat.Restaurants)
	for _, e := range cat.Events {
		if e.Nightlife {
			c.nightlife = append(c.nightlife, e)
		}
	}
	return c
}

// RankRestaurants returns a copy sorted premium, then destaque, then free.
// Ties keep catalog order.
func RankRestaurants(rs []domain.Restaurant) []domain.Restaurant {
	out := append([]domain.Restaurant(nil), rs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Plan.Rank() < out[j].Plan.Rank() })
	return out
}

// Build turns preferences into a full itinerary. It never fails: slots whose
// candidate list is empty are left out.
func Build(cat domain.Catalog, prefs domain.Preferences) domain.Itinerary {
	prefs = prefs.Normalized()
	c := pickCandidates(cat)
	transport := TransportFor(prefs.Budget)

	days := make([]domain.Day, 0, prefs.Days)
	for d := 1; d <= prefs.Days; d++ {
		days = append(days, domain.Day{Day: d, Items: buildDay(c, prefs, d, transport.Summary)})
	}

	daily := make([]domain.DailyForecast, prefs.Days)
	for i := range daily {
		daily[i] = domain.DailyForecast{Day: i + 1, Forecast: ForecastPlaceholder}
	}

	n := min(MaxRecommendations, len(c.restaurants))
	recs := make([]domain.Recommendation, 0, n)
	for _, r := range c.restaurants[:n] {
		recs = append(recs, domain.Recommendation{Title: r.Name, Reason: RecommendationReason})
	}

	return domain.Itinerary{
		Days:            days,
		Transport:       transport,
		Weather:         domain.Weather{Summary: WeatherSummary, Daily: daily},
		Recommendations: recs,
		PDF:             domain.PDFHint{SuggestedFilename: SuggestedPDFName},
		Source:          domain.SourceHeuristic,
	}
}

func buildDay(c candidates, prefs domain.Preferences, d int, transport string) []domain.Item {
	items := []domain.Item{}

	if prefs.Wants(domain.ActivityBeaches) && len(c.beaches) > 0 {
		s := c.beaches[(d-1)%len(c.beaches)]
		items = append(items, domain.Item{
			Time:        domain.SlotEarlyMorning,
			Title:       catalog.SpotLabel(s.NameKey),
			Type:        domain.ItemBeach,
			Location:    string(s.NameKey),
			Description: s.Description,
			Transport:   transport,
		})
	}

	if prefs.Wants(domain.ActivityTrails) && len(c.trails) > 0 {
		s := c.trails[(d-1)%len(c.trails)]
		items = append(items, domain.Item{
			Time:        domain.SlotLateMorning,
			Title:       catalog.TrailLabel(s.NameKey),
			Type:        domain.ItemTrail,
			Location:    string(s.NameKey),
			Description: s.Description,
			Transport:   transport,
		})
	}

	if prefs.Wants(domain.ActivityRestaurants) && len(c.restaurants) > 0 {
		r := c.restaurants[(d-1)%len(c.restaurants)]
		items = append(items, domain.Item{
			Time:        domain.SlotEarlyAfternoon,
			Title:       r.Name,
			Type:        domain.ItemRestaurant,
			Location:    r.Name,
			Description: r.Description,
			Transport:   transport,
		})
	}

	// Indexed by d rather than d-1 so the afternoon beach is the next one in
	// the list, not a repeat of the morning.
	if prefs.Wants(domain.ActivityBeaches) && len(c.beaches) > 0 {
		s := c.beaches[d%len(c.beaches)]
		items = append(items, domain.Item{
			Time:        domain.SlotMidAfternoon,
			Title:       catalog.AfternoonLabel(s.NameKey),
			Type:        domain.ItemType(s.Category),
			Location:    string(s.NameKey),
			Description: s.Description,
			Transport:   transport,
		})
	}

	if prefs.Wants(domain.ActivityNightlife) && len(c.nightlife) > 0 {
		e := c.nightlife[(d-1)%len(c.nightlife)]
		items = append(items, domain.Item{
			Time:        domain.SlotNight,
			Title:       catalog.EventLabel(e.NameKey),
			Type:        domain.ItemNightlife,
			Location:    e.NameKey,
			Description: e.Description,
			Transport:   transport,
		})
	}

	return items
}
