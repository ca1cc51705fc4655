package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	redisad "floripa_guide/internal/adapters/redis"
	"floripa_guide/internal/app"
	"floripa_guide/internal/catalog"
	"floripa_guide/internal/domain"
)

// ---- fakes ----

type fakeCache struct {
	store map[string]any
	gets  int
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.gets++
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.Itinerary:
		*d = v.(domain.Itinerary)
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

type fakePlanner struct {
	it    domain.Itinerary
	err   error
	calls int
}

func (p *fakePlanner) PlanItinerary(ctx context.Context, prefs domain.Preferences) (domain.Itinerary, error) {
	p.calls++
	return p.it, p.err
}

func beachPrefs(days int) domain.Preferences {
	return domain.Preferences{Days: days, Budget: domain.BudgetMedium, Types: []domain.Activity{domain.ActivityBeaches}, Group: domain.GroupCouple}
}

// ---- tests ----

func TestItinerary_CacheMissThenHit(t *testing.T) {
	cache := &fakeCache{}
	q := app.NewQueryService(catalog.Default(), cache, 10*time.Minute, nil)

	it, err := q.Itinerary(context.Background(), beachPrefs(2), false)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(it.Days) != 2 || it.Source != domain.SourceHeuristic {
		t.Fatalf("unexpected itinerary: %+v", it)
	}
	if len(cache.store) != 1 {
		t.Fatalf("expected one cached entry, got %d", len(cache.store))
	}

	// poison the cached value; the second call must return it untouched
	for k, v := range cache.store {
		poisoned := v.(domain.Itinerary)
		poisoned.Weather.Summary = "from cache"
		cache.store[k] = poisoned
	}
	it2, _ := q.Itinerary(context.Background(), beachPrefs(2), false)
	if it2.Weather.Summary != "from cache" {
		t.Fatalf("expected cached itinerary, got %q", it2.Weather.Summary)
	}
}

func TestItinerary_EquivalentPrefsShareCacheEntry(t *testing.T) {
	cache := &fakeCache{}
	q := app.NewQueryService(catalog.Default(), cache, time.Minute, nil)

	a := domain.Preferences{Days: 0, Budget: domain.BudgetLow, Group: domain.GroupFamily}
	b := domain.Preferences{Days: 1, Budget: domain.BudgetLow, Group: domain.GroupFamily,
		Types: []domain.Activity{domain.ActivityRestaurants, domain.ActivityBeaches, domain.ActivityBeaches}}

	if _, err := q.Itinerary(context.Background(), a, false); err != nil {
		t.Fatal(err)
	}
	if _, err := q.Itinerary(context.Background(), b, false); err != nil {
		t.Fatal(err)
	}
	if len(cache.store) != 1 {
		t.Fatalf("expected normalized prefs to share a key, got %d entries", len(cache.store))
	}
}

func TestItinerary_CorruptCacheEntryIsRebuilt(t *testing.T) {
	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rc.Close() })
	q := app.NewQueryService(catalog.Default(), redisad.NewFromClient(rc), time.Minute, nil)
	ctx := context.Background()

	if _, err := q.Itinerary(ctx, beachPrefs(3), false); err != nil {
		t.Fatal(err)
	}
	keys := mr.Keys()
	if len(keys) != 1 {
		t.Fatalf("expected one cached key, got %v", keys)
	}
	if err := mr.Set(keys[0], `{"days":"not-a-list"}`); err != nil {
		t.Fatal(err)
	}

	it, err := q.Itinerary(ctx, beachPrefs(3), false)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(it.Days) != 3 {
		t.Fatalf("expected rebuilt 3-day plan, got %d days", len(it.Days))
	}

	// the rebuild replaced the bad entry
	it, err = q.Itinerary(ctx, beachPrefs(3), false)
	if err != nil || len(it.Days) != 3 {
		t.Fatalf("second read: days=%d err=%v", len(it.Days), err)
	}
}

func TestItinerary_BlankBudgetSharesDefaultKey(t *testing.T) {
	cache := &fakeCache{}
	q := app.NewQueryService(catalog.Default(), cache, time.Minute, nil)

	blank, err := q.Itinerary(context.Background(), domain.Preferences{Days: 1}, false)
	if err != nil {
		t.Fatal(err)
	}
	if blank.Transport.Summary != "Uber e ônibus" {
		t.Fatalf("blank budget transport: %q", blank.Transport.Summary)
	}
	explicit := domain.Preferences{Days: 1, Budget: domain.BudgetMedium, Group: domain.GroupCouple}
	if _, err := q.Itinerary(context.Background(), explicit, false); err != nil {
		t.Fatal(err)
	}
	if len(cache.store) != 1 {
		t.Fatalf("blank and explicit defaults should share a key, got %d entries", len(cache.store))
	}
}

func TestItinerary_NilCache(t *testing.T) {
	q := app.NewQueryService(catalog.Default(), nil, time.Minute, nil)
	it, err := q.Itinerary(context.Background(), beachPrefs(3), false)
	if err != nil || len(it.Days) != 3 {
		t.Fatalf("it=%+v err=%v", it, err)
	}
}

func TestItinerary_CancelledContext(t *testing.T) {
	q := app.NewQueryService(catalog.Default(), nil, time.Minute, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := q.Itinerary(ctx, beachPrefs(1), false); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestItinerary_UsesPlannerWhenAsked(t *testing.T) {
	planned := domain.Itinerary{Days: []domain.Day{{Day: 1, Items: []domain.Item{{Time: "09:00", Title: "Ilha do Campeche"}}}}}
	p := &fakePlanner{it: planned}
	cache := &fakeCache{}
	q := app.NewQueryService(catalog.Default(), cache, time.Minute, p)

	it, err := q.Itinerary(context.Background(), beachPrefs(1), true)
	if err != nil {
		t.Fatal(err)
	}
	if it.Source != domain.SourceAI || it.Days[0].Items[0].Title != "Ilha do Campeche" {
		t.Fatalf("expected planner output, got %+v", it)
	}

	// same request again is served from the cache
	if _, err := q.Itinerary(context.Background(), beachPrefs(1), true); err != nil {
		t.Fatal(err)
	}
	if p.calls != 1 {
		t.Fatalf("planner calls: %d", p.calls)
	}

	// without the AI flag the heuristic builder answers
	it, _ = q.Itinerary(context.Background(), beachPrefs(1), false)
	if it.Source != domain.SourceHeuristic {
		t.Fatalf("expected heuristic source, got %s", it.Source)
	}
}

func TestItinerary_PlannerErrorFallsBack(t *testing.T) {
	p := &fakePlanner{err: errors.New("upstream 503")}
	cache := &fakeCache{}
	q := app.NewQueryService(catalog.Default(), cache, time.Minute, p)

	it, err := q.Itinerary(context.Background(), beachPrefs(2), true)
	if err != nil {
		t.Fatalf("fallback must not fail: %v", err)
	}
	if it.Source != domain.SourceHeuristic || len(it.Days) != 2 {
		t.Fatalf("expected heuristic fallback, got %+v", it)
	}
	if len(cache.store) != 0 {
		t.Fatalf("fallback result must not be cached under the AI key")
	}

	_, _ = q.Itinerary(context.Background(), beachPrefs(2), true)
	if p.calls != 2 {
		t.Fatalf("planner should be retried, calls=%d", p.calls)
	}
}

func TestItinerary_EmptyPlannerResultFallsBack(t *testing.T) {
	q := app.NewQueryService(catalog.Default(), nil, time.Minute, &fakePlanner{})
	it, _ := q.Itinerary(context.Background(), beachPrefs(1), true)
	if it.Source != domain.SourceHeuristic || len(it.Days) != 1 {
		t.Fatalf("expected heuristic fallback, got %+v", it)
	}
}

func TestDayMap(t *testing.T) {
	q := app.NewQueryService(catalog.Default(), &fakeCache{}, time.Minute, nil)

	m, err := q.DayMap(context.Background(), beachPrefs(2), 2, false)
	if err != nil {
		t.Fatal(err)
	}
	if m.Day != 2 || len(m.Markers) != 2 || len(m.Path) != 2 || m.Bounds == nil {
		t.Fatalf("unexpected day map: %+v", m)
	}
	if m.Markers[0].ID != "1-0" {
		t.Fatalf("marker id: %s", m.Markers[0].ID)
	}

	if _, err := q.DayMap(context.Background(), beachPrefs(2), 3, false); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetters(t *testing.T) {
	q := app.NewQueryService(catalog.Default(), nil, time.Minute, nil)

	if r, err := q.GetRestaurant(4); err != nil || r.Name != "Sushi Master" {
		t.Fatalf("restaurant: %+v %v", r, err)
	}
	if d, err := q.GetDriver("drv-3"); err != nil || d.Name != "Rafael Costa" {
		t.Fatalf("driver: %+v %v", d, err)
	}
	if _, err := q.GetSpot(99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := q.GetEvent(0); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := q.GetCoupon(42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMapPlaces(t *testing.T) {
	q := app.NewQueryService(catalog.Default(), nil, time.Minute, nil)

	all, err := q.MapPlaces("")
	if err != nil || len(all) != 21 {
		t.Fatalf("all places: %d %v", len(all), err)
	}
	parking, err := q.MapPlaces("estacionamento")
	if err != nil || len(parking) != 1 {
		t.Fatalf("parking: %+v %v", parking, err)
	}
	if _, err := q.MapPlaces("aeroporto"); !errors.Is(err, domain.ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestRefreshItinerary(t *testing.T) {
	cache := &fakeCache{}
	q := app.NewQueryService(catalog.Default(), cache, time.Minute, nil)

	if err := q.RefreshItinerary(context.Background(), beachPrefs(1), false); err != nil {
		t.Fatal(err)
	}
	if len(cache.dels) != 1 || len(cache.store) != 1 {
		t.Fatalf("dels=%v store=%d", cache.dels, len(cache.store))
	}
	if _, ok := cache.store[cache.dels[0]]; !ok {
		t.Fatalf("refreshed entry not stored under evicted key")
	}
}

func TestWarmSet(t *testing.T) {
	set := app.WarmSet(2)
	// 2 days x 3 budgets x 3 groups x 15 non-empty activity subsets
	if len(set) != 2*3*3*15 {
		t.Fatalf("warm set size: %d", len(set))
	}
	seen := map[string]bool{}
	for _, p := range set {
		if len(p.Types) == 0 {
			t.Fatalf("empty activity subset in warm set")
		}
		seen[p.Key()] = true
	}
	if len(seen) != len(set) {
		t.Fatalf("duplicate combinations: %d unique of %d", len(seen), len(set))
	}
	if len(app.WarmSet(0)) != 0 {
		t.Fatalf("zero days should warm nothing")
	}
}

func TestWarm(t *testing.T) {
	cache := &fakeCache{}
	q := app.NewQueryService(catalog.Default(), &syncCache{inner: cache}, time.Minute, nil)

	set := app.WarmSet(1)
	rep := q.Warm(context.Background(), set, 4, false)
	if rep.Warmed != len(set) || rep.Failed != 0 {
		t.Fatalf("report: %+v", rep)
	}
	if len(cache.store) != len(set) {
		t.Fatalf("cached %d of %d", len(cache.store), len(set))
	}
}

func TestWarm_StopsOnCancelledContext(t *testing.T) {
	q := app.NewQueryService(catalog.Default(), nil, time.Minute, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep := q.Warm(ctx, app.WarmSet(1), 2, false)
	if rep.Warmed != 0 {
		t.Fatalf("nothing should be warmed after cancel: %+v", rep)
	}
}

// syncCache serialises access to fakeCache for concurrent tests.
type syncCache struct {
	mu    sync.Mutex
	inner *fakeCache
}

func (c *syncCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Get(ctx, key, dst)
}
func (c *syncCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Set(ctx, key, v, ttlSec)
}
func (c *syncCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Del(ctx, key)
}
