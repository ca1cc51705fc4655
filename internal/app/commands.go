package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"floripa_guide/internal/domain"
)

// RefreshItinerary drops the cached plan for prefs and builds it again.
func (s *QueryService) RefreshItinerary(ctx context.Context, prefs domain.Preferences, useAI bool) error {
	prefs = prefs.Normalized()
	if s.cache != nil {
		if err := s.cache.Del(ctx, itineraryKey(prefs, useAI && s.planner != nil)); err != nil {
			return fmt.Errorf("evict itinerary %s: %w", prefs.Key(), err)
		}
	}
	_, err := s.Itinerary(ctx, prefs, useAI)
	return err
}

// WarmSet enumerates every preference combination the planner form can
// submit for 1..maxDays days: each budget, each group and each non-empty
// subset of activities.
func WarmSet(maxDays int) []domain.Preferences {
	var subsets [][]domain.Activity
	n := len(domain.AllActivities)
	for mask := 1; mask < 1<<n; mask++ {
		var ts []domain.Activity
		for i, a := range domain.AllActivities {
			if mask&(1<<i) != 0 {
				ts = append(ts, a)
			}
		}
		subsets = append(subsets, ts)
	}

	var out []domain.Preferences
	for d := 1; d <= maxDays; d++ {
		for _, b := range domain.AllBudgets {
			for _, g := range domain.AllGroups {
				for _, ts := range subsets {
					out = append(out, domain.Preferences{Days: d, Budget: b, Types: ts, Group: g})
				}
			}
		}
	}
	return out
}

type WarmReport struct {
	Warmed int
	Failed int
}

// Warm refreshes every combination in set with at most workers concurrent
// builds. It stops launching new work once ctx is done.
func (s *QueryService) Warm(ctx context.Context, set []domain.Preferences, workers int, useAI bool) WarmReport {
	if workers < 1 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		rep WarmReport
	)
	for _, p := range set {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(p domain.Preferences) {
			defer wg.Done()
			defer sem.Release(1)

			err := s.RefreshItinerary(ctx, p, useAI)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				rep.Failed++
				log.Warn().Str("prefs", p.Key()).Err(err).Msg("warm failed")
				return
			}
			rep.Warmed++
		}(p)
	}
	wg.Wait()
	return rep
}
