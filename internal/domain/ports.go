package domain

import (
	"context"
	"time"
)

type PartnerRepository interface {
	// Write paths
	CreatePartner(ctx context.Context, reg Registration) error
	UpsertSubscription(ctx context.Context, s Subscription) error

	// Read paths
	UserByEmail(ctx context.Context, email string) (User, error)
	UserByID(ctx context.Context, id string) (User, error)
	PartnerByUser(ctx context.Context, userID string) (Partner, error)
	SubscriptionByUser(ctx context.Context, userID string) (Subscription, error)
}

type SessionStore interface {
	Put(ctx context.Context, s Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// ItineraryPlanner is an external itinerary generator, e.g. an LLM.
type ItineraryPlanner interface {
	PlanItinerary(ctx context.Context, prefs Preferences) (Itinerary, error)
}
