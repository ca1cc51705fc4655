// Package memory keeps partners and sessions in process memory. It backs the
// API when no MySQL DSN or Redis address is configured.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"floripa_guide/internal/domain"
)

type Repo struct {
	mu       sync.RWMutex
	users    map[string]domain.User // by id
	byEmail  map[string]string      // lower-cased email -> user id
	partners map[string]domain.Partner
	subs     map[string]domain.Subscription
}

func New() *Repo {
	return &Repo{
		users:    map[string]domain.User{},
		byEmail:  map[string]string{},
		partners: map[string]domain.Partner{},
		subs:     map[string]domain.Subscription{},
	}
}

func (r *Repo) CreatePartner(ctx context.Context, reg domain.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	email := strings.ToLower(reg.User.Email)
	if _, ok := r.byEmail[email]; ok {
		return domain.ErrEmailTaken
	}
	r.users[reg.User.ID] = reg.User
	r.byEmail[email] = reg.User.ID
	r.partners[reg.User.ID] = reg.Partner
	r.subs[reg.User.ID] = reg.Subscription
	return nil
}

func (r *Repo) UpsertSubscription(ctx context.Context, s domain.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[s.UserID]; !ok {
		return domain.ErrNotFound
	}
	r.subs[s.UserID] = s
	return nil
}

func (r *Repo) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return r.users[id], nil
}

func (r *Repo) UserByID(ctx context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (r *Repo) PartnerByUser(ctx context.Context, userID string) (domain.Partner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.partners[userID]
	if !ok {
		return domain.Partner{}, domain.ErrNotFound
	}
	return p, nil
}

func (r *Repo) SubscriptionByUser(ctx context.Context, userID string) (domain.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.subs[userID]
	if !ok {
		return domain.Subscription{}, domain.ErrNotFound
	}
	return s, nil
}

// Sessions is a SessionStore with lazy expiry.
type Sessions struct {
	mu  sync.Mutex
	m   map[string]sessionEntry
	now func() time.Time
}

type sessionEntry struct {
	s       domain.Session
	expires time.Time
}

func NewSessions() *Sessions {
	return &Sessions{m: map[string]sessionEntry{}, now: time.Now}
}

func (s *Sessions) Put(ctx context.Context, sess domain.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[sess.Token] = sessionEntry{s: sess, expires: s.now().Add(ttl)}
	return nil
}

func (s *Sessions) Get(ctx context.Context, token string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.m[token]
	if !ok {
		return domain.Session{}, domain.ErrNotFound
	}
	if !s.now().Before(e.expires) {
		delete(s.m, token)
		return domain.Session{}, domain.ErrNotFound
	}
	return e.s, nil
}

func (s *Sessions) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, token)
	return nil
}
