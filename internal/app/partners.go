package app

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"floripa_guide/internal/domain"
)

const minPasswordLen = 6

type RegisterPartnerInput struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	BusinessName string  `json:"business_name"`
	Type         string  `json:"type"`
	City         string  `json:"city"`
	WhatsApp     string  `json:"whatsapp"`
	Instagram    *string `json:"instagram,omitempty"`
	Website      *string `json:"website,omitempty"`
	Description  *string `json:"description,omitempty"`
	Plan         string  `json:"plan"`
}

// FieldError names the first input field that failed validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Reason }
func (e *FieldError) Unwrap() error { return domain.ErrValidation }

func (in RegisterPartnerInput) validate() error {
	required := []struct{ field, v string }{
		{"name", in.Name},
		{"email", in.Email},
		{"password", in.Password},
		{"business_name", in.BusinessName},
		{"type", in.Type},
		{"city", in.City},
		{"whatsapp", in.WhatsApp},
		{"plan", in.Plan},
	}
	for _, r := range required {
		if strings.TrimSpace(r.v) == "" {
			return &FieldError{Field: r.field, Reason: "required"}
		}
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return &FieldError{Field: "email", Reason: "invalid address"}
	}
	if len(in.Password) < minPasswordLen {
		return &FieldError{Field: "password", Reason: fmt.Sprintf("must have at least %d characters", minPasswordLen)}
	}
	if _, err := domain.ParsePlan(in.Plan); err != nil {
		return &FieldError{Field: "plan", Reason: "unknown plan"}
	}
	return nil
}

type PartnerService struct {
	repo     domain.PartnerRepository
	sessions domain.SessionStore
	ttl      time.Duration
	now      func() time.Time
}

func NewPartnerService(r domain.PartnerRepository, s domain.SessionStore, sessionTTL time.Duration) *PartnerService {
	return &PartnerService{repo: r, sessions: s, ttl: sessionTTL, now: time.Now}
}

func normEmail(e string) string { return strings.ToLower(strings.TrimSpace(e)) }

func optional(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

// Register creates the user, the partner profile and the first subscription.
func (s *PartnerService) Register(ctx context.Context, in RegisterPartnerInput) (domain.Registration, error) {
	if err := in.validate(); err != nil {
		return domain.Registration{}, err
	}
	email := normEmail(in.Email)
	if _, err := s.repo.UserByEmail(ctx, email); err == nil {
		return domain.Registration{}, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Registration{}, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	plan, _ := domain.ParsePlan(in.Plan)
	user := domain.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RolePartner,
		CreatedAt:    now,
	}
	reg := domain.Registration{
		User: user,
		Partner: domain.Partner{
			ID:           uuid.NewString(),
			UserID:       user.ID,
			BusinessName: strings.TrimSpace(in.BusinessName),
			Type:         strings.TrimSpace(in.Type),
			City:         strings.TrimSpace(in.City),
			WhatsApp:     strings.TrimSpace(in.WhatsApp),
			Instagram:    optional(in.Instagram),
			Website:      optional(in.Website),
			Description:  optional(in.Description),
			Status:       domain.PartnerPending,
		},
		Subscription: domain.Subscription{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			Plan:      plan,
			Status:    domain.StatusForPlan(plan),
			StartDate: now,
		},
	}
	if err := s.repo.CreatePartner(ctx, reg); err != nil {
		return domain.Registration{}, err
	}
	log.Info().Str("user_id", user.ID).Str("plan", string(plan)).Msg("partner registered")
	return reg, nil
}

// Login checks the credentials and opens a session.
func (s *PartnerService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	u, err := s.repo.UserByEmail(ctx, normEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Session{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("lookup email: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	sess := domain.Session{
		Token:     uuid.NewString(),
		UserID:    u.ID,
		Role:      u.Role,
		ExpiresAt: s.now().UTC().Add(s.ttl),
	}
	if err := s.sessions.Put(ctx, sess, s.ttl); err != nil {
		return domain.Session{}, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

func (s *PartnerService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Session resolves a bearer token. Unknown or expired tokens are ErrUnauthorized.
func (s *PartnerService) Session(ctx context.Context, token string) (domain.Session, error) {
	if token == "" {
		return domain.Session{}, domain.ErrUnauthorized
	}
	sess, err := s.sessions.Get(ctx, token)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Session{}, domain.ErrUnauthorized
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !sess.ExpiresAt.IsZero() && !s.now().Before(sess.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return domain.Session{}, domain.ErrUnauthorized
	}
	return sess, nil
}

func (s *PartnerService) Dashboard(ctx context.Context, userID string) (domain.Dashboard, error) {
	u, err := s.repo.UserByID(ctx, userID)
	if err != nil {
		return domain.Dashboard{}, err
	}
	d := domain.Dashboard{User: u}
	if p, err := s.repo.PartnerByUser(ctx, userID); err == nil {
		d.Partner = &p
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Dashboard{}, err
	}
	if sub, err := s.repo.SubscriptionByUser(ctx, userID); err == nil {
		d.Subscription = &sub
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Dashboard{}, err
	}
	return d, nil
}

// ChangePlan moves the user's subscription to plan. Paid plans wait for
// payment in pendente; free is active at once.
func (s *PartnerService) ChangePlan(ctx context.Context, userID, plan string) (domain.Subscription, error) {
	p, err := domain.ParsePlan(plan)
	if err != nil {
		return domain.Subscription{}, &FieldError{Field: "plan", Reason: "unknown plan"}
	}
	sub, err := s.repo.SubscriptionByUser(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		sub = domain.Subscription{ID: uuid.NewString(), UserID: userID}
	case err != nil:
		return domain.Subscription{}, err
	}
	sub.Plan = p
	sub.Status = domain.StatusForPlan(p)
	sub.StartDate = s.now().UTC()
	sub.EndDate = nil
	if err := s.repo.UpsertSubscription(ctx, sub); err != nil {
		return domain.Subscription{}, err
	}
	return sub, nil
}
