package domain

import "time"

type Role string

const (
	RolePartner Role = "partner"
	RoleUser    Role = "user"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type PartnerStatus string

const (
	PartnerPending PartnerStatus = "pendente"
	PartnerActive  PartnerStatus = "ativo"
)

type Partner struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	BusinessName string        `json:"business_name"`
	Type         string        `json:"type"`
	City         string        `json:"city"`
	WhatsApp     string        `json:"whatsapp"`
	Instagram    *string       `json:"instagram,omitempty"`
	Website      *string       `json:"website,omitempty"`
	Description  *string       `json:"description,omitempty"`
	Status       PartnerStatus `json:"status"`
}

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "ativo"
	SubscriptionPending   SubscriptionStatus = "pendente"
	SubscriptionCancelled SubscriptionStatus = "cancelado"
)

type Subscription struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	Plan      Plan               `json:"plan"`
	Status    SubscriptionStatus `json:"status"`
	StartDate time.Time          `json:"start_date"`
	EndDate   *time.Time         `json:"end_date,omitempty"`
}

// StatusForPlan is the initial status of a subscription: free plans need no
// payment and start active.
func StatusForPlan(p Plan) SubscriptionStatus {
	if p == PlanFree {
		return SubscriptionActive
	}
	return SubscriptionPending
}

func ParsePlan(s string) (Plan, error) {
	switch Plan(s) {
	case PlanFree, PlanFeatured, PlanPremium:
		return Plan(s), nil
	}
	return "", ErrValidation
}

type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Registration is what a successful partner sign-up produces.
type Registration struct {
	User         User         `json:"user"`
	Partner      Partner      `json:"partner"`
	Subscription Subscription `json:"subscription"`
}

type Dashboard struct {
	User         User          `json:"user"`
	Partner      *Partner      `json:"partner,omitempty"`
	Subscription *Subscription `json:"subscription,omitempty"`
}
