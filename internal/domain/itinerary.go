package domain

import (
	"fmt"
	"strings"
)

type Budget string

const (
	BudgetLow    Budget = "baixo"
	BudgetMedium Budget = "medio"
	BudgetHigh   Budget = "alto"
)

type Activity string

const (
	ActivityBeaches     Activity = "praias"
	ActivityTrails      Activity = "trilhas"
	ActivityRestaurants Activity = "restaurantes"
	ActivityNightlife   Activity = "baladas"
)

// AllActivities lists activities in the order the builder fills a day.
var AllActivities = []Activity{ActivityBeaches, ActivityTrails, ActivityRestaurants, ActivityNightlife}

// DefaultActivities is used when a request names no activity at all.
var DefaultActivities = []Activity{ActivityBeaches, ActivityRestaurants}

type Group string

const (
	GroupFamily  Group = "familia"
	GroupCouple  Group = "casal"
	GroupFriends Group = "amigos"
)

var AllBudgets = []Budget{BudgetLow, BudgetMedium, BudgetHigh}
var AllGroups = []Group{GroupFamily, GroupCouple, GroupFriends}

func ParseBudget(s string) (Budget, error) {
	for _, b := range AllBudgets {
		if string(b) == s {
			return b, nil
		}
	}
	return "", fmt.Errorf("budget %q: %w", s, ErrInvalidPreference)
}

func ParseActivity(s string) (Activity, error) {
	for _, a := range AllActivities {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("activity %q: %w", s, ErrInvalidPreference)
}

func ParseGroup(s string) (Group, error) {
	for _, g := range AllGroups {
		if string(g) == s {
			return g, nil
		}
	}
	return "", fmt.Errorf("group %q: %w", s, ErrInvalidPreference)
}

type Preferences struct {
	Days   int        `json:"days"`
	Budget Budget     `json:"budget"`
	Types  []Activity `json:"types"`
	Group  Group      `json:"group"`
}

// Wants reports whether the activity was requested.
func (p Preferences) Wants(a Activity) bool {
	for _, t := range p.Types {
		if t == a {
			return true
		}
	}
	return false
}

// Defaults applied to a request that leaves budget or group blank.
const (
	DefaultBudget = BudgetMedium
	DefaultGroup  = GroupCouple
)

// Normalized floors days at 1, fills a blank budget or group with its default,
// substitutes the default activity pair for an empty set and drops duplicate
// activities, keeping canonical order.
func (p Preferences) Normalized() Preferences {
	out := Preferences{Days: p.Days, Budget: p.Budget, Group: p.Group}
	if out.Days < 1 {
		out.Days = 1
	}
	if out.Budget == "" {
		out.Budget = DefaultBudget
	}
	if out.Group == "" {
		out.Group = DefaultGroup
	}
	for _, a := range AllActivities {
		if p.Wants(a) {
			out.Types = append(out.Types, a)
		}
	}
	if len(out.Types) == 0 {
		out.Types = append([]Activity(nil), DefaultActivities...)
	}
	return out
}

// Key is a stable textual form of normalized preferences, used for cache keys.
func (p Preferences) Key() string {
	n := p.Normalized()
	ts := make([]string, len(n.Types))
	for i, t := range n.Types {
		ts[i] = string(t)
	}
	return fmt.Sprintf("d=%d|b=%s|t=%s|g=%s", n.Days, n.Budget, strings.Join(ts, ","), n.Group)
}

// Slot is one of the fixed times of day an item can be scheduled at.
type Slot string

const (
	SlotEarlyMorning   Slot = "08:00"
	SlotLateMorning    Slot = "11:00"
	SlotEarlyAfternoon Slot = "13:00"
	SlotMidAfternoon   Slot = "15:30"
	SlotNight          Slot = "21:00"
)

type ItemType string

const (
	ItemBeach      ItemType = "praia"
	ItemTrail      ItemType = "trilha"
	ItemViewpoint  ItemType = "mirante"
	ItemRestaurant ItemType = "restaurante"
	ItemNightlife  ItemType = "balada"
)

type Item struct {
	Time        Slot     `json:"time"`
	Title       string   `json:"title"`
	Type        ItemType `json:"type"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
	Transport   string   `json:"transport,omitempty"`
}

type Day struct {
	Day   int    `json:"day"`
	Date  string `json:"date,omitempty"`
	Items []Item `json:"items"`
}

type Transport struct {
	Summary     string   `json:"summary,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type DailyForecast struct {
	Day      int    `json:"day"`
	Forecast string `json:"forecast"`
}

type Weather struct {
	Summary string          `json:"summary,omitempty"`
	Daily   []DailyForecast `json:"daily,omitempty"`
}

type Recommendation struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
	Link   string `json:"link,omitempty"`
}

type PDFHint struct {
	SuggestedFilename string `json:"suggested_filename,omitempty"`
}

const (
	SourceHeuristic = "heuristic"
	SourceAI        = "ai"
)

type Itinerary struct {
	Days            []Day            `json:"itinerary"`
	Transport       Transport        `json:"transport"`
	Weather         Weather          `json:"weather"`
	Recommendations []Recommendation `json:"recommendations"`
	PDF             PDFHint          `json:"pdf"`
	Source          string           `json:"source"`
}
