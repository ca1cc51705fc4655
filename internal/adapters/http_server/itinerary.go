package httpserver

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"floripa_guide/internal/domain"
	"floripa_guide/internal/shared"
)

// itineraryRequest mirrors the planner form. days arrives as a number or as
// the raw text of the input field.
type itineraryRequest struct {
	Days   json.RawMessage `json:"days"`
	Budget string          `json:"budget"`
	Types  []string        `json:"types"`
	Group  string          `json:"group"`
	Mode   string          `json:"mode"`
}

// parseDays floors anything non-numeric or below one to 1 and clamps to MaxDays.
func parseDays(raw json.RawMessage) int {
	raw = bytes.TrimSpace(raw)
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if json.Unmarshal(raw, &s) != nil {
			return 1
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 1
		}
		f = float64(n)
	}
	if math.IsNaN(f) || f < 1 {
		return 1
	}
	if f > shared.MaxDays {
		return shared.MaxDays
	}
	return int(f)
}

func (req itineraryRequest) preferences() (domain.Preferences, error) {
	p := domain.Preferences{Days: parseDays(req.Days)}
	if req.Budget != "" {
		b, err := domain.ParseBudget(req.Budget)
		if err != nil {
			return domain.Preferences{}, err
		}
		p.Budget = b
	}
	if req.Group != "" {
		g, err := domain.ParseGroup(req.Group)
		if err != nil {
			return domain.Preferences{}, err
		}
		p.Group = g
	}
	for _, t := range req.Types {
		a, err := domain.ParseActivity(t)
		if err != nil {
			return domain.Preferences{}, err
		}
		p.Types = append(p.Types, a)
	}
	return p, nil
}

func (h *Handlers) readItineraryRequest(w http.ResponseWriter, r *http.Request) (domain.Preferences, bool, bool) {
	var req itineraryRequest
	if !decodeBody(w, r, &req) {
		return domain.Preferences{}, false, false
	}
	prefs, err := req.preferences()
	if err != nil {
		writeError(w, r, err)
		return domain.Preferences{}, false, false
	}
	return prefs, req.Mode == "ai", true
}

func (h *Handlers) createItinerary(w http.ResponseWriter, r *http.Request) {
	prefs, useAI, ok := h.readItineraryRequest(w, r)
	if !ok {
		return
	}
	it, err := h.Q.Itinerary(r.Context(), prefs, useAI)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (h *Handlers) dayMap(w http.ResponseWriter, r *http.Request) {
	day, ok := intParam(w, r, "day")
	if !ok {
		return
	}
	prefs, useAI, ok := h.readItineraryRequest(w, r)
	if !ok {
		return
	}
	m, err := h.Q.DayMap(r.Context(), prefs, day, useAI)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}
