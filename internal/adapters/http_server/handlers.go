package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"floripa_guide/internal/app"
	"floripa_guide/internal/domain"
)

const maxBodyBytes = 1 << 20

type Handlers struct {
	Q *app.QueryService
	P *app.PartnerService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/spots", h.listSpots)
		r.Get("/spots/{id}", h.getSpot)
		r.Get("/restaurants", h.listRestaurants)
		r.Get("/restaurants/{id}", h.getRestaurant)
		r.Get("/events", h.listEvents)
		r.Get("/events/{id}", h.getEvent)
		r.Get("/coupons", h.listCoupons)
		r.Get("/coupons/{id}", h.getCoupon)
		r.Get("/drivers", h.listDrivers)
		r.Get("/drivers/{id}", h.getDriver)
		r.Get("/stays", h.stayTips)
		r.Get("/search", h.search)
		r.Get("/map/places", h.mapPlaces)

		r.Post("/itineraries", h.createItinerary)
		r.Post("/itineraries/days/{day}/map", h.dayMap)

		r.Post("/partners", h.registerPartner)
		r.Post("/sessions", h.login)
		r.Delete("/sessions", h.logout)
		r.Group(func(r chi.Router) {
			r.Use(RequireSession(h.P))
			r.Get("/partners/me", h.dashboard)
			r.Put("/partners/me/plan", h.changePlan)
		})
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps domain errors onto problem responses. Anything unknown is
// logged and reported as a 500 without details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var fe *app.FieldError
	switch {
	case errors.As(err, &fe):
		writeProblem(w, http.StatusBadRequest, "Validation Failed", fe.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrInvalidFilter), errors.Is(err, domain.ErrInvalidPreference), errors.Is(err, domain.ErrValidation):
		writeProblem(w, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, domain.ErrEmailTaken):
		writeProblem(w, http.StatusConflict, "Conflict", "email already registered")
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "invalid email or password")
	case errors.Is(err, domain.ErrUnauthorized):
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "missing or expired session")
	case errors.Is(err, context.DeadlineExceeded):
		writeProblem(w, http.StatusGatewayTimeout, "Timeout", "")
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCacheable writes v with a weak ETag, answering 304 when the client
// already holds this version.
func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

// etagMatches reports whether an If-None-Match header covers etag: "*" or any
// entry of the comma-separated list, compared weakly.
func etagMatches(header, etag string) bool {
	if header == "" || etag == "" {
		return false
	}
	for _, tag := range strings.Split(header, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "*" || strings.TrimPrefix(tag, "W/") == strings.TrimPrefix(etag, "W/") {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write JSON body")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return false
	}
	return true
}

func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid "+name, name+" must be a number")
		return 0, false
	}
	return n, true
}

// ---- catalog ----

func (h *Handlers) listSpots(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListSpots(r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) getSpot(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	out, err := h.Q.GetSpot(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) listRestaurants(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListRestaurants(r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	out, err := h.Q.GetRestaurant(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) listEvents(w http.ResponseWriter, r *http.Request) {
	writeCacheable(w, r, h.Q.ListEvents())
}

func (h *Handlers) getEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	out, err := h.Q.GetEvent(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) listCoupons(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListCoupons(r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) getCoupon(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	out, err := h.Q.GetCoupon(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) listDrivers(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListDrivers(r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) getDriver(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.GetDriver(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) stayTips(w http.ResponseWriter, r *http.Request) {
	writeCacheable(w, r, h.Q.StayTips())
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	writeCacheable(w, r, h.Q.Search(r.URL.Query().Get("q")))
}

func (h *Handlers) mapPlaces(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.MapPlaces(r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCacheable(w, r, out)
}
