package httpserver

import (
	"net/http"

	"floripa_guide/internal/app"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type planRequest struct {
	Plan string `json:"plan"`
}

func (h *Handlers) registerPartner(w http.ResponseWriter, r *http.Request) {
	var in app.RegisterPartnerInput
	if !decodeBody(w, r, &in) {
		return
	}
	reg, err := h.P.Register(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, reg)
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if !decodeBody(w, r, &in) {
		return
	}
	sess, err := h.P.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	if tok := bearerToken(r); tok != "" {
		if err := h.P.Logout(r.Context(), tok); err != nil {
			writeError(w, r, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessionFrom(r.Context())
	d, err := h.P.Dashboard(r.Context(), sess.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Handlers) changePlan(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessionFrom(r.Context())
	var in planRequest
	if !decodeBody(w, r, &in) {
		return
	}
	sub, err := h.P.ChangePlan(r.Context(), sess.UserID, in.Plan)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}
