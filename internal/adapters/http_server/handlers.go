// internal/adapters/http_server/handlers.go
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"arame_concierge/internal/app"
	"arame_concierge/internal/domain"
)

type Handlers struct{ C *app.Concierge }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/api/check-in", h.checkIn)
	s.mux.Post("/api/messages", h.postMessage)
	s.mux.Get("/api/recommendations", h.recommendations)
	s.mux.Get("/api/room-service/menu", h.menu)
	s.mux.Get("/api/faq", h.faq)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

type checkInRequest struct {
	GuestID     string   `json:"guest_id"`
	Name        string   `json:"name"`
	RoomNumber  string   `json:"room_number"`
	ProfileTags []string `json:"profile_tags,omitempty"`
	CheckIn     string   `json:"check_in,omitempty"`  // RFC 3339
	CheckOut    string   `json:"check_out,omitempty"` // RFC 3339
}

func (h *Handlers) checkIn(w http.ResponseWriter, r *http.Request) {
	var req checkInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "malformed JSON")
		return
	}
	if req.GuestID == "" || req.RoomNumber == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "guest_id and room_number are required")
		return
	}

	g := domain.Guest{
		ID:          req.GuestID,
		Name:        req.Name,
		RoomNumber:  req.RoomNumber,
		ProfileTags: req.ProfileTags,
	}
	if t, err := time.Parse(time.RFC3339, req.CheckIn); err == nil {
		g.CheckIn = &t
	}
	if t, err := time.Parse(time.RFC3339, req.CheckOut); err == nil {
		g.CheckOut = &t
	}

	welcome, err := h.C.CheckIn(r.Context(), g)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Check-in failed", "could not register guest")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"guest_id": g.ID, "room_number": g.RoomNumber, "welcome": welcome})
}

type messageRequest struct {
	GuestID string `json:"guest_id"`
	Text    string `json:"text"`
}

func (h *Handlers) postMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "malformed JSON")
		return
	}
	if req.GuestID == "" || strings.TrimSpace(req.Text) == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "guest_id and text are required")
		return
	}

	reply, err := h.C.HandleMessage(r.Context(), req.GuestID, req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "guest is not checked in")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Message failed", "could not process message")
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (h *Handlers) recommendations(w http.ResponseWriter, r *http.Request) {
	guestID := r.URL.Query().Get("guest_id")
	if guestID == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid query", "guest_id is required")
		return
	}
	category := domain.PlaceCategory(r.URL.Query().Get("category"))

	cands, err := h.C.Recommendations(r.Context(), guestID, category)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "guest is not checked in")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Recommendations failed", "could not build recommendations")
		return
	}

	type rec struct {
		Name           string  `json:"name"`
		Category       string  `json:"category"`
		Description    string  `json:"description"`
		Address        string  `json:"address"`
		DistanceMeters int     `json:"distance_meters"` // -1 when unknown
		ETAMinutes     int     `json:"eta_minutes,omitempty"`
		Score          float64 `json:"score"`
		Tip            string  `json:"tip,omitempty"`
	}
	out := make([]rec, 0, len(cands))
	for _, cand := range cands {
		out = append(out, rec{
			Name:           cand.Place.Name,
			Category:       string(cand.Place.Category),
			Description:    cand.Place.Description,
			Address:        cand.Place.Address,
			DistanceMeters: cand.DistanceMeters,
			ETAMinutes:     cand.ETAMinutes,
			Score:          cand.Score,
			Tip:            cand.Tip,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"recommendations": out})
}

func (h *Handlers) menu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"menu": h.C.Menu()})
}

func (h *Handlers) faq(w http.ResponseWriter, r *http.Request) {
	type topic struct {
		Key    string `json:"key"`
		Answer string `json:"answer"`
	}
	topics := h.C.FaqTopics()
	out := make([]topic, 0, len(topics))
	for _, t := range topics {
		out = append(out, topic{Key: t.Key, Answer: t.Answer})
	}
	writeJSON(w, http.StatusOK, map[string]any{"topics": out})
}
