package app

import (
	"context"
	"sort"
	"time"

	"arame_concierge/internal/domain"
)

// RecommendationEngine scores the static place catalog against the current
// time of day, live weather, and the guest's profile tags. Stateless; every
// call recomputes from signals.
type RecommendationEngine struct {
	content domain.ContentStore
	signals *SignalService
	limit   int
	now     func() time.Time
}

func NewRecommendationEngine(content domain.ContentStore, signals *SignalService, limit int) *RecommendationEngine {
	if limit <= 0 {
		limit = 3
	}
	return &RecommendationEngine{content: content, signals: signals, limit: limit, now: time.Now}
}

// Recommend returns the top candidates for the guest, optionally filtered by
// category. The weather the ranking used is returned alongside so responses
// can mention it.
func (r *RecommendationEngine) Recommend(ctx context.Context, guest domain.Guest, category domain.PlaceCategory) ([]domain.PlaceCandidate, domain.Weather) {
	now := r.now()
	tod := domain.TimeOfDayFor(now.Hour())
	weather := r.signals.Weather(ctx)
	raining := weather.Available() && weather.Raining()

	var out []domain.PlaceCandidate
	for _, p := range r.content.Places() {
		if category != "" && p.Category != category {
			continue
		}

		score := 0.5
		if p.InWindow(tod) {
			score = 1.0
		}
		if raining {
			if p.HasTag("outdoor") {
				score -= 0.5
			}
			if p.HasTag("indoor") {
				score += 0.2
			}
		}
		for _, tag := range guest.ProfileTags {
			if p.HasTag(tag) {
				score += 0.3
				break
			}
		}

		travel := r.signals.Travel(ctx, p.Name, p.Coords)
		cand := domain.PlaceCandidate{
			Place:          p,
			DistanceMeters: travel.DistanceMeters,
			ETAMinutes:     travel.ETAMinutes,
			Score:          score,
			Tip:            placeTip(p, raining),
		}
		if travel.DistanceMeters <= 0 {
			cand.DistanceMeters = domain.DistanceUnknown
			cand.ETAMinutes = 0
		}
		out = append(out, cand)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		di, dj := out[i].DistanceMeters, out[j].DistanceMeters
		// Unknown distances sort after known ones.
		if di == domain.DistanceUnknown {
			return false
		}
		if dj == domain.DistanceUnknown {
			return true
		}
		return di < dj
	})

	if len(out) > r.limit {
		out = out[:r.limit]
	}
	return out, weather
}

func placeTip(p domain.Place, raining bool) string {
	if raining && p.HasTag("outdoor") {
		return "Está lloviendo; lleve paraguas o considere un plan bajo techo."
	}
	if raining && p.HasTag("indoor") {
		return "Ideal para un día lluvioso."
	}
	if p.HasTag("romantic") {
		return "Recomendamos reservar con anticipación."
	}
	if p.HasTag("free") {
		return "Entrada libre."
	}
	return ""
}
