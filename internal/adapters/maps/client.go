package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"arame_concierge/internal/domain"
)

// Client queries the distance matrix API for one origin/destination pair.
// No retry loop here: the travel signal has a haversine fallback, so a
// failed call degrades instead of delaying the guest's reply.
type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: base,
		hc:   &http.Client{Timeout: 10 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int `json:"value"` // meters
			} `json:"distance"`
			Duration struct {
				Value int `json:"value"` // seconds
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

func (c *Client) Travel(ctx context.Context, origin, dest domain.Coords) (domain.TravelInfo, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return domain.TravelInfo{}, err
	}

	url := fmt.Sprintf("%s/distancematrix/json?origins=%.4f,%.4f&destinations=%.4f,%.4f&key=%s",
		c.base, origin.Lat, origin.Lon, dest.Lat, dest.Lon, c.key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.TravelInfo{}, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "arame-concierge/1.0")

	resp, err := c.hc.Do(req)
	if err != nil {
		return domain.TravelInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.TravelInfo{}, fmt.Errorf("distance matrix status %d", resp.StatusCode)
	}

	var out matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.TravelInfo{}, err
	}
	if out.Status != "OK" || len(out.Rows) == 0 || len(out.Rows[0].Elements) == 0 {
		return domain.TravelInfo{}, domain.ErrUpstreamUnavailable
	}
	el := out.Rows[0].Elements[0]
	if el.Status != "OK" {
		return domain.TravelInfo{}, domain.ErrUpstreamUnavailable
	}
	return domain.TravelInfo{
		DistanceMeters: el.Distance.Value,
		ETAMinutes:     (el.Duration.Value + 59) / 60,
	}, nil
}
