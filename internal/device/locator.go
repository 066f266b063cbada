package device

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sos-giri/emergency-sos/internal/users/domain"
)

// locateTimeout is the fixed, unconfigurable one-shot timeout. It is the
// only explicit timeout any operation in the app carries.
const locateTimeout = 10 * time.Second

// HTTPLocator resolves a coarse position from an ip-api compatible endpoint.
type HTTPLocator struct {
	endpoint string
	client   *http.Client
}

func NewHTTPLocator(endpoint string) *HTTPLocator {
	return &HTTPLocator{
		endpoint: endpoint,
		client:   &http.Client{Timeout: locateTimeout},
	}
}

func (l *HTTPLocator) Locate(ctx context.Context) (*domain.Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("locate request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("locate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("locate: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Status string  `json:"status"`
		Lat    float64 `json:"lat"`
		Lon    float64 `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("locate decode: %w", err)
	}
	if body.Status != "" && body.Status != "success" {
		return nil, fmt.Errorf("locate: status %q", body.Status)
	}

	return &domain.Location{Latitude: body.Lat, Longitude: body.Lon}, nil
}
