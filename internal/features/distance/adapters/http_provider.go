package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"quote-engine/internal/core/httpclient"
	"quote-engine/internal/core/proxy"
	"quote-engine/internal/features/distance/domain"
	"quote-engine/internal/features/distance/ports"
)

var _ ports.DistanceProvider = (*HTTPProvider)(nil)

// HTTPProvider implements ports.DistanceProvider using a distance-matrix
// style JSON API that reports driving distance in meters.
type HTTPProvider struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// baseURL is the distance-matrix endpoint.
	baseURL string
	// apiKey is sent as the key query parameter.
	apiKey string
}

// NewHTTPProvider creates a new HTTPProvider.
func NewHTTPProvider(baseURL, apiKey string, timeout time.Duration, p proxy.Settings) *HTTPProvider {
	return &HTTPProvider{
		client:  httpclient.NewClient(timeout, p),
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type matrixResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Rows         []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value float64 `json:"value"`
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// DistanceMiles implements ports.DistanceProvider.
func (p *HTTPProvider) DistanceMiles(ctx context.Context, originZip, destZip string) (float64, error) {
	origin, err := domain.NormalizeZip(originZip)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", err, originZip)
	}
	dest, err := domain.NormalizeZip(destZip)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", err, destZip)
	}

	q := url.Values{}
	q.Set("origins", origin+",USA")
	q.Set("destinations", dest+",USA")
	q.Set("units", "imperial")
	if p.apiKey != "" {
		q.Set("key", p.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("distance API returned status: %d", resp.StatusCode)
	}

	var body matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}

	if body.Status != "" && body.Status != "OK" {
		return 0, fmt.Errorf("%w: %s %s", domain.ErrNoRoute, body.Status, body.ErrorMessage)
	}
	if len(body.Rows) == 0 || len(body.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("%w: empty result", domain.ErrNoRoute)
	}
	element := body.Rows[0].Elements[0]
	if element.Status != "" && element.Status != "OK" {
		return 0, fmt.Errorf("%w: %s", domain.ErrNoRoute, element.Status)
	}

	return element.Distance.Value / domain.MetersPerMile, nil
}
