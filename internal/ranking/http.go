package ranking

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultHTTPTimeout = 10 * time.Second

// HTTPSource fetches the ranked envelope from a JSON endpoint.
type HTTPSource struct {
	url        string
	httpClient *http.Client
}

// NewHTTPSource creates a source reading from url.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &HTTPSource{
		url:        strings.TrimSpace(url),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchRanked issues a single GET and decodes the envelope.
func (s *HTTPSource) FetchRanked(ctx context.Context) (Result, error) {
	if s.url == "" {
		return Result{}, fmt.Errorf("ranking url is empty")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return Result{}, fmt.Errorf("create ranking request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("ranking request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Result{}, fmt.Errorf("ranking service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var res Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return Result{}, fmt.Errorf("decode ranking response: %w", err)
	}
	return res, nil
}
