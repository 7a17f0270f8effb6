package tracking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goliatone/go-lessonui/components/lessonui"
)

// TrackPath is the endpoint path tracking events are posted to.
const TrackPath = "/track"

// HTTPConfig configures the HTTP transport.
type HTTPConfig struct {
	BaseURL string
	// HTTPClient defaults to a client without a timeout; a hung request simply never settles.
	HTTPClient *http.Client
}

// HTTPTransport posts tracking events as JSON to the backend.
type HTTPTransport struct {
	endpoint string
	client   *http.Client
}

// NewHTTPTransport builds a transport that posts to {BaseURL}/track.
func NewHTTPTransport(cfg HTTPConfig) (*HTTPTransport, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("tracking: base url is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPTransport{
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + TrackPath,
		client:   httpClient,
	}, nil
}

var _ lessonui.Transport = (*HTTPTransport)(nil)

// Endpoint returns the full URL events are posted to.
func (t *HTTPTransport) Endpoint() string {
	return t.endpoint
}

// Send posts the event. The response status and body are not inspected; only
// encoding and transport failures are returned.
func (t *HTTPTransport) Send(ctx context.Context, event lessonui.TrackingEvent) error {
	body, err := EncodeEvent(event)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("tracking: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("tracking: http request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// EncodeEvent renders the wire body for an event.
func EncodeEvent(event lessonui.TrackingEvent) ([]byte, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("tracking: encode event: %w", err)
	}
	return body, nil
}
