package tracking

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-lessonui/components/lessonui"
)

// Config wires an EventReporter to the HTTP transport.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     logrus.FieldLogger
}

// NewReporter builds a fire-and-forget reporter posting to {BaseURL}/track.
func NewReporter(cfg Config) (*lessonui.EventReporter, error) {
	transport, err := NewHTTPTransport(HTTPConfig{
		BaseURL:    cfg.BaseURL,
		HTTPClient: cfg.HTTPClient,
	})
	if err != nil {
		return nil, err
	}
	return lessonui.NewEventReporter(lessonui.ReporterOptions{
		Transport: transport,
		Logger:    cfg.Logger,
	}), nil
}
