// Package assess calls the agronomic assessment service and translates its
// two response shapes into either an Assessment or a typed error.
package assess

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/models"
)

const requestPath = "/assess"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

func NewClient(baseURL string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log.With().Str("component", "assess-client").Logger(),
	}
}

// envelope decodes both response shapes at once. A non-empty error field
// wins over anything else in the payload.
type envelope struct {
	Error   string                 `json:"error"`
	Summary *models.WeatherSummary `json:"weather_summary"`
	Result  string                 `json:"result"`
}

// Assess posts the selected city and returns the service's assessment.
// Branching follows the body, not the status line: the service reports
// rejected cities in an error field, sometimes on non-2xx responses.
func (c *Client) Assess(ctx context.Context, selection models.Selection) (models.Assessment, error) {
	start := time.Now()

	payload, err := json.Marshal(selection)
	if err != nil {
		return models.Assessment{}, &TransportError{Op: "encoding request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+requestPath, bytes.NewReader(payload))
	if err != nil {
		return models.Assessment{}, &TransportError{Op: "building request", Err: err}
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Ctx(ctx).Err(err).Str("city", selection.City).Msg("assessment request failed")

		return models.Assessment{}, &TransportError{Op: "sending request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error().Ctx(ctx).Err(err).Str("city", selection.City).Msg("reading assessment response failed")

		return models.Assessment{}, &TransportError{Op: "reading response", Err: err}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		c.log.Error().Ctx(ctx).Err(err).Str("city", selection.City).
			Int("status", resp.StatusCode).Msg("assessment response is not valid JSON")

		return models.Assessment{}, &TransportError{Op: "decoding response", Err: err}
	}

	if env.Error != "" {
		c.log.Info().Ctx(ctx).Str("city", selection.City).
			Str("reason", env.Error).Msg("assessment rejected")

		return models.Assessment{}, &ApplicationError{Message: env.Error}
	}

	if env.Summary == nil {
		return models.Assessment{}, &TransportError{Op: "response has neither weather summary nor error"}
	}

	c.log.Info().Ctx(ctx).Str("city", selection.City).
		Dur("duration", time.Since(start)).Msg("assessment completed")

	return models.Assessment{Summary: *env.Summary, Result: env.Result}, nil
}
