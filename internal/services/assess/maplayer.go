package assess

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	mapLayerPath = "/get_map_layer"

	// The service always encodes overlays as inline PNG data URLs.
	imagePrefix = "data:image/png;base64,"
)

// Formula selects the vegetation index the service computes.
type Formula string

const (
	FormulaNDVI Formula = "ndvi"
	FormulaSAVI Formula = "savi"
	FormulaEVI  Formula = "evi"
)

func ParseFormula(s string) (Formula, error) {
	switch f := Formula(strings.ToLower(s)); f {
	case FormulaNDVI, FormulaSAVI, FormulaEVI:
		return f, nil
	default:
		return "", fmt.Errorf("unknown formula %q", s)
	}
}

// MapRequest asks for index overlays of one plot across several dates.
type MapRequest struct {
	Lat     float64  `json:"lat"`
	Lon     float64  `json:"lon"`
	Zoom    int      `json:"zoom"`
	Dates   []string `json:"dates"`
	Formula Formula  `json:"formula"`
}

// Layer is one dated overlay. Stats is the mean index over vegetated
// pixels, rounded by the service.
type Layer struct {
	Date  string  `json:"date"`
	Image string  `json:"image"`
	Stats float64 `json:"stats"`
}

// DecodeImage unpacks the layer's inline data URL into PNG bytes.
func (l Layer) DecodeImage() ([]byte, error) {
	if !strings.HasPrefix(l.Image, imagePrefix) {
		return nil, fmt.Errorf("layer image is not an inline png")
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(l.Image, imagePrefix))
	if err != nil {
		return nil, fmt.Errorf("decoding layer image: %w", err)
	}

	return data, nil
}

type layersEnvelope struct {
	Error  string  `json:"error"`
	Layers []Layer `json:"layers"`
}

// MapLayers posts a map-layer request and returns one overlay per date,
// in request order. Errors follow the same body-driven taxonomy as Assess.
func (c *Client) MapLayers(ctx context.Context, request MapRequest) ([]Layer, error) {
	start := time.Now()

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, &TransportError{Op: "encoding map request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+mapLayerPath, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Op: "building map request", Err: err}
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Ctx(ctx).Err(err).Str("formula", string(request.Formula)).Msg("map layer request failed")

		return nil, &TransportError{Op: "sending map request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "reading map response", Err: err}
	}

	var env layersEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		c.log.Error().Ctx(ctx).Err(err).Int("status", resp.StatusCode).Msg("map layer response is not valid JSON")

		return nil, &TransportError{Op: "decoding map response", Err: err}
	}

	if env.Error != "" {
		return nil, &ApplicationError{Message: env.Error}
	}

	if env.Layers == nil {
		return nil, &TransportError{Op: "response has neither layers nor error"}
	}

	c.log.Info().Ctx(ctx).
		Str("formula", string(request.Formula)).
		Int("layers", len(env.Layers)).
		Dur("duration", time.Since(start)).
		Msg("map layers fetched")

	return env.Layers, nil
}
