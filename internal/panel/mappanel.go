package panel

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/catalog"
	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/models"
	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/services/assess"
)

// LayerFetcher is the slice of the service client the map panel needs.
type LayerFetcher interface {
	MapLayers(ctx context.Context, request assess.MapRequest) ([]assess.Layer, error)
}

// OverlayStore persists fetched overlays for viewing outside the terminal.
type OverlayStore interface {
	Save(formula assess.Formula, layer assess.Layer) (string, error)
}

// MapPreset carries the map-layer request parameters that do not depend on
// the selected city.
type MapPreset struct {
	Zoom    int
	Formula assess.Formula
	Dates   []string
}

// MapPanel fetches vegetation-index overlays for the selected city, saves
// them through the overlay store and reports one stats line per date. It
// follows the same trigger discipline as RequestPanel.
type MapPanel struct {
	fetcher   LayerFetcher
	store     OverlayStore
	cities    *catalog.Catalog
	ui        UI
	preset    MapPreset
	busyLabel string
	log       zerolog.Logger

	busy atomic.Bool
}

func NewMapPanel(
	fetcher LayerFetcher,
	store OverlayStore,
	cities *catalog.Catalog,
	ui UI,
	preset MapPreset,
	busyLabel string,
	log zerolog.Logger,
) *MapPanel {
	return &MapPanel{
		fetcher:   fetcher,
		store:     store,
		cities:    cities,
		ui:        ui,
		preset:    preset,
		busyLabel: busyLabel,
		log:       log.With().Str("component", "map-panel").Logger(),
	}
}

// Trigger runs a single map-layer cycle for the selected city. Dates
// override the preset when given.
func (p *MapPanel) Trigger(ctx context.Context, dates ...string) {
	if !p.busy.CompareAndSwap(false, true) {
		p.log.Debug().Msg("trigger ignored, cycle already in flight")

		return
	}
	defer p.busy.Store(false)

	log := p.log.With().Str("request_id", uuid.NewString()).Logger()

	originalLabel := p.ui.Control.Label()
	p.ui.Control.SetEnabled(false)
	p.ui.Control.SetLabel(p.busyLabel)

	defer func() {
		p.ui.Control.SetLabel(originalLabel)
		p.ui.Control.SetEnabled(true)
	}()

	p.ui.Results.Hide()

	name := p.ui.Selector.Value()

	city, ok := p.cities.Find(name)
	if !ok {
		log.Warn().Str("city", name).Msg("city not in catalog")

		p.ui.Notifier.Alert(alertPrefix + fmt.Sprintf("unknown city %q", name))

		return
	}

	if len(dates) == 0 {
		dates = p.preset.Dates
	}

	if len(dates) == 0 {
		p.ui.Notifier.Alert(alertPrefix + "no dates configured for map layers")

		return
	}

	start := time.Now()
	log.Info().Str("city", city.Name).Strs("dates", dates).
		Str("formula", string(p.preset.Formula)).Msg("map cycle started")

	layers, err := p.fetcher.MapLayers(ctx, assess.MapRequest{
		Lat:     city.Lat,
		Lon:     city.Lon,
		Zoom:    p.preset.Zoom,
		Dates:   dates,
		Formula: p.preset.Formula,
	})
	if err != nil {
		reportFailure(log, p.ui, err)

		return
	}

	lines := make([]string, 0, len(layers)+1)
	lines = append(lines, fmt.Sprintf("%s layers for %s", strings.ToUpper(string(p.preset.Formula)), city.Name))

	for _, layer := range layers {
		path, err := p.store.Save(p.preset.Formula, layer)
		if err != nil {
			log.Error().Err(err).Str("date", layer.Date).Msg("saving overlay failed")

			p.ui.Notifier.Alert(alertPrefix + err.Error())

			return
		}

		lines = append(lines, fmt.Sprintf("%s  mean %s  %s", layer.Date, models.FormatValue(layer.Stats), path))
	}

	p.ui.Results.SetMarkup(strings.Join(lines, "\n"))
	p.ui.Results.Reveal()
	p.ui.Results.ScrollIntoView()

	log.Info().Str("city", city.Name).Int("layers", len(layers)).
		Dur("duration", time.Since(start)).Msg("map cycle completed")
}
