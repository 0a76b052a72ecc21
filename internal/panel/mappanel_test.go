package panel_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/catalog"
	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/panel"
	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/services/assess"
)

type mockLayerFetcher struct {
	mock.Mock
}

func (m *mockLayerFetcher) MapLayers(ctx context.Context, request assess.MapRequest) ([]assess.Layer, error) {
	args := m.Called(ctx, request)
	if layers := args.Get(0); layers != nil {
		return layers.([]assess.Layer), args.Error(1)
	}

	return nil, args.Error(1)
}

func newMockLayerFetcher(t *testing.T) *mockLayerFetcher {
	t.Helper()

	m := &mockLayerFetcher{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type fakeStore struct {
	err   error
	saves []string
}

func (s *fakeStore) Save(formula assess.Formula, layer assess.Layer) (string, error) {
	if s.err != nil {
		return "", s.err
	}

	path := fmt.Sprintf("overlays/%s_%s.png", formula, layer.Date)
	s.saves = append(s.saves, path)

	return path, nil
}

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cities, err := catalog.Default()
	require.NoError(t, err)

	return cities
}

var testPreset = panel.MapPreset{
	Zoom:    12,
	Formula: assess.FormulaNDVI,
	Dates:   []string{"2024-01-15", "2024-02-15"},
}

func newMapPanel(t *testing.T, h *harness, fetcher panel.LayerFetcher, store panel.OverlayStore) *panel.MapPanel {
	t.Helper()

	return panel.NewMapPanel(fetcher, store, defaultCatalog(t), h.ui(), testPreset, "Loading...", zerolog.Nop())
}

func TestMapTriggerSuccess(t *testing.T) {
	h := newHarness("Riyadh")
	store := &fakeStore{}

	layers := []assess.Layer{
		{Date: "2024-01-15", Image: "data:image/png;base64,AAAA", Stats: 0.42},
		{Date: "2024-02-15", Image: "data:image/png;base64,BBBB", Stats: 0.3711},
	}

	fetcher := newMockLayerFetcher(t)
	fetcher.On("MapLayers", mock.Anything, assess.MapRequest{
		Lat:     24.7136,
		Lon:     46.6753,
		Zoom:    12,
		Dates:   []string{"2024-01-15", "2024-02-15"},
		Formula: assess.FormulaNDVI,
	}).Return(layers, nil).Once()

	p := newMapPanel(t, h, fetcher, store)
	p.Trigger(context.Background())

	assert.Equal(t, []string{
		"overlays/ndvi_2024-01-15.png",
		"overlays/ndvi_2024-02-15.png",
	}, store.saves)

	assert.Contains(t, h.container.markup, "NDVI layers for Riyadh")
	assert.Contains(t, h.container.markup, "2024-01-15  mean 0.42  overlays/ndvi_2024-01-15.png")
	assert.Contains(t, h.container.markup, "2024-02-15  mean 0.3711  overlays/ndvi_2024-02-15.png")
	assert.True(t, h.container.revealed)
	assert.True(t, h.container.scrolled)
	assert.Empty(t, h.notifier.messages)

	h.assertIdle(t)
}

func TestMapTriggerDateOverride(t *testing.T) {
	h := newHarness("Jeddah")
	store := &fakeStore{}

	fetcher := newMockLayerFetcher(t)
	fetcher.On("MapLayers", mock.Anything, mock.MatchedBy(func(request assess.MapRequest) bool {
		return len(request.Dates) == 1 && request.Dates[0] == "2024-03-01"
	})).Return([]assess.Layer{}, nil).Once()

	p := newMapPanel(t, h, fetcher, store)
	p.Trigger(context.Background(), "2024-03-01")

	assert.True(t, h.container.revealed)
}

func TestMapTriggerUnknownCity(t *testing.T) {
	h := newHarness("Atlantis")

	p := newMapPanel(t, h, newMockLayerFetcher(t), &fakeStore{})
	p.Trigger(context.Background())

	require.Len(t, h.notifier.messages, 1)
	assert.Equal(t, `Alert: unknown city "Atlantis"`, h.notifier.messages[0])
	assert.False(t, h.container.revealed)

	h.assertIdle(t)
}

func TestMapTriggerNoDates(t *testing.T) {
	h := newHarness("Riyadh")

	p := panel.NewMapPanel(
		newMockLayerFetcher(t),
		&fakeStore{},
		defaultCatalog(t),
		h.ui(),
		panel.MapPreset{Zoom: 12, Formula: assess.FormulaNDVI},
		"Loading...",
		zerolog.Nop(),
	)
	p.Trigger(context.Background())

	assert.Equal(t, []string{"Alert: no dates configured for map layers"}, h.notifier.messages)

	h.assertIdle(t)
}

func TestMapTriggerServiceRejection(t *testing.T) {
	h := newHarness("Riyadh")

	fetcher := newMockLayerFetcher(t)
	fetcher.On("MapLayers", mock.Anything, mock.Anything).
		Return(nil, &assess.ApplicationError{Message: "satellite data unavailable"}).Once()

	p := newMapPanel(t, h, fetcher, &fakeStore{})
	p.Trigger(context.Background())

	assert.Equal(t, []string{"Alert: satellite data unavailable"}, h.notifier.messages)
	assert.Equal(t, 1, h.container.hides)

	h.assertIdle(t)
}

func TestMapTriggerConnectionFailure(t *testing.T) {
	h := newHarness("Riyadh")

	fetcher := newMockLayerFetcher(t)
	fetcher.On("MapLayers", mock.Anything, mock.Anything).
		Return(nil, &assess.TransportError{Op: "sending map request", Err: errors.New("connection reset")}).Once()

	p := newMapPanel(t, h, fetcher, &fakeStore{})
	p.Trigger(context.Background())

	assert.Equal(t, []string{"Connection Failed. Please check internet connection."}, h.notifier.messages)
	assert.False(t, h.container.revealed)
	assert.Zero(t, h.container.reveals)

	h.assertIdle(t)
}

func TestMapTriggerSaveFailure(t *testing.T) {
	h := newHarness("Riyadh")
	store := &fakeStore{err: errors.New("overlay ndvi 2024-01-15: disk full")}

	fetcher := newMockLayerFetcher(t)
	fetcher.On("MapLayers", mock.Anything, mock.Anything).
		Return([]assess.Layer{{Date: "2024-01-15", Image: "data:image/png;base64,AAAA", Stats: 0.42}}, nil).Once()

	p := newMapPanel(t, h, fetcher, store)
	p.Trigger(context.Background())

	require.Len(t, h.notifier.messages, 1)
	assert.Contains(t, h.notifier.messages[0], "Alert: ")
	assert.Contains(t, h.notifier.messages[0], "disk full")
	assert.False(t, h.container.revealed)

	h.assertIdle(t)
}
