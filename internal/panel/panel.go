// Package panel implements the page's request cycles: a trigger starts one
// service call, the outcome updates the display, and the trigger always
// comes back enabled with its original label.
package panel

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/models"
	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/services/assess"
)

const (
	alertPrefix = "Alert: "

	connectionFailedMessage = "Connection Failed. Please check internet connection."
)

// Field is one labelled read-out of the summary region.
type Field interface {
	SetText(text string)
}

// Control is the trigger the user presses. It stays disabled for the
// duration of a cycle.
type Control interface {
	SetEnabled(enabled bool)
	SetLabel(label string)
	Label() string
}

// Container presents result content below the summary region.
type Container interface {
	SetMarkup(markup string)
	Reveal()
	Hide()
	ScrollIntoView()
}

// Selector exposes the city the user currently has selected.
type Selector interface {
	Value() string
}

// Notifier interrupts the user with a message.
type Notifier interface {
	Alert(message string)
}

// Assessor is the slice of the service client the request panel needs.
type Assessor interface {
	Assess(ctx context.Context, selection models.Selection) (models.Assessment, error)
}

// UI groups the page elements a panel drives. Field bindings are optional:
// a panel silently skips metrics its layout does not show.
type UI struct {
	Control  Control
	Selector Selector
	Fields   map[models.Metric]Field
	Results  Container
	Notifier Notifier
}

// RequestPanel runs one assessment per trigger: post the selected city,
// then either fill the summary fields and reveal the results, or notify
// the user about the failure.
type RequestPanel struct {
	assessor  Assessor
	ui        UI
	busyLabel string
	log       zerolog.Logger

	busy atomic.Bool
}

func NewRequestPanel(assessor Assessor, ui UI, busyLabel string, log zerolog.Logger) *RequestPanel {
	return &RequestPanel{
		assessor:  assessor,
		ui:        ui,
		busyLabel: busyLabel,
		log:       log.With().Str("component", "request-panel").Logger(),
	}
}

// Trigger runs a single request cycle. A trigger that arrives while a cycle
// is in flight is dropped, the way a disabled button swallows clicks.
func (p *RequestPanel) Trigger(ctx context.Context) {
	if !p.busy.CompareAndSwap(false, true) {
		p.log.Debug().Msg("trigger ignored, cycle already in flight")

		return
	}
	defer p.busy.Store(false)

	log := p.log.With().Str("request_id", uuid.NewString()).Logger()
	city := p.ui.Selector.Value()

	originalLabel := p.ui.Control.Label()
	p.ui.Control.SetEnabled(false)
	p.ui.Control.SetLabel(p.busyLabel)

	defer func() {
		p.ui.Control.SetLabel(originalLabel)
		p.ui.Control.SetEnabled(true)
	}()

	// The previous result leaves the screen the moment a new cycle starts;
	// only a successful response brings the container back.
	p.ui.Results.Hide()

	start := time.Now()
	log.Info().Str("city", city).Msg("assessment cycle started")

	assessment, err := p.assessor.Assess(ctx, models.Selection{City: city})
	if err != nil {
		reportFailure(log, p.ui, err)

		return
	}

	for _, metric := range models.Metrics() {
		field, ok := p.ui.Fields[metric]
		if !ok {
			continue
		}

		field.SetText(models.FormatValue(assessment.Summary.Value(metric)) + metric.Unit())
	}

	p.ui.Results.SetMarkup(assessment.Result)
	p.ui.Results.Reveal()
	p.ui.Results.ScrollIntoView()

	log.Info().Str("city", city).Dur("duration", time.Since(start)).Msg("assessment cycle completed")
}

// reportFailure notifies the user once per failed cycle. The results stay
// hidden either way; they were cleared when the cycle started.
func reportFailure(log zerolog.Logger, ui UI, err error) {
	var appErr *assess.ApplicationError
	if errors.As(err, &appErr) {
		log.Warn().Str("reason", appErr.Message).Msg("cycle rejected by service")

		ui.Notifier.Alert(alertPrefix + appErr.Message)

		return
	}

	log.Error().Err(err).Msg("cycle failed")

	ui.Notifier.Alert(connectionFailedMessage)
}
