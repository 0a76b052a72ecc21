// Package app wires the panels to their terminal surfaces and drives the
// interactive command loop.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"go.uber.org/zap"

	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/catalog"
	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/config"
	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/display"
	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/models"
	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/notify"
	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/overlay"
	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/panel"
	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/services/assess"
	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/services/logger"
)

const (
	mapActionLabel = "Map Layers"
	mapBusyLabel   = "Loading layers..."
)

type App struct {
	cfg config.Config
	log zerolog.Logger

	in  io.Reader
	out io.Writer
}

func New(cfg config.Config, log zerolog.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		cfg: cfg,
		log: log,
		in:  in,
		out: out,
	}
}

// ServiceContainer holds everything Run drives.
type ServiceContainer struct {
	Client       *assess.Client
	Cities       *catalog.Catalog
	Selector     *display.Selector
	RequestPanel *panel.RequestPanel
	MapPanel     *panel.MapPanel

	HTTPLog *zap.Logger

	reader *bufio.Reader
}

func (a *App) Init() (ServiceContainer, error) {
	a.log.Info().Str("service_url", a.cfg.ServiceURL).Msg("initializing panels")

	cities, err := a.loadCatalog()
	if err != nil {
		return ServiceContainer{}, err
	}

	formula, err := assess.ParseFormula(a.cfg.Map.Formula)
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("map formula: %w", err)
	}

	httpLog, err := logger.NewFileLogger(a.cfg.HTTPLogsPath)
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("creating http log: %w", err)
	}

	httpClient := &http.Client{
		Transport: logger.NewRoundTripper(httpLog),
	}

	client := assess.NewClient(a.cfg.ServiceURL, httpClient, a.log)

	reader := bufio.NewReader(a.in)
	notifier := notify.NewTerminal(a.out, reader)
	selector := display.NewSelector(cities.Names()[0])

	assessView := display.NewView(a.out)
	fields := make(map[models.Metric]panel.Field, len(models.Metrics()))
	for _, metric := range models.Metrics() {
		fields[metric] = assessView.Field(metric.Label())
	}

	requestPanel := panel.NewRequestPanel(client, panel.UI{
		Control:  display.NewControl(a.cfg.Panel.ActionLabel),
		Selector: selector,
		Fields:   fields,
		Results:  assessView,
		Notifier: notifier,
	}, a.cfg.Panel.BusyLabel, a.log)

	mapPanel := panel.NewMapPanel(
		client,
		overlay.NewStore(a.cfg.OverlayDir),
		cities,
		panel.UI{
			Control:  display.NewControl(mapActionLabel),
			Selector: selector,
			Results:  display.NewView(a.out),
			Notifier: notifier,
		},
		panel.MapPreset{
			Zoom:    a.cfg.Map.Zoom,
			Formula: formula,
			Dates:   a.cfg.Map.Dates,
		},
		mapBusyLabel,
		a.log,
	)

	return ServiceContainer{
		Client:       client,
		Cities:       cities,
		Selector:     selector,
		RequestPanel: requestPanel,
		MapPanel:     mapPanel,
		HTTPLog:      httpLog,
		reader:       reader,
	}, nil
}

func (a *App) loadCatalog() (*catalog.Catalog, error) {
	if a.cfg.CatalogPath != "" {
		return catalog.Load(a.cfg.CatalogPath)
	}

	return catalog.Default()
}

// Run reads commands until quit, EOF or context cancellation. Each trigger
// runs to completion before the next prompt.
func (a *App) Run(ctx context.Context, c ServiceContainer) error {
	fmt.Fprintf(a.out, "Agro assessment panel (service %s)\n", a.cfg.ServiceURL)
	fmt.Fprintf(a.out, "Cities: %s\n", strings.Join(c.Cities.Names(), ", "))
	fmt.Fprintln(a.out, "Commands: assess [city] | layers [city] [dates...] | cities | quit")

	for {
		select {
		case <-ctx.Done():
			a.log.Info().Msg("command loop stopped")

			return nil
		default:
		}

		fmt.Fprintf(a.out, "[%s] > ", c.Selector.Value())

		line, err := c.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("reading command: %w", err)
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "assess":
			if len(args) > 1 {
				c.Selector.Select(strings.Join(args[1:], " "))
			}

			c.RequestPanel.Trigger(ctx)
		case "layers":
			var dates []string
			if len(args) > 1 {
				c.Selector.Select(args[1])
				dates = args[2:]
			}

			c.MapPanel.Trigger(ctx, dates...)
		case "cities":
			fmt.Fprintln(a.out, strings.Join(c.Cities.Names(), "\n"))
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(a.out, "unknown command %q\n", args[0])
		}
	}
}

func (a *App) Stop(c ServiceContainer) {
	if err := c.HTTPLog.Sync(); err != nil {
		a.log.Warn().Err(err).Msg("failed to sync http log")
	}

	a.log.Info().Msg("panel stopped")
}
