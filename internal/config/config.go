package config

import "github.com/kelseyhightower/envconfig"

type Panel struct {
	ActionLabel string `envconfig:"PANEL_ACTION_LABEL" default:"Assess"`
	BusyLabel   string `envconfig:"PANEL_BUSY_LABEL" default:"Assessing..."`
}

type Map struct {
	Zoom    int      `envconfig:"MAP_ZOOM" default:"12"`
	Formula string   `envconfig:"MAP_FORMULA" default:"ndvi"`
	Dates   []string `envconfig:"MAP_DATES"`
}

type Config struct {
	ServiceURL string `envconfig:"ASSESS_SERVICE_URL" default:"http://localhost:5000"`

	CatalogPath string `envconfig:"CITY_CATALOG_PATH"`
	OverlayDir  string `envconfig:"OVERLAY_DIR" default:"./overlays"`

	LogsPath     string `envconfig:"LOGS_PATH" default:"./log/agro-assess.log"`
	HTTPLogsPath string `envconfig:"HTTP_LOGS_PATH" default:"./log/agro-assess-http.log"`

	Panel Panel
	Map   Map
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
