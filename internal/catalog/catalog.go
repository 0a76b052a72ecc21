// Package catalog holds the list of cities the panels can assess, together
// with the coordinates the map-layer service needs.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_cities.yaml
var defaultCities []byte

type City struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
}

type Catalog struct {
	cities []City
}

type catalogFile struct {
	Cities []City `yaml:"cities"`
}

// Load reads a city catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	return parse(data)
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return parse(defaultCities)
}

func parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	if len(file.Cities) == 0 {
		return nil, fmt.Errorf("catalog has no cities")
	}

	for i, city := range file.Cities {
		if err := validate(city); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
	}

	return &Catalog{cities: file.Cities}, nil
}

func validate(city City) error {
	if strings.TrimSpace(city.Name) == "" {
		return fmt.Errorf("city name is empty")
	}

	if city.Lat < -90 || city.Lat > 90 {
		return fmt.Errorf("city %s: latitude %v out of range", city.Name, city.Lat)
	}

	if city.Lon < -180 || city.Lon > 180 {
		return fmt.Errorf("city %s: longitude %v out of range", city.Name, city.Lon)
	}

	return nil
}

// Names lists the city names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.cities))
	for _, city := range c.cities {
		names = append(names, city.Name)
	}

	return names
}

// Find looks a city up by name, ignoring case.
func (c *Catalog) Find(name string) (City, bool) {
	for _, city := range c.cities {
		if strings.EqualFold(city.Name, name) {
			return city, true
		}
	}

	return City{}, false
}
