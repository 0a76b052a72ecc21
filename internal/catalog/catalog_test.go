package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/catalog"
)

func TestDefault(t *testing.T) {
	cities, err := catalog.Default()
	require.NoError(t, err)

	names := cities.Names()
	assert.NotEmpty(t, names)
	assert.Equal(t, "Riyadh", names[0])

	city, ok := cities.Find("riyadh")
	require.True(t, ok)
	assert.Equal(t, "Riyadh", city.Name)
	assert.InDelta(t, 24.7136, city.Lat, 0.0001)
	assert.InDelta(t, 46.6753, city.Lon, 0.0001)
}

func TestFindUnknownCity(t *testing.T) {
	cities, err := catalog.Default()
	require.NoError(t, err)

	_, ok := cities.Find("Atlantis")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	path := writeCatalog(t, `
cities:
  - name: Tabuk
    lat: 28.3838
    lon: 36.5550
  - name: Abha
    lat: 18.2164
    lon: 42.5053
`)

	cities, err := catalog.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Tabuk", "Abha"}, cities.Names())
}

func TestLoadInvalidCatalog(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "no cities", content: "cities: []"},
		{name: "missing name", content: "cities:\n  - lat: 10\n    lon: 10"},
		{name: "latitude out of range", content: "cities:\n  - name: Nowhere\n    lat: 120\n    lon: 10"},
		{name: "longitude out of range", content: "cities:\n  - name: Nowhere\n    lat: 10\n    lon: 200"},
		{name: "not yaml", content: "{{{"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeCatalog(t, tc.content)

			_, err := catalog.Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cities.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}
