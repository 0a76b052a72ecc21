// Package overlay persists decoded map overlays so they can be opened
// outside the terminal.
package overlay

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/services/assess"
)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

// Store writes overlay images beneath a single directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save decodes the layer image and writes it as <formula>_<date>.png,
// returning the written path. Existing overlays for the same date are
// overwritten.
func (s *Store) Save(formula assess.Formula, layer assess.Layer) (string, error) {
	data, err := layer.DecodeImage()
	if err != nil {
		return "", fmt.Errorf("overlay %s %s: %w", formula, layer.Date, err)
	}

	if err := os.MkdirAll(s.dir, dirMode); err != nil {
		return "", fmt.Errorf("creating overlay directory: %w", err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("%s_%s.png", formula, layer.Date))
	if err := os.WriteFile(path, data, fileMode); err != nil {
		return "", fmt.Errorf("writing overlay: %w", err)
	}

	return path, nil
}
