package display_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/display"
)

func TestRenderMarkup(t *testing.T) {
	testCases := []struct {
		name     string
		markup   string
		expected string
	}{
		{
			name:     "plain text passes through",
			markup:   "Vegetation index stable",
			expected: "Vegetation index stable",
		},
		{
			name:     "paragraph",
			markup:   "<p>NDVI is strong across the plot.</p>",
			expected: "NDVI is strong across the plot.",
		},
		{
			name:     "paragraphs become lines",
			markup:   "<p>First dekad.</p><p>Second dekad.</p>",
			expected: "First dekad.\nSecond dekad.",
		},
		{
			name:     "inline tags stripped",
			markup:   "<strong>Dense</strong> canopy near the wadi",
			expected: "Dense canopy near the wadi",
		},
		{
			name:     "line break",
			markup:   "irrigate early<br/>avoid midday heat",
			expected: "irrigate early\navoid midday heat",
		},
		{
			name:     "list items",
			markup:   "<ul><li>check pivot 3</li><li>resample savi</li></ul>",
			expected: "check pivot 3\nresample savi",
		},
		{
			name:     "entities unescaped",
			markup:   "<p>rh &gt; 60% &amp; rising</p>",
			expected: "rh > 60% & rising",
		},
		{
			name:     "heading and paragraph",
			markup:   "<h3>Outlook</h3><p>Favourable.</p>",
			expected: "Outlook\nFavourable.",
		},
		{
			name:     "empty markup",
			markup:   "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, display.RenderMarkup(tc.markup))
		})
	}
}
