package notify_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/notify"
)

func TestAlertBlocksUntilAcknowledged(t *testing.T) {
	var buf bytes.Buffer
	notifier := notify.NewTerminal(&buf, strings.NewReader("\n"))

	notifier.Alert("Alert: city not found")

	out := buf.String()
	assert.Contains(t, out, "Alert: city not found")
	assert.Contains(t, out, "[press enter to continue]")
}

func TestAlertWithoutReader(t *testing.T) {
	var buf bytes.Buffer
	notifier := notify.NewTerminal(&buf, nil)

	notifier.Alert("Connection Failed. Please check internet connection.")

	out := buf.String()
	assert.Contains(t, out, "Connection Failed. Please check internet connection.")
	assert.NotContains(t, out, "[press enter to continue]")
}
