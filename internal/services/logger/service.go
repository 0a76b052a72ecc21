package logger

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// bodyLogLimit caps how much of a body lands in the diagnostics log;
// map-layer responses carry whole base64-encoded images.
const bodyLogLimit = 2048

// RoundTripper records every exchange with the assessment service in the
// diagnostics log: outbound payload, response snippet, status and timing.
type RoundTripper struct {
	Logger *zap.Logger
	Proxy  http.RoundTripper
}

func NewRoundTripper(logger *zap.Logger) *RoundTripper {
	return &RoundTripper{
		Logger: logger,
		Proxy:  http.DefaultTransport,
	}
}

func (l *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.ByteString("request_body", requestPayload(req)),
	}

	start := time.Now()
	resp, err := l.Proxy.RoundTrip(req)
	fields = append(fields, zap.Duration("duration", time.Since(start)))

	if err != nil {
		l.Logger.Error("request failed", append(fields, zap.Error(err))...)

		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		l.Logger.Error("reading response body failed", append(fields, zap.Error(err))...)

		return resp, err
	}

	resp.Body = io.NopCloser(bytes.NewBuffer(body))

	l.Logger.Info("request completed", append(fields,
		zap.Int("status_code", resp.StatusCode),
		zap.Int("body_bytes", len(body)),
		zap.ByteString("body_snippet", truncate(body)),
	)...)

	return resp, nil
}

// requestPayload re-reads the outbound body without consuming it. The
// service clients always post replayable bodies, so GetBody is present.
func requestPayload(req *http.Request) []byte {
	if req.GetBody == nil {
		return nil
	}

	reader, err := req.GetBody()
	if err != nil {
		return nil
	}
	defer reader.Close()

	payload, err := io.ReadAll(reader)
	if err != nil {
		return nil
	}

	return truncate(payload)
}

func truncate(body []byte) []byte {
	if len(body) > bodyLogLimit {
		return body[:bodyLogLimit]
	}

	return body
}
