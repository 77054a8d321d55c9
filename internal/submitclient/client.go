package submitclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	gojson "github.com/goccy/go-json"
	"github.com/gojek/heimdall/v7/httpclient"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/amberhealth/telemetry/internal/analytics"
	"github.com/amberhealth/telemetry/internal/errorutil"
)

// SubmissionPath is the fixed relative path submissions are posted to.
const SubmissionPath = "/submission/mobile-analytics"

const defaultTimeout = 30 * time.Second

type Client struct {
	http   *httpclient.Client
	url    string
	logger zerolog.Logger
}

func NewClient(host string) (Client, error) {
	if host == "" {
		return Client{}, errors.New("host must be set")
	}
	return Client{
		url:    host + SubmissionPath,
		http:   httpclient.NewClient(httpclient.WithHTTPTimeout(defaultTimeout)),
		logger: log.With().Str("client", "submission").Logger(),
	}, nil
}

func (c Client) URL() string {
	return c.url
}

// BuildRequest serializes the payload and prepares the POST. The body is
// pretty-printed JSON with ISO-8601 dates, fields in declaration order.
func (c Client) BuildRequest(ctx context.Context, payload analytics.SubmissionPayload) (*http.Request, error) {
	body, err := gojson.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode submission: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build submission request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	return req, nil
}

// Submit posts one analytics window and discards the response body. Any 2xx
// status counts as accepted; failures are surfaced, never retried here. The
// next scheduled cycle is the caller's recovery path.
func (c Client) Submit(ctx context.Context, payload analytics.SubmissionPayload) error {
	req, err := c.BuildRequest(ctx, payload)
	if err != nil {
		return err
	}

	c.logger.Info().
		Str("request_id", req.Header.Get("X-Request-ID")).
		Time("window_start", payload.AnalyticsWindow.StartDate.Time()).
		Time("window_end", payload.AnalyticsWindow.EndDate.Time()).
		Str("postal_district", payload.Metadata.PostalDistrict).
		Str("app_version", payload.Metadata.LatestApplicationVersion).
		Bool("multiple_app_versions", payload.IncludesMultipleApplicationVersions).
		Int64("upload_bytes", payload.Metrics.CumulativeUploadBytes).
		Int64("download_bytes", payload.Metrics.CumulativeDownloadBytes).
		Msg("submitting analytics window")

	s := sentry.StartSpan(ctx, "http.client")
	s.Description = "Submit analytics window"
	resp, err := c.http.Do(req)
	s.Finish()
	if err != nil {
		return fmt.Errorf("submit analytics: %w", err)
	}
	defer resp.Body.Close()

	// Fire and forget: drain so the connection can be reused, parse nothing.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("submit analytics: %w: %s", errorutil.ErrUnexpectedStatus, resp.Status)
	}
	return nil
}
