package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	gojson "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/amberhealth/telemetry/internal/analytics"
	"github.com/amberhealth/telemetry/internal/logutil"
	"github.com/amberhealth/telemetry/internal/submitclient"
)

var release string

func main() {
	logutil.ConfigureLogger("submitter")

	config, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading configuration")
	}

	err = sentry.Init(sentry.ClientOptions{
		Dsn:              config.SentryDSN,
		EnableTracing:    true,
		Environment:      config.Environment,
		Release:          release,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("can't initialize sentry")
	}
	defer sentry.Flush(5 * time.Second)

	info, err := readMetricsInfo(config.InputPath)
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal().Err(err).Str("input", config.InputPath).Msg("error reading collector document")
	}

	client, err := submitclient.NewClient(config.IngestHost)
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal().Err(err).Msg("error setting up the submission client")
	}

	payload := analytics.NewSubmissionPayload(info)

	// One attempt per invocation. A failed window is simply dropped; the
	// scheduler's next cycle submits the next one.
	if err := client.Submit(context.Background(), payload); err != nil {
		sentry.CaptureException(err)
		log.Fatal().Err(err).Msg("error submitting analytics window")
	}

	log.Info().
		Time("window_start", payload.AnalyticsWindow.StartDate.Time()).
		Time("window_end", payload.AnalyticsWindow.EndDate.Time()).
		Msg("analytics window submitted")
}

func readMetricsInfo(path string) (analytics.MetricsInfo, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return analytics.MetricsInfo{}, err
		}
		defer f.Close()
		r = f
	}
	var info analytics.MetricsInfo
	err := gojson.NewDecoder(r).Decode(&info)
	return info, err
}
