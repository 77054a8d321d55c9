package main

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	gojson "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/amberhealth/telemetry/internal/analytics"
	"github.com/amberhealth/telemetry/internal/errorutil"
)

func (e *environment) postSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	hub := sentry.GetHubFromContext(ctx)

	var payload analytics.SubmissionPayload
	s := sentry.StartSpan(ctx, "processing")
	s.Description = "Decoding submission"
	err := gojson.NewDecoder(r.Body).Decode(&payload)
	s.Finish()
	if err != nil {
		err = fmt.Errorf("%w: %v", errorutil.ErrMalformedPayload, err)
		if hub != nil {
			hub.CaptureException(err)
		}
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	log.Info().
		Str("request_id", r.Header.Get("X-Request-ID")).
		Time("window_start", payload.AnalyticsWindow.StartDate.Time()).
		Time("window_end", payload.AnalyticsWindow.EndDate.Time()).
		Str("postal_district", payload.Metadata.PostalDistrict).
		Str("device_model", payload.Metadata.DeviceModel).
		Str("os_version", payload.Metadata.OperatingSystemVersion).
		Str("app_version", payload.Metadata.LatestApplicationVersion).
		Msg("accepted analytics submission")

	w.WriteHeader(http.StatusOK)
}
