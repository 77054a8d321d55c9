package analytics

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/amberhealth/telemetry/internal/errorutil"
	"github.com/amberhealth/telemetry/internal/testutil"
	"github.com/amberhealth/telemetry/internal/timeutil"
)

func TestUnmarshalCollectorDocument(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want MetricsInfo
	}{
		{
			name: "system payload",
			doc: `{
				"postalDistrict": "AL1",
				"payload": {
					"type": "system",
					"timeStampBegin": "2023-05-01T00:00:00Z",
					"timeStampEnd": "2023-05-02T00:00:00Z",
					"metadata": {"deviceModel": "iPhone12,1", "operatingSystemVersion": "16.4"},
					"latestApplicationVersion": "3.9.0",
					"includesMultipleApplicationVersions": false,
					"networkTransfer": {
						"wifiUploadBytes": 100,
						"wifiDownloadBytes": 200,
						"cellularUploadBytes": 50,
						"cellularDownloadBytes": 0
					}
				},
				"recordedMetrics": {"checkedIn": 3}
			}`,
			want: MetricsInfo{
				Payload: SystemPayload{
					TimeStampBegin: timeutil.Of(time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)),
					TimeStampEnd:   timeutil.Of(time.Date(2023, 5, 2, 0, 0, 0, 0, time.UTC)),
					Metadata: &DeviceMetadata{
						DeviceModel:            "iPhone12,1",
						OperatingSystemVersion: "16.4",
					},
					LatestApplicationVersion: "3.9.0",
					NetworkTransfer: &NetworkTransfer{
						WifiUploadBytes:     100,
						WifiDownloadBytes:   200,
						CellularUploadBytes: 50,
					},
				},
				PostalDistrict:  "AL1",
				RecordedMetrics: map[Metric]int{CheckedIn: 3},
			},
		},
		{
			name: "triggered payload with unix second timestamps",
			doc: `{
				"postalDistrict": "CM20",
				"payload": {
					"type": "triggered",
					"startDate": 1682899200,
					"endDate": 1682985600,
					"deviceModel": "iPhone13,2",
					"operatingSystemVersion": "16.5",
					"latestApplicationVersion": "4.0.1",
					"includesMultipleApplicationVersions": true
				},
				"recordedMetrics": {}
			}`,
			want: MetricsInfo{
				Payload: TriggeredPayload{
					StartDate:                           timeutil.Of(time.Unix(1682899200, 0)),
					EndDate:                             timeutil.Of(time.Unix(1682985600, 0)),
					DeviceModel:                         "iPhone13,2",
					OperatingSystemVersion:              "16.5",
					LatestApplicationVersion:            "4.0.1",
					IncludesMultipleApplicationVersions: true,
				},
				PostalDistrict:  "CM20",
				RecordedMetrics: map[Metric]int{},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var got MetricsInfo
			if err := json.Unmarshal([]byte(test.doc), &got); err != nil {
				t.Fatalf("expected no error: %q", err.Error())
			}
			if diff := testutil.Diff(test.want, got); diff != "" {
				t.Fatalf("document mismatch: %v", diff)
			}
		})
	}
}

func TestUnmarshalCollectorDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "missing payload", doc: `{"postalDistrict": "AL1"}`},
		{name: "unknown payload type", doc: `{"payload": {"type": "scheduled"}}`},
		{name: "not an object", doc: `[1, 2, 3]`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var got MetricsInfo
			err := json.Unmarshal([]byte(test.doc), &got)
			if err == nil {
				t.Fatal("expected error to be non-nil")
			}
			if !errors.Is(err, errorutil.ErrMalformedPayload) {
				t.Fatalf("expected a malformed payload error, got %q", err.Error())
			}
		})
	}
}
