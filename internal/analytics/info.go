package analytics

import (
	"encoding/json"
	"fmt"

	"github.com/amberhealth/telemetry/internal/errorutil"
	"github.com/amberhealth/telemetry/internal/timeutil"
)

type (
	// MetricsInfo is the aggregate handed over by the collection subsystem
	// for one submission cycle. It is consumed exactly once to build a
	// SubmissionPayload and then discarded.
	MetricsInfo struct {
		Payload         Payload
		PostalDistrict  string
		RecordedMetrics map[Metric]int
	}

	// Payload is the window the metrics were aggregated over. Exactly one
	// concrete variant is present per submission: SystemPayload for windows
	// closed by the OS, TriggeredPayload for on-demand reports.
	Payload interface {
		isPayload()
	}

	// SystemPayload is an OS-collected window. Device metadata and network
	// transfer totals are optional; the mapper substitutes well-defined
	// defaults when they are missing.
	SystemPayload struct {
		TimeStampBegin                      timeutil.Time    `json:"timeStampBegin"`
		TimeStampEnd                        timeutil.Time    `json:"timeStampEnd"`
		Metadata                            *DeviceMetadata  `json:"metadata"`
		LatestApplicationVersion            string           `json:"latestApplicationVersion"`
		IncludesMultipleApplicationVersions bool             `json:"includesMultipleApplicationVersions"`
		NetworkTransfer                     *NetworkTransfer `json:"networkTransfer"`
	}

	// TriggeredPayload is a synthetic window for an on-demand report. All
	// fields are required and there are no network totals.
	TriggeredPayload struct {
		StartDate                           timeutil.Time `json:"startDate"`
		EndDate                             timeutil.Time `json:"endDate"`
		DeviceModel                         string        `json:"deviceModel"`
		OperatingSystemVersion              string        `json:"operatingSystemVersion"`
		LatestApplicationVersion            string        `json:"latestApplicationVersion"`
		IncludesMultipleApplicationVersions bool          `json:"includesMultipleApplicationVersions"`
	}

	DeviceMetadata struct {
		DeviceModel            string `json:"deviceModel"`
		OperatingSystemVersion string `json:"operatingSystemVersion"`
	}

	// NetworkTransfer carries per-interface byte totals for the window.
	// Values arrive as unit-converted measurements and may be fractional;
	// the mapper truncates them to whole bytes.
	NetworkTransfer struct {
		WifiUploadBytes       float64 `json:"wifiUploadBytes"`
		WifiDownloadBytes     float64 `json:"wifiDownloadBytes"`
		CellularUploadBytes   float64 `json:"cellularUploadBytes"`
		CellularDownloadBytes float64 `json:"cellularDownloadBytes"`
	}
)

func (SystemPayload) isPayload()    {}
func (TriggeredPayload) isPayload() {}

const (
	payloadTypeSystem    = "system"
	payloadTypeTriggered = "triggered"
)

// UnmarshalJSON decodes a collector document. The payload variant is picked
// by the "type" tag next to the payload fields.
func (i *MetricsInfo) UnmarshalJSON(b []byte) error {
	var raw struct {
		Payload         json.RawMessage `json:"payload"`
		PostalDistrict  string          `json:"postalDistrict"`
		RecordedMetrics map[Metric]int  `json:"recordedMetrics"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: %v", errorutil.ErrMalformedPayload, err)
	}
	if len(raw.Payload) == 0 {
		return fmt.Errorf("%w: missing payload", errorutil.ErrMalformedPayload)
	}

	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw.Payload, &tag); err != nil {
		return fmt.Errorf("%w: %v", errorutil.ErrMalformedPayload, err)
	}

	switch tag.Type {
	case payloadTypeSystem:
		var p SystemPayload
		if err := json.Unmarshal(raw.Payload, &p); err != nil {
			return fmt.Errorf("%w: %v", errorutil.ErrMalformedPayload, err)
		}
		i.Payload = p
	case payloadTypeTriggered:
		var p TriggeredPayload
		if err := json.Unmarshal(raw.Payload, &p); err != nil {
			return fmt.Errorf("%w: %v", errorutil.ErrMalformedPayload, err)
		}
		i.Payload = p
	default:
		return fmt.Errorf("%w: unknown payload type %q", errorutil.ErrMalformedPayload, tag.Type)
	}

	i.PostalDistrict = raw.PostalDistrict
	i.RecordedMetrics = raw.RecordedMetrics
	return nil
}
