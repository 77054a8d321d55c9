package analytics

import "math"

// NewSubmissionPayload maps a collected MetricsInfo onto the canonical
// submission document. The mapping is total: missing optional metadata maps
// to empty strings, a missing network-transfer block and absent counters map
// to zero, so there is no failure path.
func NewSubmissionPayload(info MetricsInfo) SubmissionPayload {
	var p SubmissionPayload

	switch payload := info.Payload.(type) {
	case SystemPayload:
		p.IncludesMultipleApplicationVersions = payload.IncludesMultipleApplicationVersions
		p.AnalyticsWindow = Window{
			StartDate: payload.TimeStampBegin,
			EndDate:   payload.TimeStampEnd,
		}
		p.Metadata = Metadata{
			PostalDistrict:           info.PostalDistrict,
			LatestApplicationVersion: payload.LatestApplicationVersion,
		}
		if payload.Metadata != nil {
			p.Metadata.DeviceModel = payload.Metadata.DeviceModel
			p.Metadata.OperatingSystemVersion = payload.Metadata.OperatingSystemVersion
		}
		if payload.NetworkTransfer != nil {
			p.Metrics.CumulativeWifiUploadBytes = truncateBytes(payload.NetworkTransfer.WifiUploadBytes)
			p.Metrics.CumulativeWifiDownloadBytes = truncateBytes(payload.NetworkTransfer.WifiDownloadBytes)
			p.Metrics.CumulativeCellularUploadBytes = truncateBytes(payload.NetworkTransfer.CellularUploadBytes)
			p.Metrics.CumulativeCellularDownloadBytes = truncateBytes(payload.NetworkTransfer.CellularDownloadBytes)
		}
	case TriggeredPayload:
		p.IncludesMultipleApplicationVersions = payload.IncludesMultipleApplicationVersions
		p.AnalyticsWindow = Window{
			StartDate: payload.StartDate,
			EndDate:   payload.EndDate,
		}
		p.Metadata = Metadata{
			PostalDistrict:           info.PostalDistrict,
			DeviceModel:              payload.DeviceModel,
			OperatingSystemVersion:   payload.OperatingSystemVersion,
			LatestApplicationVersion: payload.LatestApplicationVersion,
		}
	}

	p.Metrics.CumulativeUploadBytes = p.Metrics.CumulativeWifiUploadBytes + p.Metrics.CumulativeCellularUploadBytes
	p.Metrics.CumulativeDownloadBytes = p.Metrics.CumulativeWifiDownloadBytes + p.Metrics.CumulativeCellularDownloadBytes

	for _, m := range Metrics() {
		if field := counterField(&p.Metrics, m); field != nil {
			*field = info.RecordedMetrics[m]
		}
	}

	return p
}

// counterField is the static metric-to-field table. Returning nil means the
// metric is unmapped, which the exhaustiveness test treats as a defect.
func counterField(r *MetricsRecord, m Metric) *int {
	switch m {
	case CompletedOnboarding:
		return &r.CompletedOnboarding
	case CheckedIn:
		return &r.CheckedIn
	case DeletedLastCheckIn:
		return &r.DeletedLastCheckIn
	case CompletedQuestionnaireAndStartedIsolation:
		return &r.CompletedQuestionnaireAndStartedIsolation
	case CompletedQuestionnaireButDidNotStartIsolation:
		return &r.CompletedQuestionnaireButDidNotStartIsolation
	case ReceivedPositiveTestResult:
		return &r.ReceivedPositiveTestResult
	case ReceivedNegativeTestResult:
		return &r.ReceivedNegativeTestResult
	case ReceivedVoidTestResult:
		return &r.ReceivedVoidTestResult
	case IsIsolatingBackgroundTick:
		return &r.IsIsolatingBackgroundTick
	case RunningNormallyBackgroundTick:
		return &r.RunningNormallyBackgroundTick
	case LowPowerBackgroundTick:
		return &r.LowPowerBackgroundTick
	case CellularBackgroundTick:
		return &r.CellularBackgroundTick
	case WifiBackgroundTick:
		return &r.WifiBackgroundTick
	case TotalBackgroundTasks:
		return &r.TotalBackgroundTasks
	}
	return nil
}

func truncateBytes(v float64) int64 {
	return int64(math.Trunc(v))
}
