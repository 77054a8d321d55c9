package analytics

import "github.com/amberhealth/telemetry/internal/timeutil"

type (
	// SubmissionPayload is the canonical document posted to the ingest
	// endpoint. Field order here is the field order on the wire.
	SubmissionPayload struct {
		IncludesMultipleApplicationVersions bool          `json:"includesMultipleApplicationVersions"`
		AnalyticsWindow                     Window        `json:"analyticsWindow"`
		Metadata                            Metadata      `json:"metadata"`
		Metrics                             MetricsRecord `json:"metrics"`
	}

	// Window is the start/end pair the metrics were aggregated over.
	Window struct {
		StartDate timeutil.Time `json:"startDate"`
		EndDate   timeutil.Time `json:"endDate"`
	}

	// Metadata describes the submitting device and app. Missing optional
	// values are empty strings, never omitted keys.
	Metadata struct {
		PostalDistrict           string `json:"postalDistrict"`
		DeviceModel              string `json:"deviceModel"`
		OperatingSystemVersion   string `json:"operatingSystemVersion"`
		LatestApplicationVersion string `json:"latestApplicationVersion"`
	}

	// MetricsRecord is the flat counter record: network byte totals followed
	// by one field per Metric. The cumulative totals are always derived from
	// the per-interface counters, never supplied directly.
	MetricsRecord struct {
		CumulativeDownloadBytes         int64 `json:"cumulativeDownloadBytes"`
		CumulativeUploadBytes           int64 `json:"cumulativeUploadBytes"`
		CumulativeCellularDownloadBytes int64 `json:"cumulativeCellularDownloadBytes"`
		CumulativeCellularUploadBytes   int64 `json:"cumulativeCellularUploadBytes"`
		CumulativeWifiDownloadBytes     int64 `json:"cumulativeWifiDownloadBytes"`
		CumulativeWifiUploadBytes       int64 `json:"cumulativeWifiUploadBytes"`

		CompletedOnboarding                           int `json:"completedOnboarding"`
		CheckedIn                                     int `json:"checkedIn"`
		DeletedLastCheckIn                            int `json:"deletedLastCheckIn"`
		CompletedQuestionnaireAndStartedIsolation     int `json:"completedQuestionnaireAndStartedIsolation"`
		CompletedQuestionnaireButDidNotStartIsolation int `json:"completedQuestionnaireButDidNotStartIsolation"`
		ReceivedPositiveTestResult                    int `json:"receivedPositiveTestResult"`
		ReceivedNegativeTestResult                    int `json:"receivedNegativeTestResult"`
		ReceivedVoidTestResult                        int `json:"receivedVoidTestResult"`
		IsIsolatingBackgroundTick                     int `json:"isIsolatingBackgroundTick"`
		RunningNormallyBackgroundTick                 int `json:"runningNormallyBackgroundTick"`
		LowPowerBackgroundTick                        int `json:"lowPowerBackgroundTick"`
		CellularBackgroundTick                        int `json:"cellularBackgroundTick"`
		WifiBackgroundTick                            int `json:"wifiBackgroundTick"`
		TotalBackgroundTasks                          int `json:"totalBackgroundTasks"`
	}
)
