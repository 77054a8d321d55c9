package analytics

// Metric is one of the usage events counted over an analytics window. The
// set is closed: every value maps to exactly one field of MetricsRecord, and
// the mapping is checked by tests so an addition here cannot silently drop
// counts on the floor.
type Metric string

const (
	CompletedOnboarding                           Metric = "completedOnboarding"
	CheckedIn                                     Metric = "checkedIn"
	DeletedLastCheckIn                            Metric = "deletedLastCheckIn"
	CompletedQuestionnaireAndStartedIsolation     Metric = "completedQuestionnaireAndStartedIsolation"
	CompletedQuestionnaireButDidNotStartIsolation Metric = "completedQuestionnaireButDidNotStartIsolation"
	ReceivedPositiveTestResult                    Metric = "receivedPositiveTestResult"
	ReceivedNegativeTestResult                    Metric = "receivedNegativeTestResult"
	ReceivedVoidTestResult                        Metric = "receivedVoidTestResult"
	IsIsolatingBackgroundTick                     Metric = "isIsolatingBackgroundTick"
	RunningNormallyBackgroundTick                 Metric = "runningNormallyBackgroundTick"
	LowPowerBackgroundTick                        Metric = "lowPowerBackgroundTick"
	CellularBackgroundTick                        Metric = "cellularBackgroundTick"
	WifiBackgroundTick                            Metric = "wifiBackgroundTick"
	TotalBackgroundTasks                          Metric = "totalBackgroundTasks"
)

// Metrics returns every metric in declaration order. The mapper iterates
// over this slice; the order has no effect on the resulting payload.
func Metrics() []Metric {
	return []Metric{
		CompletedOnboarding,
		CheckedIn,
		DeletedLastCheckIn,
		CompletedQuestionnaireAndStartedIsolation,
		CompletedQuestionnaireButDidNotStartIsolation,
		ReceivedPositiveTestResult,
		ReceivedNegativeTestResult,
		ReceivedVoidTestResult,
		IsIsolatingBackgroundTick,
		RunningNormallyBackgroundTick,
		LowPowerBackgroundTick,
		CellularBackgroundTick,
		WifiBackgroundTick,
		TotalBackgroundTasks,
	}
}

// Signpost names the OS-level event a metric is counted from. The collection
// subsystem records signposts during app execution and hands the totals to
// this module; the taxonomy here is read-only on our side.
type Signpost struct {
	Category string
	Name     string
}

const (
	categoryInteraction    = "interaction"
	categoryBackgroundTask = "backgroundTask"
)

var signposts = map[Metric]Signpost{
	CompletedOnboarding:                           {categoryInteraction, "completedOnboarding"},
	CheckedIn:                                     {categoryInteraction, "checkedIn"},
	DeletedLastCheckIn:                            {categoryInteraction, "deletedLastCheckIn"},
	CompletedQuestionnaireAndStartedIsolation:     {categoryInteraction, "completedQuestionnaireAndStartedIsolation"},
	CompletedQuestionnaireButDidNotStartIsolation: {categoryInteraction, "completedQuestionnaireButDidNotStartIsolation"},
	ReceivedPositiveTestResult:                    {categoryInteraction, "receivedPositiveTestResult"},
	ReceivedNegativeTestResult:                    {categoryInteraction, "receivedNegativeTestResult"},
	ReceivedVoidTestResult:                        {categoryInteraction, "receivedVoidTestResult"},
	IsIsolatingBackgroundTick:                     {categoryBackgroundTask, "isIsolatingTick"},
	RunningNormallyBackgroundTick:                 {categoryBackgroundTask, "runningNormallyTick"},
	LowPowerBackgroundTick:                        {categoryBackgroundTask, "lowPowerTick"},
	CellularBackgroundTick:                        {categoryBackgroundTask, "cellularTick"},
	WifiBackgroundTick:                            {categoryBackgroundTask, "wifiTick"},
	TotalBackgroundTasks:                          {categoryBackgroundTask, "taskCompleted"},
}

// SignpostFor returns the OS event a metric is counted from.
func SignpostFor(m Metric) (Signpost, bool) {
	s, ok := signposts[m]
	return s, ok
}
