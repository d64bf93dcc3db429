package dto

// HostMetricsResponse mirrors the dashboard's HostMetrics type. The usage
// breakdowns are part of the contract but are always empty.
type HostMetricsResponse struct {
	HostID            string                 `json:"hostId"`
	Period            string                 `json:"period"`
	TotalTime         float64                `json:"totalTime"`
	ActiveTime        float64                `json:"activeTime"`
	IdleTime          float64                `json:"idleTime"`
	ProductiveTime    float64                `json:"productiveTime"`
	NeutralTime       float64                `json:"neutralTime"`
	DistractingTime   float64                `json:"distractingTime"`
	AFKTime           float64                `json:"afkTime"`
	WorkingHours      float64                `json:"workingHours"`
	Overtime          float64                `json:"overtime"`
	ProductivityScore float64                `json:"productivityScore"`
	Applications      []ApplicationUsage     `json:"applications"`
	Websites          []WebsiteUsage         `json:"websites"`
	ActivityHeatmap   []ActivityHeatmapEntry `json:"activityHeatmap"`
	PeakHours         []int                  `json:"peakHours"`
	DowntimeEvents    []DowntimeEvent        `json:"downtimeEvents"`
}

type ApplicationUsage struct {
	Name               string  `json:"name"`
	Time               float64 `json:"time"`
	Category           string  `json:"category"`
	Sessions           int     `json:"sessions"`
	AvgSessionDuration float64 `json:"avgSessionDuration"`
}

type WebsiteUsage struct {
	Domain           string  `json:"domain"`
	URL              string  `json:"url"`
	Time             float64 `json:"time"`
	Category         string  `json:"category"`
	Visits           int     `json:"visits"`
	AvgVisitDuration float64 `json:"avgVisitDuration"`
}

type ActivityHeatmapEntry struct {
	Hour      int     `json:"hour"`
	Day       int     `json:"day"`
	Intensity float64 `json:"intensity"`
	Activity  float64 `json:"activity"`
}

type DowntimeEvent struct {
	ID        string  `json:"id"`
	HostID    string  `json:"hostId"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Duration  float64 `json:"duration"`
	Type      string  `json:"type"`
	Reason    string  `json:"reason,omitempty"`
}
