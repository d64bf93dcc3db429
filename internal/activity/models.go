package activity

import "time"

const (
	EventTypeApp = "app"

	// Hosts are reported with fixed agent metadata; the bucket listing
	// carries neither a watcher version nor a timezone.
	HostVersion  = "0.12.0"
	HostTimezone = "UTC"
	UnknownOS    = "unknown"

	WorkingHoursSeconds = 8 * 3600
)

type Host struct {
	ID       string
	Name     string
	Hostname string
	Platform string
	LastSeen time.Time
	IsOnline bool
	Version  string
	Timezone string
}

type Metrics struct {
	HostID            string
	Period            string
	TotalTime         float64
	ActiveTime        float64
	IdleTime          float64
	ProductiveTime    float64
	NeutralTime       float64
	DistractingTime   float64
	AFKTime           float64
	WorkingHours      float64
	Overtime          float64
	ProductivityScore float64
}

type Event struct {
	ID        string
	HostID    string
	Timestamp time.Time
	Duration  float64
	Type      string
	App       string
	Title     string
	Category  Category
}

// EventQuery holds the raw query values of an events listing.
// Empty Start/End select the default window ending now.
type EventQuery struct {
	HostID string
	Start  string
	End    string
	Page   int
	Limit  int
}

type EventPage struct {
	Events     []Event
	Pagination Pagination
}
