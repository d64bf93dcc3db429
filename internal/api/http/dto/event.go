package dto

type ActivityEventResponse struct {
	ID        string            `json:"id"`
	HostID    string            `json:"hostId"`
	Timestamp string            `json:"timestamp"`
	Duration  float64           `json:"duration"`
	Type      string            `json:"type"`
	Data      ActivityEventData `json:"data"`
}

type ActivityEventData struct {
	App      string `json:"app"`
	Title    string `json:"title"`
	Category string `json:"category"`
}
