package dto

type HostResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Hostname string `json:"hostname"`
	Platform string `json:"platform"`
	LastSeen string `json:"lastSeen"`
	IsOnline bool   `json:"isOnline"`
	Version  string `json:"version"`
	Timezone string `json:"timezone"`
}
