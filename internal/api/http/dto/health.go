package dto

type HealthResponse struct {
	Status string `json:"status"`
}

type UpstreamHealthResponse struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Upstream  UpstreamStatus `json:"upstream"`
}

type UpstreamStatus struct {
	Hostname string `json:"hostname"`
	Version  string `json:"version"`
	Testing  bool   `json:"testing"`
}
