package activitywatch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// BucketTypeCurrentWindow is the bucket type written by the window watcher.
const BucketTypeCurrentWindow = "currentwindow"

type Bucket struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Client      string    `json:"client"`
	Hostname    string    `json:"hostname"`
	LastUpdated time.Time `json:"last_updated"`
}

// Buckets is the bucket listing in the order the server returned it.
// The server responds with a JSON object keyed by bucket id, so decoding
// into a map would lose that order.
type Buckets []Bucket

func (b *Buckets) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*b = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected bucket object, got %v", tok)
	}

	result := make(Buckets, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected bucket id, got %v", keyTok)
		}

		var bucket Bucket
		if err := dec.Decode(&bucket); err != nil {
			return fmt.Errorf("decode bucket %q: %w", key, err)
		}
		if bucket.ID == "" {
			bucket.ID = key
		}
		result = append(result, bucket)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*b = result
	return nil
}

// Event is a single heartbeat-merged event. Duration is in seconds.
type Event struct {
	ID        int64          `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Duration  float64        `json:"duration"`
	Data      map[string]any `json:"data"`
}

// DataString returns data[key] when it is a string, otherwise "".
func (e Event) DataString(key string) string {
	if e.Data == nil {
		return ""
	}
	s, _ := e.Data[key].(string)
	return s
}

type ServerInfo struct {
	Hostname string `json:"hostname"`
	Version  string `json:"version"`
	Testing  bool   `json:"testing"`
	DeviceID string `json:"device_id"`
}
