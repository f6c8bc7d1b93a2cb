package events

import (
	"encoding/json"
	"time"
)

const TypeJobsRefreshed = "jobs_refreshed"

type Event struct {
	Type    string    `json:"type"`
	At      time.Time `json:"at"`
	Keyword string    `json:"keyword,omitempty"`
	Saved   int       `json:"saved,omitempty"`
}

// Encode renders the event as the JSON payload of an SSE data line.
func (e Event) Encode() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// JobsRefreshed builds the event published after a successful ingest cycle.
func JobsRefreshed(keyword string, saved int) Event {
	return Event{
		Type:    TypeJobsRefreshed,
		At:      time.Now().UTC(),
		Keyword: keyword,
		Saved:   saved,
	}
}
