package ws

import (
	"encoding/json"
	"time"
)

type SearchCompletedEvent struct {
	Type      string `json:"type"`
	Found     int    `json:"found"`
	Inserted  int    `json:"inserted"`
	Timestamp string `json:"timestamp"`
}

type JobsScoredEvent struct {
	Type      string `json:"type"`
	Scored    int    `json:"scored"`
	Timestamp string `json:"timestamp"`
}

// EventNotifier broadcasts pipeline events to connected dashboard clients.
type EventNotifier struct {
	hub *Hub
}

func NewEventNotifier(hub *Hub) *EventNotifier {
	return &EventNotifier{hub: hub}
}

func (n *EventNotifier) SearchCompleted(found, inserted int) {
	if n == nil || n.hub == nil {
		return
	}
	n.publish(SearchCompletedEvent{
		Type:      "search_completed",
		Found:     found,
		Inserted:  inserted,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (n *EventNotifier) JobsScored(scored int) {
	if n == nil || n.hub == nil {
		return
	}
	n.publish(JobsScoredEvent{
		Type:      "jobs_scored",
		Scored:    scored,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (n *EventNotifier) publish(evt any) {
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
