package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const EventAnalysisCompleted = "analysis_completed"

type AnalysisCompletedEvent struct {
	Type       string `json:"type"`
	AnalysisID string `json:"analysis_id,omitempty"`
	Filename   string `json:"filename,omitempty"`
	Score      int    `json:"score"`
	Timestamp  string `json:"timestamp"`
}

// Notifier publishes analysis events to every connected client.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) AnalysisCompleted(id uuid.UUID, filename string, score int) {
	if n == nil || n.hub == nil {
		return
	}

	evt := AnalysisCompletedEvent{
		Type:      EventAnalysisCompleted,
		Filename:  filename,
		Score:     score,
		Timestamp: n.now().UTC().Format(time.RFC3339),
	}
	if id != uuid.Nil {
		evt.AnalysisID = id.String()
	}

	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
