// Package conversation implements the guided voice dialogue that walks a
// painter through one estimate: project name, room, measurements, a task
// collection loop and a final confirmation. The dialogue only moves
// forward; correcting an earlier answer means starting a new conversation.
package conversation

import (
	"time"

	"maleri_backend/internal/estimate"
)

// Step identifies the dialogue state the conversation is waiting in.
type Step string

const (
	StepAwaitingProjectName  Step = "awaiting_project_name"
	StepAwaitingRoomName     Step = "awaiting_room_name"
	StepAwaitingMeasurements Step = "awaiting_measurements"
	StepCollectingTasks      Step = "collecting_tasks"
	StepAwaitingConfirmation Step = "awaiting_confirmation"
	StepDone                 Step = "done"
)

// TranscriptEntry is one exchange line in the conversation transcript.
type TranscriptEntry struct {
	Role string    `json:"role"` // "user" or "assistant"
	Text string    `json:"text"`
	Step Step      `json:"step"`
	At   time.Time `json:"at"`
}

// State is the full serializable conversation state. It is persisted
// between turns by the session store and mutated only by the Machine;
// callers must serialize access per conversation.
type State struct {
	ID          string                `json:"id"`
	Step        Step                  `json:"step"`
	ProjectName string                `json:"projectName"`
	RoomName    string                `json:"roomName"`
	Geometry    estimate.RoomGeometry `json:"geometry"`

	// Utterances holds the raw task phrases that produced at least one
	// line item, in spoken order.
	Utterances []string            `json:"utterances"`
	LineItems  []estimate.LineItem `json:"lineItems"`
	Errors     []string            `json:"errors"`

	Transcript []TranscriptEntry `json:"transcript"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewState creates a fresh conversation waiting for the project name.
func NewState(id string) *State {
	now := time.Now().UTC()
	return &State{
		ID:        id,
		Step:      StepAwaitingProjectName,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *State) record(role, text string) TranscriptEntry {
	entry := TranscriptEntry{
		Role: role,
		Text: text,
		Step: s.Step,
		At:   time.Now().UTC(),
	}
	s.Transcript = append(s.Transcript, entry)
	s.UpdatedAt = entry.At
	return entry
}

// Summary is the condensed view of a finished or in-flight conversation.
type Summary struct {
	ProjectName string                `json:"projectName"`
	RoomName    string                `json:"roomName"`
	Geometry    estimate.RoomGeometry `json:"geometry"`
	Tasks       []string              `json:"tasks"`
	LineItems   []estimate.LineItem   `json:"lineItems"`
	Errors      []string              `json:"errors"`
	Totals      estimate.Totals       `json:"totals"`
	Step        Step                  `json:"step"`
}
