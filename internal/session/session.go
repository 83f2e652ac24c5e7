// Package session keeps per-user interaction state in memory.
package session

import (
	"slices"
	"sync"

	"github.com/BerylCAtieno/docgen-agent/internal/models"
)

// Flow names one of the independent document flows of a session.
type Flow string

const (
	FlowResume      Flow = "resume"
	FlowCoverLetter Flow = "cover-letter"
	FlowMealPlan    Flow = "meal-plan"
)

// Flows lists every flow in display order.
var Flows = []Flow{FlowResume, FlowCoverLetter, FlowMealPlan}

func (f Flow) Valid() bool {
	return slices.Contains(Flows, f)
}

// State is the position of a flow in its step sequence.
type State string

const (
	StateIdle              State = "idle"
	StateSkillsExtracted   State = "skills-extracted"
	StateDocumentGenerated State = "document-generated"
)

// FlowState is everything a flow remembers between user actions.
type FlowState struct {
	State    State             `json:"state"`
	Job      models.JobContext `json:"job"`
	Skills   []string          `json:"skills"`
	Selected []string          `json:"selectedSkills"`
	Document string            `json:"document,omitempty"`
}

func (fs FlowState) clone() FlowState {
	fs.Skills = slices.Clone(fs.Skills)
	fs.Selected = slices.Clone(fs.Selected)
	return fs
}

// Session is one user's state. Flow and Set do not lock; callers hold Lock
// for the whole action so one session runs one action at a time.
type Session struct {
	ID string

	mu    sync.Mutex
	flows map[Flow]FlowState
}

func newSession(id string) *Session {
	return &Session{ID: id, flows: make(map[Flow]FlowState)}
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Flow returns a copy of the flow's state; unknown flows read as idle.
func (s *Session) Flow(f Flow) FlowState {
	fs, ok := s.flows[f]
	if !ok {
		return FlowState{State: StateIdle}
	}
	return fs.clone()
}

// Set replaces the flow's state.
func (s *Session) Set(f Flow, fs FlowState) {
	s.flows[f] = fs.clone()
}

// Snapshot copies every flow's state, idle flows included.
func (s *Session) Snapshot() map[Flow]FlowState {
	out := make(map[Flow]FlowState, len(Flows))
	for _, f := range Flows {
		out[f] = s.Flow(f)
	}
	return out
}
