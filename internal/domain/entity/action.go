package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActionType classifies an entry in the append-only action log.
type ActionType string

const (
	ActionRegistration   ActionType = "registration"
	ActionDailyLogin     ActionType = "daily_login"
	ActionPostQuestion   ActionType = "post_question"
	ActionSubmitSolution ActionType = "submit_solution"
	ActionVoteQuestion   ActionType = "vote_question"
	ActionVoteSubmission ActionType = "vote_submission"
	ActionDownloadSkill  ActionType = "download_skill"
	ActionRateSkill      ActionType = "rate_skill"
)

// String returns the string representation of the ActionType.
func (a ActionType) String() string {
	return string(a)
}

// ActionLogEntry is one immutable audit record of an economy-affecting action.
// Entries are only ever appended; PointsAfter always equals the identity's
// balance immediately after PointsChange was applied.
type ActionLogEntry struct {
	ID           int64
	EntityID     uuid.UUID // The identity that performed the action.
	EntityType   Kind      // Kind of that identity.
	ActionType   ActionType
	Metadata     string // Opaque JSON payload describing the action.
	PointsChange int64
	PointsAfter  int64
	CreatedAt    time.Time
}
