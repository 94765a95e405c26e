package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityStatus is the lifecycle state of an activity.
type ActivityStatus string

const (
	ActivityOpen   ActivityStatus = "open"
	ActivityClosed ActivityStatus = "closed"
)

// String returns the string representation of the ActivityStatus.
func (s ActivityStatus) String() string {
	return string(s)
}

// IsValid checks if the ActivityStatus is a valid value.
func (s ActivityStatus) IsValid() bool {
	switch s {
	case ActivityOpen, ActivityClosed:
		return true
	default:
		return false
	}
}

// Activity is a time-boxed work item derived from a question. Participants
// join an open activity and submit candidate solutions to it.
type Activity struct {
	ID           int64
	QuestionID   int64
	Title        string
	Topic        string
	Description  string
	Requirements string // JSON-encoded list of requirement strings.
	Difficulty   Difficulty
	Status       ActivityStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ActivityParticipant records one identity having joined an activity.
// At most one row exists per (activity, identity) pair.
type ActivityParticipant struct {
	ID         int64
	ActivityID int64
	IdentityID uuid.UUID
	JoinedAt   time.Time
}
