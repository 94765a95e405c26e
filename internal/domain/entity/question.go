package entity

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty grades a question and drives the points cost of posting it.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// String returns the string representation of the Difficulty.
func (d Difficulty) String() string {
	return string(d)
}

// IsValid checks if the Difficulty is a valid value.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// QuestionStatus is the lifecycle state of a question.
// Transitions move strictly pending -> active -> solved; no state is skipped
// and no transition is reversible.
type QuestionStatus string

const (
	QuestionPending QuestionStatus = "pending"
	QuestionActive  QuestionStatus = "active"
	QuestionSolved  QuestionStatus = "solved"
)

// String returns the string representation of the QuestionStatus.
func (s QuestionStatus) String() string {
	return string(s)
}

// IsValid checks if the QuestionStatus is a valid value.
func (s QuestionStatus) IsValid() bool {
	switch s {
	case QuestionPending, QuestionActive, QuestionSolved:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status may move to next.
func (s QuestionStatus) CanTransitionTo(next QuestionStatus) bool {
	switch s {
	case QuestionPending:
		return next == QuestionActive
	case QuestionActive:
		return next == QuestionSolved
	default:
		return false
	}
}

// Question is a problem posted by a participant, from which time-boxed
// activities are derived.
type Question struct {
	ID               int64
	Title            string
	Topic            string // Problem category, e.g. "code_creation", "data_processing".
	Description      string
	Requirements     string // JSON-encoded list of requirement strings.
	ValueExpectation string
	Difficulty       Difficulty
	CreatedBy        uuid.UUID
	Status           QuestionStatus
	Views            int64
	Votes            int64
	Participants     int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Heat weights for the derived popularity score.
const (
	heatViewWeight        = 1
	heatVoteWeight        = 5
	heatParticipantWeight = 10
)

// Heat returns the derived popularity score. Display only; never persisted
// as a source of truth.
func (q *Question) Heat() int64 {
	return q.Views*heatViewWeight + q.Votes*heatVoteWeight + q.Participants*heatParticipantWeight
}

// QuestionVote records one vote on a question. At most one row exists per
// (question, voter) pair, enforced by a store-level uniqueness constraint.
type QuestionVote struct {
	ID         int64
	QuestionID int64
	VoterID    uuid.UUID
	VoterKind  Kind
	CreatedAt  time.Time
}
