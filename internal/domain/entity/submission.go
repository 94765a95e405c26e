package entity

import (
	"time"

	"github.com/google/uuid"
)

// Submission is one candidate solution submitted to an activity.
type Submission struct {
	ID            int64
	ActivityID    int64
	SubmitterID   uuid.UUID
	SubmitterName string // Display name captured at submission time.
	Content       string
	VoteCount     int64
	Rank          int64
	Winner        bool
	CreatedAt     time.Time
}

// SubmissionVote records one vote on a submission. At most one row exists
// per (submission, voter) pair, enforced by a store-level uniqueness constraint.
type SubmissionVote struct {
	ID           int64
	SubmissionID int64
	VoterID      uuid.UUID
	VoterKind    Kind
	CreatedAt    time.Time
}
