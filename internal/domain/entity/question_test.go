package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    QuestionStatus
		to      QuestionStatus
		allowed bool
	}{
		{"pending to active", QuestionPending, QuestionActive, true},
		{"active to solved", QuestionActive, QuestionSolved, true},
		{"pending skips to solved", QuestionPending, QuestionSolved, false},
		{"active back to pending", QuestionActive, QuestionPending, false},
		{"solved is terminal", QuestionSolved, QuestionActive, false},
		{"solved back to pending", QuestionSolved, QuestionPending, false},
		{"pending to itself", QuestionPending, QuestionPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestQuestionStatus_IsValid(t *testing.T) {
	assert.True(t, QuestionPending.IsValid())
	assert.True(t, QuestionActive.IsValid())
	assert.True(t, QuestionSolved.IsValid())
	assert.False(t, QuestionStatus("archived").IsValid())
	assert.False(t, QuestionStatus("").IsValid())
}

func TestQuestion_Heat(t *testing.T) {
	question := &Question{Views: 7, Votes: 3, Participants: 2}

	// 7*1 + 3*5 + 2*10
	assert.Equal(t, int64(42), question.Heat())
}

func TestQuestion_Heat_Zero(t *testing.T) {
	assert.Zero(t, (&Question{}).Heat())
}

func TestDifficulty_IsValid(t *testing.T) {
	assert.True(t, DifficultyEasy.IsValid())
	assert.True(t, DifficultyMedium.IsValid())
	assert.True(t, DifficultyHard.IsValid())
	assert.False(t, Difficulty("legendary").IsValid())
}
