package impl

import (
	"io"
	"log/slog"
	"time"

	"board/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
			TokenTTL:   24 * time.Hour,
		},
		Points: &config.PointsConfig{
			Registration:   100,
			DailyLogin:     10,
			QuestionEasy:   -30,
			QuestionMedium: -50,
			QuestionHard:   -100,
			SubmitSolution: 30,
		},
		Quota: &config.QuotaConfig{
			MaxQuestionsPerDay: 3,
		},
	}
}
