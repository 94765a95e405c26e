package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"quota": map[string]any{
			"maxQuestionsPerDay": 3,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "QUOTA_MAXQUESTIONSPERDAY", want: "quota.maxQuestionsPerDay"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestPointsConfigQuestionCost(t *testing.T) {
	points := &PointsConfig{QuestionEasy: -30, QuestionMedium: -50, QuestionHard: -100}

	tests := []struct {
		difficulty string
		want       int64
	}{
		{difficulty: "easy", want: -30},
		{difficulty: "medium", want: -50},
		{difficulty: "hard", want: -100},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			if got := points.QuestionCost(tt.difficulty); got != tt.want {
				t.Fatalf("QuestionCost(%q) = %d, want %d", tt.difficulty, got, tt.want)
			}
		})
	}
}
