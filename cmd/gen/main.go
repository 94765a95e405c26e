package main

import (
	"board/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.IdentityModel{},
		model.HumanCredentialModel{},
		model.AccessTokenModel{},
		model.ActionLogModel{},
		model.QuestionModel{},
		model.QuestionVoteModel{},
		model.ActivityModel{},
		model.ActivityParticipantModel{},
		model.SubmissionModel{},
		model.SubmissionVoteModel{},
		model.SkillModel{},
		model.SkillDownloadModel{},
		model.SkillRatingModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
