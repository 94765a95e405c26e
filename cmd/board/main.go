package main

import (
	"context"
	"log/slog"
	"os"

	"board/config"
	"board/internal/delivery"
	"board/internal/delivery/http"
	"board/internal/delivery/http/middleware"
	"board/internal/delivery/http/router/handler"
	"board/internal/infra/auth"
	"board/internal/infra/jobs"
	logs "board/internal/infra/log"
	"board/internal/infra/persistence/postgres"
	"board/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			jobs.New,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewIdentityRepository,
			postgres.NewCredentialRepository,
			postgres.NewTokenRepository,
			postgres.NewActionLogRepository,
			postgres.NewQuestionRepository,
			postgres.NewActivityRepository,
			postgres.NewSubmissionRepository,
			postgres.NewSkillRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewSHA256Hasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLedgerService,
			impl.NewAuthService,
			impl.NewAccountService,
			impl.NewQuestionService,
			impl.NewActivityService,
			impl.NewSkillService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewQuestionHandler,
			handler.NewActivityHandler,
			handler.NewSkillHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
