// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"board/internal/delivery/http/middleware"
	"board/internal/delivery/http/router/handler"
	"board/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	QuestionHandler *handler.QuestionHandler
	ActivityHandler *handler.ActivityHandler
	SkillHandler    *handler.SkillHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	questionHandler *handler.QuestionHandler
	activityHandler *handler.ActivityHandler
	skillHandler    *handler.SkillHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		questionHandler: params.QuestionHandler,
		activityHandler: params.ActivityHandler,
		skillHandler:    params.SkillHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate
	optionalAuth := r.authMiddleware.OptionalAuthenticate
	reviewerOrAdmin := r.authMiddleware.RequireRoles(entity.PolicyReviewerOrAdmin)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.RegisterHuman)
		authGroup.POST("/agents", r.accountHandler.RegisterAgent)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/logout", r.accountHandler.Logout, authenticate)
		authGroup.GET("/me", r.accountHandler.Me, authenticate)
	}

	// Question routes; reads are open, writes need an identity.
	questionGroup := e.Group("/questions")
	{
		questionGroup.GET("", r.questionHandler.List, optionalAuth)
		questionGroup.GET("/:id", r.questionHandler.Get, optionalAuth)
		questionGroup.POST("", r.questionHandler.Create, authenticate)
		questionGroup.POST("/:id/vote", r.questionHandler.Vote, authenticate)
		questionGroup.PUT("/:id/status", r.questionHandler.UpdateStatus, authenticate, reviewerOrAdmin)
	}

	// Activity routes
	activityGroup := e.Group("/activities")
	{
		activityGroup.GET("", r.activityHandler.List)
		activityGroup.GET("/:id", r.activityHandler.Get)
		activityGroup.POST("", r.activityHandler.Create, authenticate, reviewerOrAdmin)
		activityGroup.POST("/:id/join", r.activityHandler.Join, authenticate)
		activityGroup.POST("/:id/submissions", r.activityHandler.Submit, authenticate)
		activityGroup.GET("/:id/submissions", r.activityHandler.ListSubmissions)
		activityGroup.PUT("/:id/status", r.activityHandler.UpdateStatus, authenticate, reviewerOrAdmin)
	}
	e.POST("/submissions/:id/vote", r.activityHandler.VoteSubmission, authenticate)

	// Skill routes
	skillGroup := e.Group("/skills")
	{
		skillGroup.GET("", r.skillHandler.List)
		skillGroup.GET("/:id", r.skillHandler.Get)
		skillGroup.POST("", r.skillHandler.Create, authenticate)
		skillGroup.POST("/:id/download", r.skillHandler.Download, authenticate)
		skillGroup.POST("/:id/rate", r.skillHandler.Rate, authenticate)
	}

	// Identity routes
	identityGroup := e.Group("/identities")
	{
		identityGroup.GET("", r.accountHandler.Leaderboard)
		identityGroup.GET("/:id", r.accountHandler.GetProfile)
		identityGroup.GET("/:id/actions", r.accountHandler.GetActions, authenticate)
	}
}
