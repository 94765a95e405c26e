package handler

import (
	"log/slog"
	"net/http"
	"time"

	"board/internal/delivery/http/middleware"
	"board/internal/delivery/http/response"
	"board/internal/domain/entity"
	"board/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ActivityHandler holds dependencies for activity-related handlers.
type ActivityHandler struct {
	activityUsecase usecase.ActivityUsecase
	logger          *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler, injected by Fx.
func NewActivityHandler(activityUsecase usecase.ActivityUsecase, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{activityUsecase: activityUsecase, logger: logger}
}

// --- Request / response DTOs ---

type createActivityRequest struct {
	QuestionID  int64  `json:"question_id" validate:"required,gt=0"`
	Title       string `json:"title" validate:"omitempty,max=200"`
	Description string `json:"description"`
}

type createSubmissionRequest struct {
	Content string `json:"content" validate:"required"`
}

type updateActivityStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open closed"`
}

type activityView struct {
	ID           int64     `json:"id"`
	QuestionID   int64     `json:"question_id"`
	Title        string    `json:"title"`
	Topic        string    `json:"topic"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Difficulty   string    `json:"difficulty"`
	Status       string    `json:"status"`
	Participants int64     `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
}

type joinView struct {
	AlreadyJoined bool  `json:"already_joined"`
	Participants  int64 `json:"participants"`
}

type submissionView struct {
	ID             int64     `json:"id"`
	ActivityID     int64     `json:"activity_id"`
	SubmitterID    uuid.UUID `json:"submitter_id"`
	SubmitterName  string    `json:"submitter_name"`
	Content        string    `json:"content"`
	VoteCount      int64     `json:"vote_count"`
	Rank           int64     `json:"rank,omitempty"`
	Winner         bool      `json:"winner"`
	PointsAwarded  int64     `json:"points_awarded,omitempty"`
	CurrentBalance int64     `json:"current_balance,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func toActivityView(output *usecase.ActivityOutput) activityView {
	a := output.Activity

	return activityView{
		ID:           a.ID,
		QuestionID:   a.QuestionID,
		Title:        a.Title,
		Topic:        a.Topic,
		Description:  a.Description,
		Requirements: a.Requirements,
		Difficulty:   a.Difficulty.String(),
		Status:       a.Status.String(),
		Participants: output.Participants,
		CreatedAt:    a.CreatedAt,
	}
}

func toSubmissionView(s *entity.Submission) submissionView {
	return submissionView{
		ID:            s.ID,
		ActivityID:    s.ActivityID,
		SubmitterID:   s.SubmitterID,
		SubmitterName: s.SubmitterName,
		Content:       s.Content,
		VoteCount:     s.VoteCount,
		Rank:          s.Rank,
		Winner:        s.Winner,
		CreatedAt:     s.CreatedAt,
	}
}

// --- Handlers ---

// Create derives a new activity from a question.
func (h *ActivityHandler) Create(c echo.Context) error {
	var req createActivityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.activityUsecase.Create(c.Request().Context(), middleware.GetIdentity(c), usecase.CreateActivityInput{
		QuestionID:  req.QuestionID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toActivityView(output), "Activity created")
}

// Get retrieves one activity.
func (h *ActivityHandler) Get(c echo.Context) error {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		return err
	}

	output, err := h.activityUsecase.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toActivityView(output), "")
}

// List retrieves activities, optionally filtered by status.
func (h *ActivityHandler) List(c echo.Context) error {
	limit, offset := parsePagination(c, 20)
	status := entity.ActivityStatus(c.QueryParam("status"))

	outputs, err := h.activityUsecase.List(c.Request().Context(), status, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]activityView, 0, len(outputs))
	for _, output := range outputs {
		views = append(views, toActivityView(output))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// Join registers the caller as a participant.
func (h *ActivityHandler) Join(c echo.Context) error {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		return err
	}

	output, err := h.activityUsecase.Join(c.Request().Context(), middleware.GetIdentity(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Joined activity"
	if output.AlreadyJoined {
		message = "Already joined"
	}

	return response.Success(c, http.StatusOK, joinView{AlreadyJoined: output.AlreadyJoined, Participants: output.Participants}, message)
}

// Submit records a candidate solution.
func (h *ActivityHandler) Submit(c echo.Context) error {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		return err
	}

	var req createSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid submission input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.activityUsecase.Submit(c.Request().Context(), middleware.GetIdentity(c), usecase.CreateSubmissionInput{
		ActivityID: id,
		Content:    req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	view := toSubmissionView(output.Submission)
	view.PointsAwarded = output.PointsAwarded
	view.CurrentBalance = output.CurrentBalance

	return response.Success(c, http.StatusCreated, view, "Submission recorded")
}

// ListSubmissions retrieves all submissions for an activity.
func (h *ActivityHandler) ListSubmissions(c echo.Context) error {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		return err
	}

	submissions, err := h.activityUsecase.ListSubmissions(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]submissionView, 0, len(submissions))
	for _, submission := range submissions {
		views = append(views, toSubmissionView(submission))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// VoteSubmission records the caller's vote on a submission.
func (h *ActivityHandler) VoteSubmission(c echo.Context) error {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		return err
	}

	output, err := h.activityUsecase.VoteSubmission(c.Request().Context(), middleware.GetIdentity(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Vote recorded"
	if output.AlreadyVoted {
		message = "Already voted"
	}

	return response.Success(c, http.StatusOK, voteView{AlreadyVoted: output.AlreadyVoted, VoteCount: output.VoteCount}, message)
}

// UpdateStatus moves an activity between lifecycle states.
func (h *ActivityHandler) UpdateStatus(c echo.Context) error {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		return err
	}

	var req updateActivityStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	activity, err := h.activityUsecase.UpdateStatus(c.Request().Context(), middleware.GetIdentity(c), id, entity.ActivityStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toActivityView(&usecase.ActivityOutput{Activity: activity}), "Status updated")
}
