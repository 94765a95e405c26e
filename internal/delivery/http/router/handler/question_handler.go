package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"board/internal/delivery/http/middleware"
	"board/internal/delivery/http/response"
	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// QuestionHandler holds dependencies for question-related handlers.
type QuestionHandler struct {
	questionUsecase usecase.QuestionUsecase
	logger          *slog.Logger
}

// NewQuestionHandler is the constructor for QuestionHandler, injected by Fx.
func NewQuestionHandler(questionUsecase usecase.QuestionUsecase, logger *slog.Logger) *QuestionHandler {
	return &QuestionHandler{questionUsecase: questionUsecase, logger: logger}
}

// --- Request / response DTOs ---

type createQuestionRequest struct {
	Title            string `json:"title" validate:"required,max=200"`
	Topic            string `json:"topic" validate:"required,max=50"`
	Description      string `json:"description" validate:"required"`
	Requirements     string `json:"requirements" validate:"omitempty,json"`
	ValueExpectation string `json:"value_expectation"`
	Difficulty       string `json:"difficulty" validate:"required,oneof=easy medium hard"`
}

type updateQuestionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending active solved"`
}

type questionView struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Topic            string    `json:"topic"`
	Description      string    `json:"description"`
	Requirements     string    `json:"requirements"`
	ValueExpectation string    `json:"value_expectation,omitempty"`
	Difficulty       string    `json:"difficulty"`
	CreatedBy        uuid.UUID `json:"created_by"`
	Status           string    `json:"status"`
	Views            int64     `json:"views"`
	Votes            int64     `json:"votes"`
	Participants     int64     `json:"participants"`
	Heat             int64     `json:"heat"`
	CreatedAt        time.Time `json:"created_at"`
}

type voteView struct {
	AlreadyVoted bool  `json:"already_voted"`
	VoteCount    int64 `json:"vote_count"`
}

func toQuestionView(output *usecase.QuestionOutput) questionView {
	q := output.Question

	return questionView{
		ID:               q.ID,
		Title:            q.Title,
		Topic:            q.Topic,
		Description:      q.Description,
		Requirements:     q.Requirements,
		ValueExpectation: q.ValueExpectation,
		Difficulty:       q.Difficulty.String(),
		CreatedBy:        q.CreatedBy,
		Status:           q.Status.String(),
		Views:            q.Views,
		Votes:            q.Votes,
		Participants:     q.Participants,
		Heat:             output.Heat,
		CreatedAt:        q.CreatedAt,
	}
}

// --- Handlers ---

// Create posts a new question.
func (h *QuestionHandler) Create(c echo.Context) error {
	var req createQuestionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid question input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.questionUsecase.Create(c.Request().Context(), middleware.GetIdentity(c), usecase.CreateQuestionInput{
		Title:            req.Title,
		Topic:            req.Topic,
		Description:      req.Description,
		Requirements:     req.Requirements,
		ValueExpectation: req.ValueExpectation,
		Difficulty:       entity.Difficulty(req.Difficulty),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toQuestionView(output), "Question created")
}

// Get retrieves one question (and counts the view).
func (h *QuestionHandler) Get(c echo.Context) error {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		return err
	}

	output, err := h.questionUsecase.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toQuestionView(output), "")
}

// List retrieves questions ordered by heat.
func (h *QuestionHandler) List(c echo.Context) error {
	limit, offset := parsePagination(c, 20)
	status := entity.QuestionStatus(c.QueryParam("status"))

	outputs, err := h.questionUsecase.List(c.Request().Context(), status, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]questionView, 0, len(outputs))
	for _, output := range outputs {
		views = append(views, toQuestionView(output))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// Vote records the caller's vote on a question.
func (h *QuestionHandler) Vote(c echo.Context) error {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		return err
	}

	output, err := h.questionUsecase.Vote(c.Request().Context(), middleware.GetIdentity(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Vote recorded"
	if output.AlreadyVoted {
		message = "Already voted"
	}

	return response.Success(c, http.StatusOK, voteView{AlreadyVoted: output.AlreadyVoted, VoteCount: output.VoteCount}, message)
}

// UpdateStatus advances the question lifecycle.
func (h *QuestionHandler) UpdateStatus(c echo.Context) error {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		return err
	}

	var req updateQuestionStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	question, err := h.questionUsecase.UpdateStatus(c.Request().Context(), middleware.GetIdentity(c), id, entity.QuestionStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toQuestionView(&usecase.QuestionOutput{Question: question, Heat: question.Heat()}), "Status updated")
}

// parseInt64Param reads a numeric path parameter.
func parseInt64Param(c echo.Context, name string) (int64, error) {
	value, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || value <= 0 {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name + " parameter")
	}

	return value, nil
}
