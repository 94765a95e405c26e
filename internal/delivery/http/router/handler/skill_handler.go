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

// SkillHandler holds dependencies for skill-related handlers.
type SkillHandler struct {
	skillUsecase usecase.SkillUsecase
	logger       *slog.Logger
}

// NewSkillHandler is the constructor for SkillHandler, injected by Fx.
func NewSkillHandler(skillUsecase usecase.SkillUsecase, logger *slog.Logger) *SkillHandler {
	return &SkillHandler{skillUsecase: skillUsecase, logger: logger}
}

// --- Request / response DTOs ---

type createSkillRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Category    string `json:"category" validate:"required,max=50"`
	Description string `json:"description"`
	ValueLevel  string `json:"value_level" validate:"omitempty,oneof=low medium high"`
}

type rateSkillRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=1000"`
}

type skillView struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	ValueLevel  string    `json:"value_level"`
	AuthorID    uuid.UUID `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	Downloads   int64     `json:"downloads"`
	Rating      float64   `json:"rating"`
	RatingCount int64     `json:"rating_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type rateView struct {
	AlreadyRated bool    `json:"already_rated"`
	Rating       float64 `json:"rating"`
	RatingCount  int64   `json:"rating_count"`
}

func toSkillView(s *entity.Skill) skillView {
	return skillView{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Description: s.Description,
		ValueLevel:  s.ValueLevel,
		AuthorID:    s.AuthorID,
		AuthorName:  s.AuthorName,
		Downloads:   s.Downloads,
		Rating:      s.Rating,
		RatingCount: s.RatingCount,
		CreatedAt:   s.CreatedAt,
	}
}

// --- Handlers ---

// Create publishes a new skill.
func (h *SkillHandler) Create(c echo.Context) error {
	var req createSkillRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid skill input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	skill, err := h.skillUsecase.Create(c.Request().Context(), middleware.GetIdentity(c), usecase.CreateSkillInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		ValueLevel:  req.ValueLevel,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSkillView(skill), "Skill published")
}

// Get retrieves one skill.
func (h *SkillHandler) Get(c echo.Context) error {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		return err
	}

	skill, err := h.skillUsecase.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSkillView(skill), "")
}

// List retrieves skills, optionally filtered by category.
func (h *SkillHandler) List(c echo.Context) error {
	limit, offset := parsePagination(c, 20)

	skills, err := h.skillUsecase.List(c.Request().Context(), c.QueryParam("category"), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]skillView, 0, len(skills))
	for _, skill := range skills {
		views = append(views, toSkillView(skill))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// Download records one download by the caller.
func (h *SkillHandler) Download(c echo.Context) error {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		return err
	}

	skill, err := h.skillUsecase.Download(c.Request().Context(), middleware.GetIdentity(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSkillView(skill), "Download recorded")
}

// Rate records the caller's rating.
func (h *SkillHandler) Rate(c echo.Context) error {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		return err
	}

	var req rateSkillRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.skillUsecase.Rate(c.Request().Context(), middleware.GetIdentity(c), usecase.RateSkillInput{
		SkillID: id,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Rating recorded"
	if output.AlreadyRated {
		message = "Already rated"
	}

	return response.Success(c, http.StatusOK, rateView{
		AlreadyRated: output.AlreadyRated,
		Rating:       output.Rating,
		RatingCount:  output.RatingCount,
	}, message)
}
