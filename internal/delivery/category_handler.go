package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/nickey-1/cd0037-API-Development-and-Documentation-project/internal/domain"
	"github.com/nickey-1/cd0037-API-Development-and-Documentation-project/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	useCase usecase.CategoryUseCase
	log     *logrus.Logger
}

func NewCategoryHandler(uc usecase.CategoryUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	categories := router.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:id/questions", h.QuestionsByCategory)
	}
}

type categoriesResponse struct {
	Categories map[int]string `json:"categories"`
	Success    bool           `json:"success"`
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.useCase.ListCategories()
	if err != nil {
		h.log.Warnf("Failed to list categories: %v", err)
		ErrorResponse(c, mapErrorToStatus(err))
		return
	}

	c.JSON(http.StatusOK, categoriesResponse{
		Categories: categories,
		Success:    true,
	})
}

type categoryQuestionsResponse struct {
	CurrentCategory  string            `json:"current_category"`
	Questions        []domain.Question `json:"questions"`
	Success          bool              `json:"success"`
	QuestionsPerPage int               `json:"questions_per_page"`
	TotalQuestions   int               `json:"total_questions"`
}

func (h *CategoryHandler) QuestionsByCategory(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.log.Warnf("Invalid category ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusNotFound)
		return
	}

	category, questions, total, err := h.useCase.QuestionsByCategory(id)
	if err != nil {
		h.log.Warnf("Failed to list questions for category %d: %v", id, err)
		if errors.Is(err, domain.ErrNotFound) {
			// An unknown category reports 400 here, not 404. Kept for
			// compatibility with the original API.
			ErrorResponse(c, http.StatusBadRequest)
			return
		}
		ErrorResponse(c, http.StatusInternalServerError)
		return
	}

	currentQuestions := PaginateQuestions(questions, pageParam(c))

	// total_questions is the store-wide count, not the per-category count.
	c.JSON(http.StatusOK, categoryQuestionsResponse{
		CurrentCategory:  category.Type,
		Questions:        currentQuestions,
		Success:          true,
		QuestionsPerPage: len(currentQuestions),
		TotalQuestions:   total,
	})
}
