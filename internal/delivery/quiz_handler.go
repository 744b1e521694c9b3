package delivery

import (
	"net/http"

	"github.com/nickey-1/cd0037-API-Development-and-Documentation-project/internal/domain"
	"github.com/nickey-1/cd0037-API-Development-and-Documentation-project/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type QuizHandler struct {
	useCase usecase.QuizUseCase
	log     *logrus.Logger
}

func NewQuizHandler(uc usecase.QuizUseCase, logger *logrus.Logger) *QuizHandler {
	return &QuizHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *QuizHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/quizzes", h.NextQuestion)
}

type quizCategory struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Pointer fields distinguish an absent key from a present-but-empty one; both
// keys are required.
type quizRequest struct {
	QuizCategory      *quizCategory `json:"quiz_category"`
	PreviousQuestions *[]int        `json:"previous_questions"`
}

type quizResponse struct {
	Success  bool             `json:"success"`
	Question *domain.Question `json:"question"`
}

func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var body quizRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.log.Warnf("Failed to bind JSON for quiz request: %v", err)
		ErrorResponse(c, http.StatusBadRequest)
		return
	}

	if body.QuizCategory == nil || body.PreviousQuestions == nil {
		h.log.Warn("Quiz request missing quiz_category or previous_questions")
		ErrorResponse(c, http.StatusBadRequest)
		return
	}

	category := domain.Category{
		ID:   body.QuizCategory.ID,
		Type: body.QuizCategory.Type,
	}

	question, err := h.useCase.NextQuestion(category, *body.PreviousQuestions)
	if err != nil {
		// Any failure on this route reports as a bad request, matching the
		// original API.
		h.log.Errorf("Failed to select next quiz question: %v", err)
		ErrorResponse(c, http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, quizResponse{
		Success:  true,
		Question: question,
	})
}
