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

type QuestionHandler struct {
	useCase    usecase.QuestionUseCase
	categoryUC usecase.CategoryUseCase
	log        *logrus.Logger
}

func NewQuestionHandler(uc usecase.QuestionUseCase, categoryUC usecase.CategoryUseCase, logger *logrus.Logger) *QuestionHandler {
	return &QuestionHandler{
		useCase:    uc,
		categoryUC: categoryUC,
		log:        logger,
	}
}

func (h *QuestionHandler) RegisterRoutes(router gin.IRouter) {
	questions := router.Group("/questions")
	{
		questions.GET("", h.ListQuestions)
		questions.POST("", h.PostQuestion)
		questions.DELETE("/:id", h.DeleteQuestion)
	}
}

type questionListResponse struct {
	Categories       map[int]string    `json:"categories"`
	Questions        []domain.Question `json:"questions"`
	CurrentCategory  []string          `json:"current_category"`
	Success          bool              `json:"success"`
	QuestionsPerPage int               `json:"questions_per_page"`
	TotalQuestions   int               `json:"total_questions"`
}

func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, total, err := h.useCase.ListQuestions()
	if err != nil {
		h.log.Errorf("Failed to list questions: %v", err)
		ErrorResponse(c, http.StatusInternalServerError)
		return
	}

	currentQuestions := PaginateQuestions(questions, pageParam(c))
	if len(currentQuestions) == 0 {
		h.log.Warnf("No questions on requested page %d", pageParam(c))
		ErrorResponse(c, http.StatusNotFound)
		return
	}

	// An empty category table is fine on this route; only the questions page
	// decides the status.
	categories, err := h.categoryUC.ListCategories()
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			h.log.Errorf("Failed to list categories for questions view: %v", err)
			ErrorResponse(c, http.StatusInternalServerError)
			return
		}
		categories = map[int]string{}
	}

	c.JSON(http.StatusOK, questionListResponse{
		Categories:       categories,
		Questions:        currentQuestions,
		CurrentCategory:  []string{},
		Success:          true,
		QuestionsPerPage: len(currentQuestions),
		TotalQuestions:   total,
	})
}

type deleteQuestionResponse struct {
	Questions        []domain.Question `json:"questions"`
	Deleted          int               `json:"deleted"`
	Success          bool              `json:"success"`
	QuestionsPerPage int               `json:"questions_per_page"`
	TotalQuestions   int               `json:"total_questions"`
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.log.Warnf("Invalid question ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusNotFound)
		return
	}

	questions, total, err := h.useCase.DeleteQuestion(id)
	if err != nil {
		h.log.Warnf("Failed to delete question ID %d: %v", id, err)
		if errors.Is(err, domain.ErrNotFound) {
			// The original API folded this case into a 422 through its
			// catch-all; reported here as a clean 404 instead.
			ErrorResponse(c, http.StatusNotFound)
			return
		}
		ErrorResponse(c, http.StatusUnprocessableEntity)
		return
	}

	currentQuestions := PaginateQuestions(questions, pageParam(c))

	h.log.Infof("Question deleted successfully: ID %d", id)
	c.JSON(http.StatusOK, deleteQuestionResponse{
		Questions:        currentQuestions,
		Deleted:          id,
		Success:          true,
		QuestionsPerPage: len(currentQuestions),
		TotalQuestions:   total,
	})
}

type postQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
	SearchTerm string `json:"searchTerm"`
}

type searchQuestionsResponse struct {
	Success        bool              `json:"success"`
	Questions      []domain.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

type createQuestionResponse struct {
	Questions        []domain.Question `json:"questions"`
	QuestionCreated  string            `json:"question_created"`
	Created          int               `json:"created"`
	Success          bool              `json:"success"`
	QuestionsPerPage int               `json:"questions_per_page"`
	TotalQuestions   int               `json:"total_questions"`
}

// PostQuestion serves both search and create: a non-empty searchTerm in the
// body selects search, anything else is treated as a create.
func (h *QuestionHandler) PostQuestion(c *gin.Context) {
	var body postQuestionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.log.Warnf("Failed to bind JSON for post question: %v", err)
		ErrorResponse(c, http.StatusBadRequest)
		return
	}

	if body.SearchTerm != "" {
		h.searchQuestions(c, body.SearchTerm)
		return
	}

	h.createQuestion(c, &body)
}

func (h *QuestionHandler) searchQuestions(c *gin.Context, term string) {
	matches, err := h.useCase.SearchQuestions(term)
	if err != nil {
		h.log.Warnf("Search for %q failed: %v", term, err)
		ErrorResponse(c, mapErrorToStatus(err))
		return
	}

	currentMatches := PaginateQuestions(matches, pageParam(c))

	// total_questions is the full match count. The original computed it from
	// the paginated subset, which undercounts past the first page.
	c.JSON(http.StatusOK, searchQuestionsResponse{
		Success:        true,
		Questions:      currentMatches,
		TotalQuestions: len(matches),
	})
}

func (h *QuestionHandler) createQuestion(c *gin.Context, body *postQuestionRequest) {
	question := &domain.Question{
		Question:   body.Question,
		Answer:     body.Answer,
		Category:   body.Category,
		Difficulty: body.Difficulty,
	}

	created, questions, total, err := h.useCase.CreateQuestion(question)
	if err != nil {
		h.log.Warnf("Failed to create question: %v", err)
		ErrorResponse(c, http.StatusUnprocessableEntity)
		return
	}

	currentQuestions := PaginateQuestions(questions, pageParam(c))

	h.log.Infof("Question created successfully: ID %d", created.ID)
	c.JSON(http.StatusOK, createQuestionResponse{
		Questions:        currentQuestions,
		QuestionCreated:  created.Question,
		Created:          created.ID,
		Success:          true,
		QuestionsPerPage: len(currentQuestions),
		TotalQuestions:   total,
	})
}
