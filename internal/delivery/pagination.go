package delivery

import (
	"strconv"

	"github.com/nickey-1/cd0037-API-Development-and-Documentation-project/internal/domain"

	"github.com/gin-gonic/gin"
)

// QuestionsPerPage is the fixed page size for every paginated listing.
const QuestionsPerPage = 10

// PaginateQuestions returns the 1-based page window of questions, clipped to
// the slice bounds. Pages past the end come back empty; callers decide
// whether empty is an error.
func PaginateQuestions(questions []domain.Question, page int) []domain.Question {
	if page < 1 {
		page = 1
	}

	start := (page - 1) * QuestionsPerPage
	if start >= len(questions) {
		return []domain.Question{}
	}

	end := start + QuestionsPerPage
	if end > len(questions) {
		end = len(questions)
	}

	return questions[start:end]
}

// pageParam reads the page query parameter, falling back to page 1 when it is
// absent or not an integer.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}
