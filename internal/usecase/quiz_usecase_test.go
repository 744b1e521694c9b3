package usecase

import (
	"testing"

	"github.com/nickey-1/cd0037-API-Development-and-Documentation-project/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextQuestionRestrictsToCategory(t *testing.T) {
	repo := newFakeQuestionRepo(seedQuestions()...)
	uc := NewQuizUseCase(repo, testLogger())

	question, err := uc.NextQuestion(domain.Category{ID: 3, Type: "Geography"}, []int{})

	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, "3", question.Category)
	assert.Equal(t, "3", repo.gotCategory)
}

func TestNextQuestionClickMeansAllCategories(t *testing.T) {
	repo := newFakeQuestionRepo(seedQuestions()...)
	uc := NewQuizUseCase(repo, testLogger())

	question, err := uc.NextQuestion(domain.Category{ID: 0, Type: AllCategoriesType}, []int{})

	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, "", repo.gotCategory, "click should not restrict by category")
}

func TestNextQuestionExcludesPrevious(t *testing.T) {
	repo := newFakeQuestionRepo(seedQuestions()...)
	uc := NewQuizUseCase(repo, testLogger())

	// Only question 4 remains in category 3 after excluding question 1.
	question, err := uc.NextQuestion(domain.Category{ID: 3, Type: "Geography"}, []int{1})

	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, 4, question.ID)
}

func TestNextQuestionExhaustedRoundReturnsNil(t *testing.T) {
	repo := newFakeQuestionRepo(seedQuestions()...)
	uc := NewQuizUseCase(repo, testLogger())

	question, err := uc.NextQuestion(domain.Category{ID: 0, Type: AllCategoriesType}, []int{1, 2, 3, 4})

	require.NoError(t, err)
	assert.Nil(t, question)
}

func TestNextQuestionDrawsFromCandidates(t *testing.T) {
	repo := newFakeQuestionRepo(seedQuestions()...)
	uc := NewQuizUseCase(repo, testLogger())

	// Every draw must come from the unseen set, whichever one it is.
	for i := 0; i < 20; i++ {
		question, err := uc.NextQuestion(domain.Category{ID: 0, Type: AllCategoriesType}, []int{2})
		require.NoError(t, err)
		require.NotNil(t, question)
		assert.NotEqual(t, 2, question.ID)
	}
}

func TestNextQuestionNilPreviousTreatedAsEmpty(t *testing.T) {
	repo := newFakeQuestionRepo(seedQuestions()...)
	uc := NewQuizUseCase(repo, testLogger())

	question, err := uc.NextQuestion(domain.Category{ID: 0, Type: AllCategoriesType}, nil)

	require.NoError(t, err)
	require.NotNil(t, question)
	assert.NotNil(t, repo.gotExclude)
}
