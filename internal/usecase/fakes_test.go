package usecase

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/nickey-1/cd0037-API-Development-and-Documentation-project/internal/domain"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// fakeQuestionRepo keeps questions in memory with the same observable
// semantics as the Postgres repository.
type fakeQuestionRepo struct {
	questions []domain.Question
	nextID    int

	failCreate  bool
	gotCategory string
	gotExclude  []int
}

func newFakeQuestionRepo(questions ...domain.Question) *fakeQuestionRepo {
	maxID := 0
	for _, q := range questions {
		if q.ID > maxID {
			maxID = q.ID
		}
	}
	return &fakeQuestionRepo{questions: questions, nextID: maxID + 1}
}

func (f *fakeQuestionRepo) GetQuestionByID(id int) (*domain.Question, error) {
	for _, q := range f.questions {
		if q.ID == id {
			question := q
			return &question, nil
		}
	}
	return nil, fmt.Errorf("question with id %d: %w", id, domain.ErrNotFound)
}

func (f *fakeQuestionRepo) CreateQuestion(question *domain.Question) (*domain.Question, error) {
	if f.failCreate {
		return nil, errors.New("could not create question: insert failed")
	}
	question.ID = f.nextID
	f.nextID++
	f.questions = append(f.questions, *question)
	return question, nil
}

func (f *fakeQuestionRepo) DeleteQuestion(id int) error {
	for i, q := range f.questions {
		if q.ID == id {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("question with id %d: %w", id, domain.ErrNotFound)
}

func (f *fakeQuestionRepo) ListQuestions() ([]domain.Question, error) {
	ordered := make([]domain.Question, len(f.questions))
	copy(ordered, f.questions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Difficulty < ordered[j].Difficulty
	})
	return ordered, nil
}

func (f *fakeQuestionRepo) CountQuestions() (int, error) {
	return len(f.questions), nil
}

func (f *fakeQuestionRepo) SearchQuestions(term string) ([]domain.Question, error) {
	matches := []domain.Question{}
	for _, q := range f.questions {
		if strings.Contains(strings.ToLower(q.Question), strings.ToLower(term)) {
			matches = append(matches, q)
		}
	}
	return matches, nil
}

func (f *fakeQuestionRepo) ListQuestionsByCategory(category string) ([]domain.Question, error) {
	matches := []domain.Question{}
	for _, q := range f.questions {
		if q.Category == category {
			matches = append(matches, q)
		}
	}
	return matches, nil
}

func (f *fakeQuestionRepo) ListAvailableQuestions(category string, excludeIDs []int) ([]domain.Question, error) {
	f.gotCategory = category
	f.gotExclude = excludeIDs

	excluded := map[int]bool{}
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	available := []domain.Question{}
	for _, q := range f.questions {
		if excluded[q.ID] {
			continue
		}
		if category != "" && q.Category != category {
			continue
		}
		available = append(available, q)
	}
	return available, nil
}

type fakeCategoryRepo struct {
	categories []domain.Category
}

func (f *fakeCategoryRepo) GetCategoryByID(id int) (*domain.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, fmt.Errorf("category with id %d: %w", id, domain.ErrNotFound)
}

func (f *fakeCategoryRepo) ListCategories() ([]domain.Category, error) {
	return f.categories, nil
}
