package usecase

import (
	"fmt"

	"github.com/nickey-1/cd0037-API-Development-and-Documentation-project/internal/domain"

	"github.com/sirupsen/logrus"
)

type QuestionUseCase interface {
	// ListQuestions returns every question ordered by difficulty together
	// with the store-wide count.
	ListQuestions() ([]domain.Question, int, error)

	// DeleteQuestion removes the question and returns the refreshed ordered
	// list plus the post-delete count.
	DeleteQuestion(id int) ([]domain.Question, int, error)

	// CreateQuestion validates and persists a new question, then returns it
	// with the refreshed ordered list and post-insert count.
	CreateQuestion(question *domain.Question) (*domain.Question, []domain.Question, int, error)

	// SearchQuestions performs a case-insensitive substring match against the
	// question text. Zero matches surface as ErrNotFound.
	SearchQuestions(term string) ([]domain.Question, error)
}

type questionUseCase struct {
	questionRepo domain.QuestionRepository
	log          *logrus.Logger
}

func NewQuestionUseCase(repo domain.QuestionRepository, logger *logrus.Logger) QuestionUseCase {
	return &questionUseCase{
		questionRepo: repo,
		log:          logger,
	}
}

func (uc *questionUseCase) ListQuestions() ([]domain.Question, int, error) {
	questions, err := uc.questionRepo.ListQuestions()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list questions: %v", err)
		return nil, 0, err
	}

	total, err := uc.questionRepo.CountQuestions()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to count questions: %v", err)
		return nil, 0, err
	}

	return questions, total, nil
}

func (uc *questionUseCase) DeleteQuestion(id int) ([]domain.Question, int, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted delete with invalid ID: %d", id)
		return nil, 0, fmt.Errorf("invalid question id %d: %w", id, domain.ErrInvalidInput)
	}

	if _, err := uc.questionRepo.GetQuestionByID(id); err != nil {
		uc.log.Warnf("Use Case: Failed to resolve question ID %d for delete: %v", id, err)
		return nil, 0, err
	}

	if err := uc.questionRepo.DeleteQuestion(id); err != nil {
		uc.log.Errorf("Use Case: Repository failed to delete question ID %d: %v", id, err)
		return nil, 0, err
	}

	// Sequential re-fetch, not a transaction: the response reflects whatever
	// the store holds after the delete.
	return uc.ListQuestions()
}

func (uc *questionUseCase) CreateQuestion(question *domain.Question) (*domain.Question, []domain.Question, int, error) {
	if question.Question == "" || question.Answer == "" || question.Category == "" || question.Difficulty == 0 {
		uc.log.Warn("Use Case: Attempted to create question with missing fields")
		return nil, nil, 0, fmt.Errorf("question, answer, category and difficulty are all required: %w", domain.ErrInvalidInput)
	}

	created, err := uc.questionRepo.CreateQuestion(question)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create question: %v", err)
		return nil, nil, 0, err
	}

	questions, total, err := uc.ListQuestions()
	if err != nil {
		return nil, nil, 0, err
	}

	uc.log.Infof("Use Case: Question created successfully with ID %d", created.ID)
	return created, questions, total, nil
}

func (uc *questionUseCase) SearchQuestions(term string) ([]domain.Question, error) {
	matches, err := uc.questionRepo.SearchQuestions(term)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to search questions for %q: %v", term, err)
		return nil, err
	}

	if len(matches) == 0 {
		uc.log.Warnf("Use Case: No questions match search term %q", term)
		return nil, fmt.Errorf("no questions match %q: %w", term, domain.ErrNotFound)
	}

	uc.log.Infof("Use Case: Search for %q matched %d questions", term, len(matches))
	return matches, nil
}
