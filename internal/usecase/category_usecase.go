package usecase

import (
	"fmt"

	"github.com/nickey-1/cd0037-API-Development-and-Documentation-project/internal/domain"

	"github.com/sirupsen/logrus"
)

type CategoryUseCase interface {
	// ListCategories returns the id->type mapping served by the API. An empty
	// store surfaces as ErrNotFound.
	ListCategories() (map[int]string, error)

	// QuestionsByCategory resolves the category and returns its questions
	// together with the global question count.
	QuestionsByCategory(categoryID int) (*domain.Category, []domain.Question, int, error)
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	questionRepo domain.QuestionRepository
	log          *logrus.Logger
}

func NewCategoryUseCase(categoryRepo domain.CategoryRepository, questionRepo domain.QuestionRepository, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
		log:          logger,
	}
}

func (uc *categoryUseCase) ListCategories() (map[int]string, error) {
	categories, err := uc.categoryRepo.ListCategories()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, err
	}

	if len(categories) == 0 {
		uc.log.Warn("Use Case: No categories found")
		return nil, fmt.Errorf("no categories exist: %w", domain.ErrNotFound)
	}

	categoryMap := make(map[int]string, len(categories))
	for _, category := range categories {
		categoryMap[category.ID] = category.Type
	}

	return categoryMap, nil
}

func (uc *categoryUseCase) QuestionsByCategory(categoryID int) (*domain.Category, []domain.Question, int, error) {
	category, err := uc.categoryRepo.GetCategoryByID(categoryID)
	if err != nil {
		uc.log.Warnf("Use Case: Failed to resolve category ID %d: %v", categoryID, err)
		return nil, nil, 0, err
	}

	questions, err := uc.questionRepo.ListQuestionsByCategory(domain.CategoryKey(category.ID))
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list questions for category %d: %v", categoryID, err)
		return nil, nil, 0, err
	}

	// The original API reports the store-wide question count here, not the
	// filtered count.
	total, err := uc.questionRepo.CountQuestions()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to count questions: %v", err)
		return nil, nil, 0, err
	}

	uc.log.Infof("Use Case: Retrieved %d questions for category %d", len(questions), categoryID)
	return category, questions, total, nil
}
