package usecase

import (
	"math/rand"
	"time"

	"github.com/nickey-1/cd0037-API-Development-and-Documentation-project/internal/domain"

	"github.com/sirupsen/logrus"
)

// AllCategoriesType is the sentinel quiz_category type the frontend sends
// when the player picks "all categories".
const AllCategoriesType = "click"

type QuizUseCase interface {
	// NextQuestion draws one question uniformly at random among the questions
	// not yet served in this quiz round. A nil question means the round is
	// exhausted.
	NextQuestion(category domain.Category, previousIDs []int) (*domain.Question, error)
}

type quizUseCase struct {
	questionRepo domain.QuestionRepository
	rng          *rand.Rand
	log          *logrus.Logger
}

func NewQuizUseCase(repo domain.QuestionRepository, logger *logrus.Logger) QuizUseCase {
	return &quizUseCase{
		questionRepo: repo,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		log:          logger,
	}
}

func (uc *quizUseCase) NextQuestion(category domain.Category, previousIDs []int) (*domain.Question, error) {
	categoryKey := ""
	if category.Type != AllCategoriesType {
		categoryKey = domain.CategoryKey(category.ID)
	}

	if previousIDs == nil {
		previousIDs = []int{}
	}

	available, err := uc.questionRepo.ListAvailableQuestions(categoryKey, previousIDs)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list available quiz questions: %v", err)
		return nil, err
	}

	if len(available) == 0 {
		uc.log.Info("Use Case: No unseen questions left for this quiz round")
		return nil, nil
	}

	next := available[uc.rng.Intn(len(available))]
	uc.log.Infof("Use Case: Selected quiz question ID %d out of %d candidates", next.ID, len(available))
	return &next, nil
}
