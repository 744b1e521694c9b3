package domain

type QuestionRepository interface {
	GetQuestionByID(id int) (*Question, error)
	CreateQuestion(question *Question) (*Question, error)
	DeleteQuestion(id int) error

	// ListQuestions returns every question ordered ascending by difficulty.
	ListQuestions() ([]Question, error)
	CountQuestions() (int, error)

	// SearchQuestions matches term as a case-insensitive substring of the
	// question text.
	SearchQuestions(term string) ([]Question, error)

	// ListQuestionsByCategory filters on the questions.category column, which
	// stores the category id as text.
	ListQuestionsByCategory(category string) ([]Question, error)

	// ListAvailableQuestions returns questions whose id is not in excludeIDs,
	// optionally restricted to a category ("" means all categories).
	ListAvailableQuestions(category string, excludeIDs []int) ([]Question, error)
}
