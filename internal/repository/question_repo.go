package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/nickey-1/cd0037-API-Development-and-Documentation-project/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type postgresQuestionRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresQuestionRepository(db *sql.DB, logger *logrus.Logger) domain.QuestionRepository {
	return &postgresQuestionRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresQuestionRepository) GetQuestionByID(id int) (*domain.Question, error) {
	query := `SELECT id, question, answer, category, difficulty FROM questions WHERE id = $1`
	question := &domain.Question{}
	err := r.db.QueryRow(query, id).Scan(
		&question.ID,
		&question.Question,
		&question.Answer,
		&question.Category,
		&question.Difficulty,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Question with ID %d not found", id)
			return nil, fmt.Errorf("question with id %d: %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Failed to get question by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get question by id: %w", err)
	}
	return question, nil
}

func (r *postgresQuestionRepository) CreateQuestion(question *domain.Question) (*domain.Question, error) {
	query := `
        INSERT INTO questions (question, answer, category, difficulty)
        VALUES ($1, $2, $3, $4)
        RETURNING id`
	err := r.db.QueryRow(query, question.Question, question.Answer, question.Category, question.Difficulty).Scan(&question.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23514" {
			r.log.Warnf("Check constraint violation creating question: %s", pqErr.Message)
			return nil, fmt.Errorf("question data constraint violation: %w", domain.ErrInvalidInput)
		}
		r.log.Errorf("Failed to create question: %v", err)
		return nil, fmt.Errorf("could not create question: %w", err)
	}
	r.log.Infof("Question created successfully with ID: %d", question.ID)
	return question, nil
}

func (r *postgresQuestionRepository) DeleteQuestion(id int) error {
	query := `DELETE FROM questions WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		r.log.Errorf("Failed to delete question ID %d: %v", id, err)
		return fmt.Errorf("could not delete question: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting question ID %d: %v", id, err)
		return fmt.Errorf("could not confirm question deletion: %w", err)
	}

	if rowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent question ID %d", id)
		return fmt.Errorf("question with id %d: %w", id, domain.ErrNotFound)
	}

	r.log.Infof("Question deleted successfully with ID: %d", id)
	return nil
}

func (r *postgresQuestionRepository) ListQuestions() ([]domain.Question, error) {
	query := `
        SELECT id, question, answer, category, difficulty
        FROM questions
        ORDER BY difficulty ASC`
	return r.queryQuestions(query)
}

func (r *postgresQuestionRepository) CountQuestions() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM questions`).Scan(&total)
	if err != nil {
		r.log.Errorf("Failed to count questions: %v", err)
		return 0, fmt.Errorf("could not count questions: %w", err)
	}
	return total, nil
}

func (r *postgresQuestionRepository) SearchQuestions(term string) ([]domain.Question, error) {
	query := `
        SELECT id, question, answer, category, difficulty
        FROM questions
        WHERE question ILIKE '%' || $1 || '%'
        ORDER BY difficulty ASC`
	return r.queryQuestions(query, term)
}

func (r *postgresQuestionRepository) ListQuestionsByCategory(category string) ([]domain.Question, error) {
	query := `
        SELECT id, question, answer, category, difficulty
        FROM questions
        WHERE category = $1
        ORDER BY difficulty ASC`
	return r.queryQuestions(query, category)
}

func (r *postgresQuestionRepository) ListAvailableQuestions(category string, excludeIDs []int) ([]domain.Question, error) {
	if category == "" {
		query := `
        SELECT id, question, answer, category, difficulty
        FROM questions
        WHERE NOT (id = ANY($1))`
		return r.queryQuestions(query, pq.Array(excludeIDs))
	}

	query := `
        SELECT id, question, answer, category, difficulty
        FROM questions
        WHERE category = $1 AND NOT (id = ANY($2))`
	return r.queryQuestions(query, category, pq.Array(excludeIDs))
}

func (r *postgresQuestionRepository) queryQuestions(query string, args ...interface{}) ([]domain.Question, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.log.Errorf("Failed to query questions: %v", err)
		return nil, fmt.Errorf("could not list questions: %w", err)
	}
	defer rows.Close()

	questions := []domain.Question{}
	for rows.Next() {
		var question domain.Question
		if err := rows.Scan(
			&question.ID,
			&question.Question,
			&question.Answer,
			&question.Category,
			&question.Difficulty,
		); err != nil {
			r.log.Errorf("Failed to scan question row: %v", err)
			return nil, fmt.Errorf("error scanning question data: %w", err)
		}
		questions = append(questions, question)
	}

	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during questions list iteration: %v", err)
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}

	return questions, nil
}
