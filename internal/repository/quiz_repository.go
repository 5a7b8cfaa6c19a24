package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quiz-room/internal/domain"
	"quiz-room/internal/repository/models"
)

const quizColumns = `id, title, description, duration_minutes, total_questions, created_by, created_at, is_active`

// sqlxQuizRepository implements domain.QuizRepository using sqlx.
type sqlxQuizRepository struct {
	db DBTX
}

// NewQuizRepository creates a new quiz repository backed by db.
func NewQuizRepository(db DBTX) domain.QuizRepository {
	return &sqlxQuizRepository{db: db}
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	if m == nil {
		return nil
	}
	var description *string
	if m.Description.Valid {
		d := m.Description.String
		description = &d
	}
	return &domain.Quiz{
		ID:              m.ID,
		Title:           m.Title,
		Description:     description,
		DurationMinutes: m.DurationMinutes,
		TotalQuestions:  m.TotalQuestions,
		CreatedBy:       m.CreatedBy.String,
		CreatedAt:       m.CreatedAt,
		IsActive:        m.IsActive,
	}
}

// Probe issues the cheapest possible read. An empty table still counts as reachable.
func (r *sqlxQuizRepository) Probe(ctx context.Context) error {
	var id string
	err := r.db.GetContext(ctx, &id, `SELECT id FROM quizzes LIMIT 1`)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to probe quizzes table: %w", err)
	}
	return nil
}

// ListActive returns active quizzes, newest first.
func (r *sqlxQuizRepository) ListActive(ctx context.Context) ([]domain.Quiz, error) {
	var rows []models.Quiz
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE is_active = TRUE ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list active quizzes: %w", err)
	}

	quizzes := make([]domain.Quiz, 0, len(rows))
	for i := range rows {
		quizzes = append(quizzes, *toDomainQuiz(&rows[i]))
	}
	return quizzes, nil
}

// GetByID returns nil, nil when the quiz does not exist.
func (r *sqlxQuizRepository) GetByID(ctx context.Context, id string) (*domain.Quiz, error) {
	var row models.Quiz
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %s: %w", id, err)
	}
	return toDomainQuiz(&row), nil
}

func (r *sqlxQuizRepository) GetTitle(ctx context.Context, id string) (string, error) {
	var title string
	if err := r.db.GetContext(ctx, &title, `SELECT title FROM quizzes WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("quiz %s: %w", id, domain.ErrNoRows)
		}
		return "", fmt.Errorf("failed to get title of quiz %s: %w", id, err)
	}
	return title, nil
}
