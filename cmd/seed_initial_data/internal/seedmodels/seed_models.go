package seedmodels

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"quiz-room/internal/domain"
)

// SeedQuestion defines a question in the YAML seed file.
type SeedQuestion struct {
	Text    string            `yaml:"text"`
	Options map[string]string `yaml:"options"`
	Answer  string            `yaml:"answer"`
}

// SeedQuiz defines a quiz in the YAML seed file.
type SeedQuiz struct {
	Title           string         `yaml:"title"`
	Description     string         `yaml:"description"`
	DurationMinutes int            `yaml:"duration_minutes"`
	Inactive        bool           `yaml:"inactive"`
	Questions       []SeedQuestion `yaml:"questions"`
}

// SeedFile is the root of the seed file.
type SeedFile struct {
	Quizzes []SeedQuiz `yaml:"quizzes"`
}

// Parse decodes a seed file.
func Parse(data []byte) (*SeedFile, error) {
	var f SeedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

// ToDomain converts the seed entry into a quiz and its ordered questions.
func (s SeedQuiz) ToDomain() (*domain.Quiz, []domain.Question, error) {
	quiz := &domain.Quiz{
		Title:           s.Title,
		DurationMinutes: s.DurationMinutes,
		TotalQuestions:  len(s.Questions),
		IsActive:        !s.Inactive,
	}
	if s.Description != "" {
		desc := s.Description
		quiz.Description = &desc
	}
	if err := quiz.Validate(); err != nil {
		return nil, nil, err
	}

	questions := make([]domain.Question, 0, len(s.Questions))
	for i, sq := range s.Questions {
		answer, err := domain.ParseOptionKey(sq.Answer)
		if err != nil {
			return nil, nil, fmt.Errorf("quiz %q question %d: %w", s.Title, i+1, err)
		}
		q := domain.Question{
			QuestionText:  sq.Text,
			OptionA:       sq.Options["A"],
			OptionB:       sq.Options["B"],
			OptionC:       sq.Options["C"],
			OptionD:       sq.Options["D"],
			CorrectAnswer: answer,
			QuestionOrder: i + 1,
		}
		if q.Option(answer) == "" {
			return nil, nil, fmt.Errorf("quiz %q question %d: answer %s has no option text", s.Title, i+1, answer)
		}
		questions = append(questions, q)
	}
	return quiz, questions, nil
}
