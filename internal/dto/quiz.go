package dto

import (
	"time"

	"quiz-room/internal/domain"
)

// QuizResponse is a catalog entry.
type QuizResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	TotalQuestions  int       `json:"total_questions"`
	CreatedAt       time.Time `json:"created_at"`
	AttemptCount    int       `json:"attempt_count"`
	// BestPercentage is null when the quiz was never attempted.
	BestPercentage *int `json:"best_percentage"`
}

type DashboardStatsResponse struct {
	TotalAttempts    int `json:"total_attempts"`
	AverageScore     int `json:"average_score"`
	BestScore        int `json:"best_score"`
	TimeSpentSeconds int `json:"time_spent_seconds"`
}

// DashboardResponse is the catalog screen. Status is ready, connection_failed or error.
type DashboardResponse struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message,omitempty"`
	Quizzes []QuizResponse         `json:"quizzes"`
	Stats   DashboardStatsResponse `json:"stats"`
}

func NewDashboardResponse(d *domain.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		Status:  string(d.Status),
		Message: d.Message,
		Quizzes: make([]QuizResponse, 0, len(d.Quizzes)),
		Stats: DashboardStatsResponse{
			TotalAttempts:    d.Stats.TotalAttempts,
			AverageScore:     d.Stats.AverageScore,
			BestScore:        d.Stats.BestScore,
			TimeSpentSeconds: d.Stats.TimeSpentSeconds,
		},
	}
	for _, card := range d.Quizzes {
		resp.Quizzes = append(resp.Quizzes, QuizResponse{
			ID:              card.Quiz.ID,
			Title:           card.Quiz.Title,
			Description:     card.Quiz.Description,
			DurationMinutes: card.Quiz.DurationMinutes,
			TotalQuestions:  card.Quiz.TotalQuestions,
			CreatedAt:       card.Quiz.CreatedAt,
			AttemptCount:    card.AttemptCount,
			BestPercentage:  card.BestPercentage,
		})
	}
	return resp
}

// OptionView is an answer choice as shown while taking a quiz.
type OptionView struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// QuestionView never carries the correct answer.
type QuestionView struct {
	ID       string       `json:"id"`
	Text     string       `json:"text"`
	Order    int          `json:"order"`
	Options  []OptionView `json:"options"`
	Selected string       `json:"selected"`
}

func NewQuestionView(q *domain.Question, selected domain.OptionKey) *QuestionView {
	view := &QuestionView{
		ID:       q.ID,
		Text:     q.QuestionText,
		Order:    q.QuestionOrder,
		Options:  make([]OptionView, 0, len(domain.OptionKeys)),
		Selected: string(selected),
	}
	for _, k := range domain.OptionKeys {
		view.Options = append(view.Options, OptionView{Key: string(k), Text: q.Option(k)})
	}
	return view
}

// SessionView is the quiz screen.
type SessionView struct {
	ID               string              `json:"id"`
	QuizID           string              `json:"quiz_id"`
	QuizTitle        string              `json:"quiz_title,omitempty"`
	State            domain.SessionState `json:"state"`
	CurrentIndex     int                 `json:"current_index"`
	TotalQuestions   int                 `json:"total_questions"`
	Progress         float64             `json:"progress"`
	RemainingSeconds int                 `json:"remaining_seconds"`
	AnsweredCount    int                 `json:"answered_count"`
	// Answered marks, per question index, whether an option is selected.
	Answered  []bool          `json:"answered"`
	Question  *QuestionView   `json:"question,omitempty"`
	IsLast    bool            `json:"is_last"`
	CanSubmit bool            `json:"can_submit"`
	Outcome   *domain.Outcome `json:"outcome,omitempty"`
}

// NewSessionView snapshots a session. Callers hold the session's lock.
func NewSessionView(s *domain.QuizSession) SessionView {
	view := SessionView{
		ID:               s.ID,
		QuizID:           s.QuizID,
		State:            s.State(),
		CurrentIndex:     s.CurrentIndex(),
		TotalQuestions:   s.Total(),
		Progress:         s.Progress(),
		RemainingSeconds: s.RemainingSeconds(),
		AnsweredCount:    s.AnsweredCount(),
		IsLast:           s.IsLast(),
		Outcome:          s.Outcome(),
	}
	if q := s.Quiz(); q != nil {
		view.QuizTitle = q.Title
	}
	questions := s.Questions()
	view.Answered = make([]bool, len(questions))
	for i := range questions {
		view.Answered[i] = s.AnswerFor(questions[i].ID) != domain.NoAnswer
	}
	if q := s.Current(); q != nil && s.State() != domain.SessionNotFound {
		view.Question = NewQuestionView(q, s.AnswerFor(q.ID))
	}
	switch s.State() {
	case domain.SessionActive:
		view.CanSubmit = view.IsLast
	case domain.SessionSubmitting:
		// a failed submission may be retried by hand
		view.CanSubmit = true
	}
	return view
}

type SelectAnswerRequest struct {
	Option string `json:"option" validate:"required,oneof=A B C D a b c d"`
}

type JumpRequest struct {
	Index *int `json:"index" validate:"required,min=0"`
}

// ResultsQuery carries the outcome handed over by the quiz screen.
type ResultsQuery struct {
	Score     int `query:"score" validate:"min=0,ltefield=Total"`
	Total     int `query:"total" validate:"min=0"`
	TimeTaken int `query:"time_taken" validate:"min=0"`
}

func (q ResultsQuery) Outcome() domain.Outcome {
	return domain.Outcome{Score: q.Score, TotalQuestions: q.Total, TimeTakenSeconds: q.TimeTaken}
}

type ReviewOptionResponse struct {
	Key      string `json:"key"`
	Text     string `json:"text"`
	State    string `json:"state"`
	Selected bool   `json:"selected"`
}

type ReviewQuestionResponse struct {
	ID            string                 `json:"id"`
	Text          string                 `json:"text"`
	Order         int                    `json:"order"`
	UserAnswer    string                 `json:"user_answer"`
	CorrectAnswer string                 `json:"correct_answer"`
	IsCorrect     bool                   `json:"is_correct"`
	Options       []ReviewOptionResponse `json:"options"`
}

// ResultsResponse is the results screen.
type ResultsResponse struct {
	Status                    string                   `json:"status"`
	QuizID                    string                   `json:"quiz_id"`
	QuizTitle                 string                   `json:"quiz_title"`
	Score                     int                      `json:"score"`
	TotalQuestions            int                      `json:"total_questions"`
	TimeTakenSeconds          int                      `json:"time_taken_seconds"`
	Percentage                int                      `json:"percentage"`
	Grade                     string                   `json:"grade"`
	AverageSecondsPerQuestion int                      `json:"average_seconds_per_question"`
	Questions                 []ReviewQuestionResponse `json:"questions"`
}

func NewResultsResponse(r *domain.Results) ResultsResponse {
	resp := ResultsResponse{
		Status:                    "ready",
		QuizID:                    r.QuizID,
		QuizTitle:                 r.QuizTitle,
		Score:                     r.Outcome.Score,
		TotalQuestions:            r.Outcome.TotalQuestions,
		TimeTakenSeconds:          r.Outcome.TimeTakenSeconds,
		Percentage:                r.Percentage,
		Grade:                     r.Grade,
		AverageSecondsPerQuestion: r.AverageSecondsPerQuestion,
		Questions:                 make([]ReviewQuestionResponse, 0, len(r.Questions)),
	}
	for _, rq := range r.Questions {
		q := ReviewQuestionResponse{
			ID:            rq.Question.ID,
			Text:          rq.Question.QuestionText,
			Order:         rq.Question.QuestionOrder,
			UserAnswer:    string(rq.UserAnswer),
			CorrectAnswer: string(rq.Question.CorrectAnswer),
			IsCorrect:     rq.IsCorrect,
			Options:       make([]ReviewOptionResponse, 0, len(rq.Options)),
		}
		for _, o := range rq.Options {
			q.Options = append(q.Options, ReviewOptionResponse{
				Key:      string(o.Key),
				Text:     o.Text,
				State:    string(o.State),
				Selected: o.Selected,
			})
		}
		resp.Questions = append(resp.Questions, q)
	}
	return resp
}

// ResultsErrorResponse replaces the results screen when a fetch failed.
type ResultsErrorResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// ScreenResponse is the navigation root: the current screen and the data it shows.
type ScreenResponse struct {
	Screen string      `json:"screen"`
	QuizID string      `json:"quiz_id,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}
