package domain

import "time"

// SessionState is the lifecycle state of a single quiz attempt.
type SessionState string

const (
	SessionLoading    SessionState = "loading"
	SessionActive     SessionState = "active"
	SessionSubmitting SessionState = "submitting"
	SessionComplete   SessionState = "complete"
	SessionNotFound   SessionState = "not_found"
	SessionAbandoned  SessionState = "abandoned"
)

// SubmitTrigger records why a submission started.
type SubmitTrigger string

const (
	SubmitManual  SubmitTrigger = "manual"
	SubmitTimeout SubmitTrigger = "timeout"
)

// Outcome is handed to the results screen when a session completes.
type Outcome struct {
	Score            int `json:"score"`
	TotalQuestions   int `json:"total_questions"`
	TimeTakenSeconds int `json:"time_taken_seconds"`
}

// QuizSession drives one attempt from loading to completion.
// It is not safe for concurrent use; callers serialize access.
type QuizSession struct {
	ID     string
	UserID string
	QuizID string

	quiz      *Quiz
	questions []Question
	state     SessionState
	current   int
	answers   map[string]OptionKey
	startedAt time.Time
	remaining int
	// carry holds elapsed time not yet taken off remaining
	carry     time.Duration
	inFlight  bool
	outcome   *Outcome
}

// NewQuizSession returns a session in the loading state.
func NewQuizSession(id, userID, quizID string) *QuizSession {
	return &QuizSession{
		ID:      id,
		UserID:  userID,
		QuizID:  quizID,
		state:   SessionLoading,
		answers: make(map[string]OptionKey),
	}
}

// Load moves a loading session to active. A quiz without questions is not found.
func (s *QuizSession) Load(quiz *Quiz, questions []Question, now time.Time) {
	if s.state != SessionLoading {
		return
	}
	if quiz == nil || len(questions) == 0 {
		s.state = SessionNotFound
		return
	}
	s.quiz = quiz
	s.questions = questions
	s.remaining = quiz.DurationMinutes * 60
	s.startedAt = now
	s.state = SessionActive
}

// MarkNotFound records a failed load.
func (s *QuizSession) MarkNotFound() {
	if s.state == SessionLoading {
		s.state = SessionNotFound
	}
}

func (s *QuizSession) State() SessionState { return s.state }
func (s *QuizSession) Quiz() *Quiz         { return s.quiz }
func (s *QuizSession) Total() int          { return len(s.questions) }
func (s *QuizSession) CurrentIndex() int   { return s.current }
func (s *QuizSession) RemainingSeconds() int {
	return s.remaining
}
func (s *QuizSession) Outcome() *Outcome { return s.outcome }

// Questions returns the ordered questions of the session.
func (s *QuizSession) Questions() []Question {
	return s.questions
}

// Current returns the question at the current index, nil before loading.
func (s *QuizSession) Current() *Question {
	if len(s.questions) == 0 {
		return nil
	}
	return &s.questions[s.current]
}

// Progress is (current index + 1) / total.
func (s *QuizSession) Progress() float64 {
	if len(s.questions) == 0 {
		return 0
	}
	return float64(s.current+1) / float64(len(s.questions))
}

// AnswerFor returns the stored answer for a question id.
func (s *QuizSession) AnswerFor(questionID string) OptionKey {
	return s.answers[questionID]
}

// AnsweredCount is the number of questions with a selection.
func (s *QuizSession) AnsweredCount() int {
	n := 0
	for _, k := range s.answers {
		if k != NoAnswer {
			n++
		}
	}
	return n
}

// IsLast reports whether the current question is the last one.
func (s *QuizSession) IsLast() bool {
	return len(s.questions) > 0 && s.current == len(s.questions)-1
}

// Next moves to the following question.
func (s *QuizSession) Next() error {
	return s.Jump(s.current + 1)
}

// Previous moves to the preceding question.
func (s *QuizSession) Previous() error {
	return s.Jump(s.current - 1)
}

// Jump moves to an arbitrary index in [0, total-1].
func (s *QuizSession) Jump(index int) error {
	if s.state != SessionActive {
		return ErrSessionClosed
	}
	if index < 0 || index >= len(s.questions) {
		return ErrIndexOutOfRange
	}
	s.current = index
	return nil
}

// Select stores option for the current question, replacing any prior choice.
func (s *QuizSession) Select(option OptionKey) error {
	if s.state != SessionActive {
		return ErrSessionClosed
	}
	if !option.Valid() {
		return ErrInvalidOption
	}
	s.answers[s.questions[s.current].ID] = option
	return nil
}

// Tick takes step off the countdown, keeping sub-second remainders for the
// next tick. It returns true only on the tick that reaches zero.
func (s *QuizSession) Tick(step time.Duration) bool {
	if s.state != SessionActive || s.remaining <= 0 || step <= 0 {
		return false
	}
	s.carry += step
	whole := int(s.carry / time.Second)
	if whole == 0 {
		return false
	}
	s.carry -= time.Duration(whole) * time.Second
	s.remaining -= whole
	if s.remaining <= 0 {
		s.remaining = 0
		return true
	}
	return false
}

// Score counts the questions whose stored answer matches the correct one.
func (s *QuizSession) Score() int {
	score := 0
	for i := range s.questions {
		q := &s.questions[i]
		if a := s.answers[q.ID]; a != NoAnswer && a == q.CorrectAnswer {
			score++
		}
	}
	return score
}

// BeginSubmit enters the submitting state and builds the attempt to persist.
// A manual submit is only offered on the last question. A failed manual
// submission may be re-attempted; a timeout fires at most once.
func (s *QuizSession) BeginSubmit(trigger SubmitTrigger, now time.Time) (*Attempt, error) {
	switch s.state {
	case SessionActive:
		if trigger == SubmitManual && !s.IsLast() {
			return nil, ErrSubmitUnavailable
		}
		s.state = SessionSubmitting
	case SessionSubmitting:
		if s.inFlight || trigger != SubmitManual {
			return nil, ErrSubmitInFlight
		}
	default:
		return nil, ErrSessionClosed
	}
	s.inFlight = true

	answers := make(map[string]OptionKey, len(s.questions))
	for i := range s.questions {
		answers[s.questions[i].ID] = s.answers[s.questions[i].ID]
	}
	elapsed := int(now.Sub(s.startedAt) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	return &Attempt{
		UserID:           s.UserID,
		QuizID:           s.QuizID,
		Score:            s.Score(),
		TotalQuestions:   len(s.questions),
		TimeTakenSeconds: elapsed,
		Answers:          answers,
		CompletedAt:      now,
	}, nil
}

// FinishSubmit records the result of persisting the attempt. On error the
// session stays in submitting. An abandoned session stays abandoned and
// yields no outcome.
func (s *QuizSession) FinishSubmit(attempt *Attempt, err error) *Outcome {
	s.inFlight = false
	if err != nil || attempt == nil {
		return nil
	}
	// the attempt is stored, but the user already left the quiz
	if s.state == SessionAbandoned {
		return nil
	}
	s.state = SessionComplete
	s.outcome = &Outcome{
		Score:            attempt.Score,
		TotalQuestions:   attempt.TotalQuestions,
		TimeTakenSeconds: attempt.TimeTakenSeconds,
	}
	return s.outcome
}

// Abandon tears the session down without submitting.
func (s *QuizSession) Abandon() {
	switch s.state {
	case SessionComplete, SessionAbandoned:
		return
	}
	s.state = SessionAbandoned
}

// Closed reports whether the session no longer needs its countdown.
func (s *QuizSession) Closed() bool {
	return s.state != SessionActive
}
