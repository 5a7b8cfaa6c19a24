package domain

import (
	"encoding/json"
	"fmt"
)

// ScreenName tags a Screen variant.
type ScreenName string

const (
	ScreenAuth      ScreenName = "auth"
	ScreenDashboard ScreenName = "dashboard"
	ScreenQuiz      ScreenName = "quiz"
	ScreenResults   ScreenName = "results"
)

// Screen is the sealed set of top-level screens. Each variant carries the
// data it needs, so a results screen always has its outcome.
type Screen interface {
	Name() ScreenName
	isScreen()
}

type AuthScreen struct{}

type DashboardScreen struct{}

type QuizScreen struct {
	QuizID    string `json:"quiz_id"`
	SessionID string `json:"session_id"`
}

type ResultsScreen struct {
	QuizID  string  `json:"quiz_id"`
	Outcome Outcome `json:"outcome"`
}

func (AuthScreen) Name() ScreenName      { return ScreenAuth }
func (DashboardScreen) Name() ScreenName { return ScreenDashboard }
func (QuizScreen) Name() ScreenName      { return ScreenQuiz }
func (ResultsScreen) Name() ScreenName   { return ScreenResults }

func (AuthScreen) isScreen()      {}
func (DashboardScreen) isScreen() {}
func (QuizScreen) isScreen()      {}
func (ResultsScreen) isScreen()   {}

// SelectQuiz moves from the dashboard to a quiz.
func SelectQuiz(from Screen, quizID, sessionID string) (Screen, error) {
	switch from.(type) {
	case DashboardScreen, ResultsScreen:
		return QuizScreen{QuizID: quizID, SessionID: sessionID}, nil
	}
	return nil, NewInvalidTransitionError(from.Name(), "select a quiz")
}

// CompleteQuiz moves from a quiz to its results.
func CompleteQuiz(from Screen, outcome Outcome) (Screen, error) {
	q, ok := from.(QuizScreen)
	if !ok {
		return nil, NewInvalidTransitionError(from.Name(), "complete a quiz")
	}
	return ResultsScreen{QuizID: q.QuizID, Outcome: outcome}, nil
}

// Back returns to the dashboard from any signed-in screen.
func Back(from Screen) (Screen, error) {
	if _, ok := from.(AuthScreen); ok {
		return nil, NewInvalidTransitionError(from.Name(), "go back")
	}
	return DashboardScreen{}, nil
}

type screenEnvelope struct {
	Screen  ScreenName      `json:"screen"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MarshalScreen encodes a screen as a tagged JSON envelope.
func MarshalScreen(s Screen) ([]byte, error) {
	env := screenEnvelope{Screen: s.Name()}
	switch v := s.(type) {
	case QuizScreen, ResultsScreen:
		payload, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		env.Payload = payload
	}
	return json.Marshal(env)
}

// UnmarshalScreen decodes a tagged JSON envelope.
func UnmarshalScreen(data []byte) (Screen, error) {
	var env screenEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode screen envelope: %w", err)
	}
	switch env.Screen {
	case ScreenAuth:
		return AuthScreen{}, nil
	case ScreenDashboard:
		return DashboardScreen{}, nil
	case ScreenQuiz:
		var q QuizScreen
		if err := json.Unmarshal(env.Payload, &q); err != nil {
			return nil, fmt.Errorf("failed to decode quiz screen: %w", err)
		}
		return q, nil
	case ScreenResults:
		var r ResultsScreen
		if err := json.Unmarshal(env.Payload, &r); err != nil {
			return nil, fmt.Errorf("failed to decode results screen: %w", err)
		}
		return r, nil
	}
	return nil, fmt.Errorf("unknown screen %q", env.Screen)
}
