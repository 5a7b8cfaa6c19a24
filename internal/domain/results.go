package domain

// OptionState is how an option is marked in the results review.
type OptionState string

const (
	OptionCorrect            OptionState = "correct"
	OptionIncorrectSelection OptionState = "incorrect_selection"
	OptionNeutral            OptionState = "neutral"
)

// ReviewOption is one option of a reviewed question.
type ReviewOption struct {
	Key      OptionKey
	Text     string
	State    OptionState
	Selected bool
}

// ReviewQuestion is a question with the user's stored answer.
type ReviewQuestion struct {
	Question   Question
	UserAnswer OptionKey
	IsCorrect  bool
	Options    []ReviewOption
}

// Results is the review screen state.
type Results struct {
	QuizID                    string
	QuizTitle                 string
	Outcome                   Outcome
	Percentage                int
	Grade                     string
	AverageSecondsPerQuestion int
	Questions                 []ReviewQuestion
}

// ReviewQuestionFor marks every option of q against the stored answer.
func ReviewQuestionFor(q Question, answer OptionKey) ReviewQuestion {
	rq := ReviewQuestion{
		Question:   q,
		UserAnswer: answer,
		IsCorrect:  answer != NoAnswer && answer == q.CorrectAnswer,
		Options:    make([]ReviewOption, 0, len(OptionKeys)),
	}
	for _, k := range OptionKeys {
		opt := ReviewOption{Key: k, Text: q.Option(k), State: OptionNeutral, Selected: answer == k}
		switch {
		case k == q.CorrectAnswer:
			opt.State = OptionCorrect
		case opt.Selected:
			opt.State = OptionIncorrectSelection
		}
		rq.Options = append(rq.Options, opt)
	}
	return rq
}

// BuildResults assembles the review from re-fetched data. The outcome is
// display-only and is not checked against the stored answers.
func BuildResults(quizID, title string, questions []Question, answers map[string]OptionKey, outcome Outcome) *Results {
	percentage := Percent(outcome.Score, outcome.TotalQuestions)
	r := &Results{
		QuizID:                    quizID,
		QuizTitle:                 title,
		Outcome:                   outcome,
		Percentage:                percentage,
		Grade:                     Grade(percentage),
		AverageSecondsPerQuestion: AverageSeconds(outcome.TimeTakenSeconds, outcome.TotalQuestions),
		Questions:                 make([]ReviewQuestion, 0, len(questions)),
	}
	for _, q := range questions {
		r.Questions = append(r.Questions, ReviewQuestionFor(q, answers[q.ID]))
	}
	return r
}
