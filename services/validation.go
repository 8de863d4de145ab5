package services

import (
	"quizportal/dto"
	"quizportal/models"
)

const (
	MsgQuestionsNotUnique = "Questions should be unique"
	MsgAnswersNotUnique   = "A question cannot have the same answer more than once"
)

// ValidationError is a user-facing rejection of submitted quiz content.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateQuestions enforces the content rules shared by create and edit: four
// questions with distinct texts, each with four distinct answers. It stops at
// the first violation.
func ValidateQuestions(questions []dto.QuestionDto) error {
	texts := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		texts[q.QuestionText] = struct{}{}
	}
	if len(questions) != models.QuestionsPerQuiz || len(texts) != models.QuestionsPerQuiz {
		return &ValidationError{Message: MsgQuestionsNotUnique}
	}

	for _, q := range questions {
		if !distinctAnswers(q) {
			return &ValidationError{Message: MsgAnswersNotUnique}
		}
	}
	return nil
}

func distinctAnswers(q dto.QuestionDto) bool {
	answers := [4]string{q.AnswerA, q.AnswerB, q.AnswerC, q.AnswerD}
	for i := 0; i < len(answers); i++ {
		for j := i + 1; j < len(answers); j++ {
			if answers[i] == answers[j] {
				return false
			}
		}
	}
	return true
}
