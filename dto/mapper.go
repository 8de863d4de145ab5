package dto

import (
	"github.com/ecodeclub/ekit/slice"

	"quizportal/models"
)

// QuizFromArticle seeds a new quiz row from the selected article.
func QuizFromArticle(a ArticleDto) models.Quiz {
	return models.Quiz{
		ArticleID: a.ArticleID,
		Title:     a.Title,
		Summary:   a.Summary,
	}
}

func QuizToDto(q models.Quiz) QuizDto {
	return QuizDto{
		ID:            q.ID,
		ArticleID:     q.ArticleID,
		Title:         q.Title,
		Summary:       q.Summary,
		QuestionCount: len(q.Questions),
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

func QuizzesToDtos(qs []models.Quiz) []QuizDto {
	return slice.Map(qs, func(idx int, src models.Quiz) QuizDto {
		return QuizToDto(src)
	})
}

// QuestionFromDto maps a submitted question onto a row for quizID. The dto id is
// ignored: questions are always recreated.
func QuestionFromDto(d QuestionDto, quizID uint, position int) models.Question {
	return models.Question{
		QuizID:        quizID,
		Text:          d.QuestionText,
		AnswerA:       d.AnswerA,
		AnswerB:       d.AnswerB,
		AnswerC:       d.AnswerC,
		AnswerD:       d.AnswerD,
		CorrectAnswer: d.CorrectAnswer,
		Position:      position,
	}
}

func QuestionToDto(q models.Question) QuestionDto {
	return QuestionDto{
		ID:            q.ID,
		QuizID:        q.QuizID,
		QuestionText:  q.Text,
		AnswerA:       q.AnswerA,
		AnswerB:       q.AnswerB,
		AnswerC:       q.AnswerC,
		AnswerD:       q.AnswerD,
		CorrectAnswer: q.CorrectAnswer,
	}
}

func QuestionsToDtos(qs []models.Question) []QuestionDto {
	return slice.Map(qs, func(idx int, src models.Question) QuestionDto {
		return QuestionToDto(src)
	})
}

// FindArticle returns the entry of list whose id matches articleID.
func FindArticle(list []ArticleDto, articleID string) (ArticleDto, bool) {
	for _, a := range list {
		if a.ArticleID == articleID {
			return a, true
		}
	}
	return ArticleDto{}, false
}
