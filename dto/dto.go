// Package dto holds the transfer objects and view-models exchanged between the
// HTTP layer and the quiz workflow, plus their mappings to the gorm entities.
package dto

import "time"

type ArticleDto struct {
	ArticleID   string    `json:"articleId" binding:"required"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Link        string    `json:"link,omitempty"`
	PublishedAt time.Time `json:"publishedAt,omitempty"`
}

type QuestionDto struct {
	ID            uint   `json:"id"`
	QuizID        uint   `json:"quizId"`
	QuestionText  string `json:"questionText" binding:"required"`
	AnswerA       string `json:"answerA" binding:"required"`
	AnswerB       string `json:"answerB" binding:"required"`
	AnswerC       string `json:"answerC" binding:"required"`
	AnswerD       string `json:"answerD" binding:"required"`
	CorrectAnswer string `json:"correctAnswer" binding:"required,oneof=A B C D"`
}

type QuizDto struct {
	ID            uint      `json:"id"`
	ArticleID     string    `json:"articleId"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary"`
	QuestionCount int       `json:"questionCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateQuizViewDto backs both the create and the edit screens.
type CreateQuizViewDto struct {
	QuizID            uint          `json:"quizId"`
	ArticleList       []ArticleDto  `json:"articleList" binding:"required,dive"`
	SelectedArticleID string        `json:"selectedArticleId" binding:"required"`
	QuestionArr       []QuestionDto `json:"questionArr" binding:"required,len=4,dive"`
	ErrorMessage      string        `json:"errorMessage,omitempty"`
}

type QuizViewDto struct {
	Quiz      QuizDto       `json:"quiz"`
	Questions []QuestionDto `json:"questions"`
}
