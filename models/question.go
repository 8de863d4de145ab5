package models

import "time"

const QuestionsPerQuiz = 4

type Question struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	QuizID        uint      `json:"quiz_id" gorm:"not null;index"`
	Text          string    `json:"text" gorm:"not null"`
	AnswerA       string    `json:"answer_a" gorm:"not null"`
	AnswerB       string    `json:"answer_b" gorm:"not null"`
	AnswerC       string    `json:"answer_c" gorm:"not null"`
	AnswerD       string    `json:"answer_d" gorm:"not null"`
	CorrectAnswer string    `json:"correct_answer" gorm:"size:1;not null"` // A, B, C or D
	Position      int       `json:"position" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
