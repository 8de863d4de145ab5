package models

import "time"

// Quiz is built from one article and owns exactly four questions.
type Quiz struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ArticleID string    `json:"article_id" gorm:"size:512;uniqueIndex;not null"`
	Title     string    `json:"title" gorm:"not null"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
}
