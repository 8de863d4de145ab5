package repositories

import (
	"context"

	"gorm.io/gorm"

	"quizportal/models"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	// GetAllForQuiz returns the quiz's questions in submitted order.
	GetAllForQuiz(ctx context.Context, quizID uint) ([]models.Question, error)
	Delete(ctx context.Context, id uint) error
	DeleteForQuiz(ctx context.Context, quizID uint) (int64, error)
	CountForQuiz(ctx context.Context, quizID uint) (int64, error)
}

type GormQuestionRepository struct {
	db *gorm.DB
}

func (r *GormQuestionRepository) Create(ctx context.Context, question *models.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *GormQuestionRepository) GetAllForQuiz(ctx context.Context, quizID uint) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("position, id").
		Find(&questions).Error
	return questions, err
}

func (r *GormQuestionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Question{}, id).Error
}

func (r *GormQuestionRepository) DeleteForQuiz(ctx context.Context, quizID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("quiz_id = ?", quizID).Delete(&models.Question{})
	return res.RowsAffected, res.Error
}

func (r *GormQuestionRepository) CountForQuiz(ctx context.Context, quizID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Question{}).Where("quiz_id = ?", quizID).Count(&n).Error
	return n, err
}
