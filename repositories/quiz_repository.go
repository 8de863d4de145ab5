package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"quizportal/models"
)

type QuizRepository interface {
	Create(ctx context.Context, quiz *models.Quiz) error
	Get(ctx context.Context, id uint) (models.Quiz, error)
	GetByArticle(ctx context.Context, articleID string) (models.Quiz, error)
	// GetAll returns every quiz, newest first, with its questions loaded.
	GetAll(ctx context.Context) ([]models.Quiz, error)
	Update(ctx context.Context, quiz *models.Quiz) error
	Delete(ctx context.Context, id uint) error
}

type GormQuizRepository struct {
	db *gorm.DB
}

func (r *GormQuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	err := r.db.WithContext(ctx).Create(quiz).Error
	if isDuplicate(err) {
		return fmt.Errorf("quiz for article %q: %w", quiz.ArticleID, ErrDuplicate)
	}
	return err
}

func (r *GormQuizRepository) Get(ctx context.Context, id uint) (models.Quiz, error) {
	var quiz models.Quiz
	err := r.db.WithContext(ctx).First(&quiz, "id = ?", id).Error
	return quiz, notFound(err, ErrQuizNotFound)
}

func (r *GormQuizRepository) GetByArticle(ctx context.Context, articleID string) (models.Quiz, error) {
	var quiz models.Quiz
	err := r.db.WithContext(ctx).Where("article_id = ?", articleID).First(&quiz).Error
	return quiz, notFound(err, ErrQuizNotFound)
}

func (r *GormQuizRepository) GetAll(ctx context.Context) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position, questions.id")
		}).
		Order("created_at DESC, id DESC").
		Find(&quizzes).Error
	return quizzes, err
}

// Update saves the quiz row. The article id is never rewritten.
func (r *GormQuizRepository) Update(ctx context.Context, quiz *models.Quiz) error {
	res := r.db.WithContext(ctx).Model(quiz).
		Updates(map[string]any{
			"title":   quiz.Title,
			"summary": quiz.Summary,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrQuizNotFound
	}
	return nil
}

func (r *GormQuizRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Quiz{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrQuizNotFound
	}
	return nil
}

func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
