// Package repositories is the gorm-backed persistence layer for quizzes,
// their questions and the staff users that author them.
package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"quizportal/models"
)

var (
	ErrQuizNotFound = errors.New("quiz not found")
	ErrUserNotFound = errors.New("user not found")
	ErrDuplicate    = errors.New("duplicate record")
)

// Store groups the repositories and scopes them to one transaction on demand.
type Store interface {
	Quizzes() QuizRepository
	Questions() QuestionRepository
	Users() UserRepository

	// Transaction runs fn against a Store bound to a single database
	// transaction. The transaction commits when fn returns nil and rolls
	// back on any error or panic.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Quizzes() QuizRepository {
	return &GormQuizRepository{db: s.db}
}

func (s *GormStore) Questions() QuestionRepository {
	return &GormQuestionRepository{db: s.db}
}

func (s *GormStore) Users() UserRepository {
	return &GormUserRepository{db: s.db}
}

func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

// Migrate creates or updates the tables this service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
	)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
