package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"quizportal/articles"
	"quizportal/dto"
	"quizportal/models"
	"quizportal/repositories"
)

var (
	ErrQuizNotFound = repositories.ErrQuizNotFound
	// ErrArticleNotSelected means the submitted article id is not one of the
	// candidates the form was built with.
	ErrArticleNotSelected = errors.New("selected article is not among the candidates")
)

type QuizService struct {
	store    repositories.Store
	articles articles.Provider
	events   QuizEventPublisher
}

func NewQuizService(store repositories.Store, provider articles.Provider, events QuizEventPublisher) *QuizService {
	if events == nil {
		events = noopPublisher{}
	}
	return &QuizService{
		store:    store,
		articles: provider,
		events:   events,
	}
}

// StartCreate returns an empty authoring form seeded with the candidate articles.
func (s *QuizService) StartCreate(ctx context.Context) (dto.CreateQuizViewDto, error) {
	list, err := s.articles.GetRecentArticles(ctx, articles.RecentCount)
	if err != nil {
		return dto.CreateQuizViewDto{}, fmt.Errorf("failed to load articles: %w", err)
	}
	return dto.CreateQuizViewDto{
		ArticleList: list,
		QuestionArr: make([]dto.QuestionDto, models.QuestionsPerQuiz),
	}, nil
}

// SubmitCreate validates the form and stores the quiz for the selected article.
// A quiz that already exists for the article is replaced: its row is refreshed
// and its questions are swapped for the submitted ones.
func (s *QuizService) SubmitCreate(ctx context.Context, input dto.CreateQuizViewDto) (uint, error) {
	if err := ValidateQuestions(input.QuestionArr); err != nil {
		recordWrite("create", err)
		return 0, err
	}

	article, ok := dto.FindArticle(input.ArticleList, input.SelectedArticleID)
	if !ok {
		recordWrite("create", ErrArticleNotSelected)
		return 0, ErrArticleNotSelected
	}

	var (
		quiz     models.Quiz
		replaced bool
	)
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		var err error
		quiz, replaced, err = upsertForArticle(ctx, tx, article)
		if err != nil {
			return err
		}
		return createQuestions(ctx, tx, quiz.ID, input.QuestionArr)
	})
	recordWrite("create", err)
	if err != nil {
		return 0, fmt.Errorf("failed to save quiz for article %q: %w", article.ArticleID, err)
	}

	if replaced {
		zap.L().Info("quiz replaced", zap.Uint("quiz_id", quiz.ID), zap.String("article_id", quiz.ArticleID))
		s.events.PublishQuizEvent(EventQuizUpdated, quiz.ID)
	} else {
		zap.L().Info("quiz created", zap.Uint("quiz_id", quiz.ID), zap.String("article_id", quiz.ArticleID))
		s.events.PublishQuizEvent(EventQuizCreated, quiz.ID)
	}
	return quiz.ID, nil
}

// StartEdit returns the authoring form pre-filled from the stored quiz.
func (s *QuizService) StartEdit(ctx context.Context, quizID uint) (dto.CreateQuizViewDto, error) {
	quiz, err := s.store.Quizzes().Get(ctx, quizID)
	if err != nil {
		return dto.CreateQuizViewDto{}, err
	}
	questions, err := s.store.Questions().GetAllForQuiz(ctx, quiz.ID)
	if err != nil {
		return dto.CreateQuizViewDto{}, err
	}
	list, err := s.articles.GetRecentArticles(ctx, articles.RecentCount)
	if err != nil {
		return dto.CreateQuizViewDto{}, fmt.Errorf("failed to load articles: %w", err)
	}

	return dto.CreateQuizViewDto{
		QuizID:            quiz.ID,
		SelectedArticleID: quiz.ArticleID,
		QuestionArr:       dto.QuestionsToDtos(questions),
		ArticleList:       list,
	}, nil
}

// SubmitEdit replaces the questions of input.QuizID. The article is immutable.
func (s *QuizService) SubmitEdit(ctx context.Context, input dto.CreateQuizViewDto) error {
	if err := ValidateQuestions(input.QuestionArr); err != nil {
		recordWrite("edit", err)
		return err
	}

	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		quiz, err := tx.Quizzes().Get(ctx, input.QuizID)
		if err != nil {
			return err
		}
		if err := tx.Quizzes().Update(ctx, &quiz); err != nil {
			return fmt.Errorf("failed to update quiz: %w", err)
		}
		if _, err := tx.Questions().DeleteForQuiz(ctx, quiz.ID); err != nil {
			return fmt.Errorf("failed to delete questions: %w", err)
		}
		return createQuestions(ctx, tx, quiz.ID, input.QuestionArr)
	})
	recordWrite("edit", err)
	if err != nil {
		return err
	}

	zap.L().Info("quiz edited", zap.Uint("quiz_id", input.QuizID))
	s.events.PublishQuizEvent(EventQuizUpdated, input.QuizID)
	return nil
}

func (s *QuizService) ListAll(ctx context.Context) ([]dto.QuizDto, error) {
	quizzes, err := s.store.Quizzes().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.QuizzesToDtos(quizzes), nil
}

// Delete removes the quiz and its questions.
func (s *QuizService) Delete(ctx context.Context, quizID uint) error {
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		if _, err := tx.Quizzes().Get(ctx, quizID); err != nil {
			return err
		}
		if _, err := tx.Questions().DeleteForQuiz(ctx, quizID); err != nil {
			return err
		}
		return tx.Quizzes().Delete(ctx, quizID)
	})
	recordWrite("delete", err)
	if err != nil {
		return err
	}

	zap.L().Info("quiz deleted", zap.Uint("quiz_id", quizID))
	s.events.PublishQuizEvent(EventQuizDeleted, quizID)
	return nil
}

func (s *QuizService) GetForDisplay(ctx context.Context, quizID uint) (dto.QuizViewDto, error) {
	quiz, err := s.store.Quizzes().Get(ctx, quizID)
	if err != nil {
		return dto.QuizViewDto{}, err
	}
	questions, err := s.store.Questions().GetAllForQuiz(ctx, quiz.ID)
	if err != nil {
		return dto.QuizViewDto{}, err
	}
	quiz.Questions = questions

	return dto.QuizViewDto{
		Quiz:      dto.QuizToDto(quiz),
		Questions: dto.QuestionsToDtos(questions),
	}, nil
}

// upsertForArticle returns the quiz row for the article, creating it or
// clearing the questions of the existing one.
func upsertForArticle(ctx context.Context, tx repositories.Store, article dto.ArticleDto) (models.Quiz, bool, error) {
	fresh := dto.QuizFromArticle(article)

	existing, err := tx.Quizzes().GetByArticle(ctx, article.ArticleID)
	if errors.Is(err, repositories.ErrQuizNotFound) {
		if err := tx.Quizzes().Create(ctx, &fresh); err != nil {
			return models.Quiz{}, false, fmt.Errorf("failed to create quiz: %w", err)
		}
		return fresh, false, nil
	}
	if err != nil {
		return models.Quiz{}, false, err
	}

	existing.Title = fresh.Title
	existing.Summary = fresh.Summary
	if err := tx.Quizzes().Update(ctx, &existing); err != nil {
		return models.Quiz{}, false, fmt.Errorf("failed to update quiz: %w", err)
	}
	if _, err := tx.Questions().DeleteForQuiz(ctx, existing.ID); err != nil {
		return models.Quiz{}, false, fmt.Errorf("failed to delete questions: %w", err)
	}
	return existing, true, nil
}

func createQuestions(ctx context.Context, tx repositories.Store, quizID uint, questions []dto.QuestionDto) error {
	for i, q := range questions {
		question := dto.QuestionFromDto(q, quizID, i)
		if err := tx.Questions().Create(ctx, &question); err != nil {
			return fmt.Errorf("failed to create question %d: %w", i+1, err)
		}
	}
	return nil
}
