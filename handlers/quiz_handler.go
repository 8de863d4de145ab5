package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quizportal/dto"
	"quizportal/middleware"
	"quizportal/services"
)

const quizListPath = "/quiz"

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

func (h *QuizHandler) StartCreate(c *gin.Context) {
	view, err := h.quizService.StartCreate(c.Request.Context())
	if err != nil {
		internalError(c, "failed to start quiz creation", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *QuizHandler) SubmitCreate(c *gin.Context) {
	var input dto.CreateQuizViewDto
	if err := c.ShouldBindJSON(&input); err != nil {
		input.ErrorMessage = err.Error()
		c.JSON(http.StatusUnprocessableEntity, input)
		return
	}

	quizID, err := h.quizService.SubmitCreate(c.Request.Context(), input)
	var ve *services.ValidationError
	switch {
	case err == nil:
		zap.L().Info("quiz submitted", zap.Uint("quiz_id", quizID), zap.Uint("user_id", currentUser(c)))
		c.Redirect(http.StatusSeeOther, quizListPath)
	case errors.As(err, &ve):
		input.ErrorMessage = ve.Message
		c.JSON(http.StatusUnprocessableEntity, input)
	case errors.Is(err, services.ErrArticleNotSelected):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"view": "edit", "model": input})
	default:
		internalError(c, "failed to create quiz", err)
	}
}

func (h *QuizHandler) StartEdit(c *gin.Context) {
	quizID, ok := quizIDParam(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, quizListPath)
		return
	}

	view, err := h.quizService.StartEdit(c.Request.Context(), quizID)
	if err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.Redirect(http.StatusSeeOther, quizListPath)
			return
		}
		internalError(c, "failed to load quiz for edit", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *QuizHandler) SubmitEdit(c *gin.Context) {
	quizID, ok := quizIDParam(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, quizListPath)
		return
	}

	var input dto.CreateQuizViewDto
	if err := c.ShouldBindJSON(&input); err != nil {
		input.QuizID = quizID
		input.ErrorMessage = err.Error()
		c.JSON(http.StatusUnprocessableEntity, input)
		return
	}
	// The path names the quiz; a body id cannot retarget the edit.
	input.QuizID = quizID

	err := h.quizService.SubmitEdit(c.Request.Context(), input)
	var ve *services.ValidationError
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, quizListPath)
	case errors.As(err, &ve):
		input.ErrorMessage = ve.Message
		c.JSON(http.StatusUnprocessableEntity, input)
	case errors.Is(err, services.ErrQuizNotFound):
		c.Redirect(http.StatusSeeOther, quizListPath)
	default:
		internalError(c, "failed to edit quiz", err)
	}
}

// Index and ListAll answer the same listing; Index backs the page, ListAll
// the table's data source.
func (h *QuizHandler) Index(c *gin.Context) {
	h.ListAll(c)
}

func (h *QuizHandler) ListAll(c *gin.Context) {
	quizzes, err := h.quizService.ListAll(c.Request.Context())
	if err != nil {
		internalError(c, "failed to list quizzes", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": quizzes})
}

func (h *QuizHandler) Delete(c *gin.Context) {
	quizID, ok := quizIDParam(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Error while deleting"})
		return
	}

	if err := h.quizService.Delete(c.Request.Context(), quizID); err != nil {
		if !errors.Is(err, services.ErrQuizNotFound) {
			zap.L().Error("failed to delete quiz", zap.Uint("quiz_id", quizID), zap.Error(err))
		}
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Error while deleting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Delete successful"})
}

func (h *QuizHandler) GetForDisplay(c *gin.Context) {
	quizID, ok := quizIDParam(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, quizListPath)
		return
	}

	view, err := h.quizService.GetForDisplay(c.Request.Context(), quizID)
	if err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.Redirect(http.StatusSeeOther, quizListPath)
			return
		}
		internalError(c, "failed to load quiz", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func quizIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func currentUser(c *gin.Context) uint {
	id, _ := middleware.UserID(c)
	return id
}

func internalError(c *gin.Context, msg string, err error) {
	zap.L().Error(msg, zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
