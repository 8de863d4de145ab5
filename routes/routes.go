package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"quizportal/handlers"
	"quizportal/middleware"
)

type Handlers struct {
	Auth *handlers.AuthHandler
	Quiz *handlers.QuizHandler
	Live *handlers.LiveHandler
}

func SetupRoutes(router *gin.Engine, h Handlers, session *middleware.SessionAuthBuilder, gatherer prometheus.Gatherer) {
	user := router.Group("/user")
	{
		user.POST("/register", h.Auth.Register)
		user.POST("/login", h.Auth.Login)
		user.POST("/logout", h.Auth.Logout)
	}

	// Pages send the browser to the login screen, data routes answer 401.
	pages := router.Group("/")
	pages.Use(session.Redirect().Build())
	{
		pages.GET("/quiz", h.Quiz.Index)
		pages.GET("/quiz/create", h.Quiz.StartCreate)
		pages.GET("/quiz/edit/:id", h.Quiz.StartEdit)
		pages.GET("/quiz/:id", h.Quiz.GetForDisplay)
		pages.GET("/ws/quizzes", h.Live.QuizEvents)
	}

	api := router.Group("/quiz")
	api.Use(session.Build())
	{
		api.POST("/create", h.Quiz.SubmitCreate)
		api.POST("/edit/:id", h.Quiz.SubmitEdit)
		api.GET("/all", h.Quiz.ListAll)
		api.DELETE("/:id", h.Quiz.Delete)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
