package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"quizportal/articles"
	"quizportal/cache"
	"quizportal/config"
	"quizportal/handlers"
	"quizportal/middleware"
	"quizportal/repositories"
	"quizportal/routes"
	"quizportal/services"
)

func main() {
	cfg := config.Load()

	logger, err := config.InitLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := config.InitDB(cfg)
	if err != nil {
		zap.L().Fatal("failed to connect to database", zap.Error(err))
	}
	if err := repositories.Migrate(db); err != nil {
		zap.L().Fatal("failed to migrate database", zap.Error(err))
	}

	redisClient := config.InitRedis(cfg)
	defer redisClient.Close()
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		zap.L().Warn("redis unreachable at startup", zap.Error(err))
	}
	cancelPing()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Articles: RSS feed behind the Redis cache, refreshed on a schedule.
	feed := articles.NewFeedProvider(articles.NewRestyClient(cfg.HTTPTimeout), cfg.ArticleFeedURL)
	provider := articles.NewCachingProvider(feed, cache.NewRedisArticleCache(redisClient), cfg.ArticleCacheTTL)
	refresher := articles.NewRefresher(provider, cfg.HTTPTimeout)
	if err := refresher.Start(cfg.ArticleRefreshSpec); err != nil {
		zap.L().Fatal("failed to schedule article refresh", zap.Error(err))
	}
	defer refresher.Stop()

	hub := services.NewHub()
	go hub.Run(ctx)

	store := repositories.NewGormStore(db)
	quizService := services.NewQuizService(store, provider, hub)
	authService := services.NewAuthService(store.Users(), cache.NewRedisSessionStore(redisClient), cfg.JWTSecret, cfg.SessionTTL)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.NewMetricsBuilder(prometheus.DefaultRegisterer).Build())

	routes.SetupRoutes(router, routes.Handlers{
		Auth: handlers.NewAuthHandler(authService, cfg.SessionCookie, cfg.SessionTTL),
		Quiz: handlers.NewQuizHandler(quizService),
		Live: handlers.NewLiveHandler(hub, cfg.AllowedOrigins),
	}, middleware.NewSessionAuthBuilder(authService, cfg.SessionCookie), prometheus.DefaultGatherer)

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.BindAddress, cfg.Port),
		Handler: router,
	}
	go func() {
		zap.L().Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zap.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("graceful shutdown failed", zap.Error(err))
	}
}
