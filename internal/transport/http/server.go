package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"gopherblog/internal/ai"
	appsvc "gopherblog/internal/app"
	"gopherblog/internal/bootstrap"
	"gopherblog/internal/cache"
	"gopherblog/internal/platform/rabbitmq"
	"gopherblog/internal/repository"
	"gopherblog/internal/transport/http/handler"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/", healthHandler.Root)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	postRepo := repository.NewPostRepository(app.MySQL)
	responseRepo := repository.NewAIResponseRepository(app.MySQL)

	publisher := rabbitmq.NewAuditPublisher(app.MQConn, app.Config.RabbitMQ.AuditQueue)
	postsCache := cache.NewAuthorPostsCache(
		app.Redis,
		time.Duration(app.Config.Redis.PostListTTLSeconds)*time.Second,
		time.Duration(app.Config.Redis.DirtyMarkTTLSeconds)*time.Second,
	)
	completionClient := ai.NewClient(
		app.Config.OpenAI.BaseURL,
		app.Config.OpenAI.APIKey,
		time.Duration(app.Config.OpenAI.TimeoutSeconds)*time.Second,
	)

	userService := appsvc.NewUserService(userRepo, postRepo, responseRepo, publisher)
	postService := appsvc.NewPostService(postRepo, userRepo, postsCache, publisher)
	aiService := appsvc.NewAIService(responseRepo, userRepo, completionClient, app.Config.OpenAI.DefaultModel, publisher)

	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	aiHandler := handler.NewAIHandler(aiService)

	v1 := router.Group("/api/v1")

	userGroup := v1.Group("/users")
	userGroup.POST("", userHandler.Create)
	userGroup.GET("", userHandler.List)
	userGroup.GET("/:id", userHandler.Get)
	userGroup.PUT("/:id", userHandler.Update)
	userGroup.DELETE("/:id", userHandler.Delete)

	postGroup := v1.Group("/posts")
	postGroup.POST("", postHandler.Create)
	postGroup.GET("", postHandler.List)
	postGroup.GET("/user/:user_id", postHandler.ListByAuthor)
	postGroup.GET("/:id", postHandler.Get)
	postGroup.PUT("/:id", postHandler.Update)
	postGroup.DELETE("/:id", postHandler.Delete)

	aiGroup := v1.Group("/ai")
	aiGroup.POST("/generate", aiHandler.Generate)
	aiGroup.POST("/summarize", aiHandler.Summarize)
	aiGroup.POST("/translate", aiHandler.Translate)
	aiGroup.GET("", aiHandler.List)
	aiGroup.GET("/user/:user_id", aiHandler.ListByUser)
	aiGroup.GET("/:id", aiHandler.Get)
	aiGroup.DELETE("/:id", aiHandler.Delete)

	return router
}
