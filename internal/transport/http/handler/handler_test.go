package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"gopherblog/internal/ai"
	"gopherblog/internal/app"
	"gopherblog/internal/model"
)

// Function-field stubs keep each test to the one behavior it cares about;
// unset fields return zero values.

type stubUserStore struct {
	create               func(user *model.User) error
	getByID              func(id uint) (*model.User, error)
	getByUsernameOrEmail func(username, email string) (*model.User, error)
	getWithPosts         func(id uint) (*model.User, error)
	list                 func(skip, limit int) ([]model.User, error)
	update               func(id uint, fields map[string]interface{}) error
	del                  func(id uint) error
}

func (s *stubUserStore) Create(user *model.User) error {
	if s.create == nil {
		return nil
	}
	return s.create(user)
}

func (s *stubUserStore) GetByID(id uint) (*model.User, error) {
	if s.getByID == nil {
		return nil, nil
	}
	return s.getByID(id)
}

func (s *stubUserStore) GetByUsernameOrEmail(username, email string) (*model.User, error) {
	if s.getByUsernameOrEmail == nil {
		return nil, nil
	}
	return s.getByUsernameOrEmail(username, email)
}

func (s *stubUserStore) GetWithPosts(id uint) (*model.User, error) {
	if s.getWithPosts == nil {
		return nil, nil
	}
	return s.getWithPosts(id)
}

func (s *stubUserStore) List(skip, limit int) ([]model.User, error) {
	if s.list == nil {
		return nil, nil
	}
	return s.list(skip, limit)
}

func (s *stubUserStore) Update(id uint, fields map[string]interface{}) error {
	if s.update == nil {
		return nil
	}
	return s.update(id, fields)
}

func (s *stubUserStore) Delete(id uint) error {
	if s.del == nil {
		return nil
	}
	return s.del(id)
}

type stubPostStore struct {
	create        func(post *model.Post) error
	getByID       func(id uint) (*model.Post, error)
	getWithAuthor func(id uint) (*model.Post, error)
	list          func(skip, limit int, publishedOnly bool) ([]model.Post, error)
	listByAuthor  func(authorID uint) ([]model.Post, error)
	update        func(id uint, fields map[string]interface{}) error
	del           func(id uint) error
}

func (s *stubPostStore) Create(post *model.Post) error {
	if s.create == nil {
		return nil
	}
	return s.create(post)
}

func (s *stubPostStore) GetByID(id uint) (*model.Post, error) {
	if s.getByID == nil {
		return nil, nil
	}
	return s.getByID(id)
}

func (s *stubPostStore) GetWithAuthor(id uint) (*model.Post, error) {
	if s.getWithAuthor == nil {
		return nil, nil
	}
	return s.getWithAuthor(id)
}

func (s *stubPostStore) List(skip, limit int, publishedOnly bool) ([]model.Post, error) {
	if s.list == nil {
		return nil, nil
	}
	return s.list(skip, limit, publishedOnly)
}

func (s *stubPostStore) ListByAuthor(authorID uint) ([]model.Post, error) {
	if s.listByAuthor == nil {
		return nil, nil
	}
	return s.listByAuthor(authorID)
}

func (s *stubPostStore) Update(id uint, fields map[string]interface{}) error {
	if s.update == nil {
		return nil
	}
	return s.update(id, fields)
}

func (s *stubPostStore) Delete(id uint) error {
	if s.del == nil {
		return nil
	}
	return s.del(id)
}

type stubResponseStore struct {
	create     func(resp *model.AIResponse) error
	getByID    func(id uint) (*model.AIResponse, error)
	list       func(skip, limit int) ([]model.AIResponse, error)
	listByUser func(userID uint) ([]model.AIResponse, error)
	del        func(id uint) error
}

func (s *stubResponseStore) Create(resp *model.AIResponse) error {
	if s.create == nil {
		return nil
	}
	return s.create(resp)
}

func (s *stubResponseStore) GetByID(id uint) (*model.AIResponse, error) {
	if s.getByID == nil {
		return nil, nil
	}
	return s.getByID(id)
}

func (s *stubResponseStore) List(skip, limit int) ([]model.AIResponse, error) {
	if s.list == nil {
		return nil, nil
	}
	return s.list(skip, limit)
}

func (s *stubResponseStore) ListByUser(userID uint) ([]model.AIResponse, error) {
	if s.listByUser == nil {
		return nil, nil
	}
	return s.listByUser(userID)
}

func (s *stubResponseStore) Delete(id uint) error {
	if s.del == nil {
		return nil
	}
	return s.del(id)
}

type stubPostCounter struct{ count int64 }

func (s stubPostCounter) CountByAuthor(uint) (int64, error) { return s.count, nil }

type stubResponseCounter struct{ count int64 }

func (s stubResponseCounter) CountByUser(uint) (int64, error) { return s.count, nil }

type stubGenerator struct {
	generate func(ctx context.Context, prompt, modelName string) (*ai.Completion, error)
}

func (s *stubGenerator) Generate(ctx context.Context, prompt, modelName string) (*ai.Completion, error) {
	if s.generate == nil {
		return &ai.Completion{}, nil
	}
	return s.generate(ctx, prompt, modelName)
}

// newTestRouter wires the same route table as the real server over the
// given stores.
func newTestRouter(users *stubUserStore, posts *stubPostStore, responses *stubResponseStore, generator *stubGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)

	userService := app.NewUserService(users, stubPostCounter{}, stubResponseCounter{}, nil)
	postService := app.NewPostService(posts, users, nil, nil)
	aiService := app.NewAIService(responses, users, generator, "", nil)

	userHandler := NewUserHandler(userService)
	postHandler := NewPostHandler(postService)
	aiHandler := NewAIHandler(aiService)

	router := gin.New()
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
