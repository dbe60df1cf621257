package app

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gopherblog/internal/ai"
	"gopherblog/internal/model"
)

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Create(user *model.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserStore) GetByID(id uint) (*model.User, error) {
	args := m.Called(id)
	var user *model.User
	if args.Get(0) != nil {
		user = args.Get(0).(*model.User)
	}
	return user, args.Error(1)
}

func (m *mockUserStore) GetByUsernameOrEmail(username, email string) (*model.User, error) {
	args := m.Called(username, email)
	var user *model.User
	if args.Get(0) != nil {
		user = args.Get(0).(*model.User)
	}
	return user, args.Error(1)
}

func (m *mockUserStore) GetWithPosts(id uint) (*model.User, error) {
	args := m.Called(id)
	var user *model.User
	if args.Get(0) != nil {
		user = args.Get(0).(*model.User)
	}
	return user, args.Error(1)
}

func (m *mockUserStore) List(skip, limit int) ([]model.User, error) {
	args := m.Called(skip, limit)
	var users []model.User
	if args.Get(0) != nil {
		users = args.Get(0).([]model.User)
	}
	return users, args.Error(1)
}

func (m *mockUserStore) Update(id uint, fields map[string]interface{}) error {
	return m.Called(id, fields).Error(0)
}

func (m *mockUserStore) Delete(id uint) error {
	return m.Called(id).Error(0)
}

type mockPostStore struct{ mock.Mock }

func (m *mockPostStore) Create(post *model.Post) error {
	return m.Called(post).Error(0)
}

func (m *mockPostStore) GetByID(id uint) (*model.Post, error) {
	args := m.Called(id)
	var post *model.Post
	if args.Get(0) != nil {
		post = args.Get(0).(*model.Post)
	}
	return post, args.Error(1)
}

func (m *mockPostStore) GetWithAuthor(id uint) (*model.Post, error) {
	args := m.Called(id)
	var post *model.Post
	if args.Get(0) != nil {
		post = args.Get(0).(*model.Post)
	}
	return post, args.Error(1)
}

func (m *mockPostStore) List(skip, limit int, publishedOnly bool) ([]model.Post, error) {
	args := m.Called(skip, limit, publishedOnly)
	var posts []model.Post
	if args.Get(0) != nil {
		posts = args.Get(0).([]model.Post)
	}
	return posts, args.Error(1)
}

func (m *mockPostStore) ListByAuthor(authorID uint) ([]model.Post, error) {
	args := m.Called(authorID)
	var posts []model.Post
	if args.Get(0) != nil {
		posts = args.Get(0).([]model.Post)
	}
	return posts, args.Error(1)
}

func (m *mockPostStore) CountByAuthor(authorID uint) (int64, error) {
	args := m.Called(authorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPostStore) Update(id uint, fields map[string]interface{}) error {
	return m.Called(id, fields).Error(0)
}

func (m *mockPostStore) Delete(id uint) error {
	return m.Called(id).Error(0)
}

type mockResponseStore struct{ mock.Mock }

func (m *mockResponseStore) Create(resp *model.AIResponse) error {
	return m.Called(resp).Error(0)
}

func (m *mockResponseStore) GetByID(id uint) (*model.AIResponse, error) {
	args := m.Called(id)
	var resp *model.AIResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*model.AIResponse)
	}
	return resp, args.Error(1)
}

func (m *mockResponseStore) List(skip, limit int) ([]model.AIResponse, error) {
	args := m.Called(skip, limit)
	var responses []model.AIResponse
	if args.Get(0) != nil {
		responses = args.Get(0).([]model.AIResponse)
	}
	return responses, args.Error(1)
}

func (m *mockResponseStore) ListByUser(userID uint) ([]model.AIResponse, error) {
	args := m.Called(userID)
	var responses []model.AIResponse
	if args.Get(0) != nil {
		responses = args.Get(0).([]model.AIResponse)
	}
	return responses, args.Error(1)
}

func (m *mockResponseStore) CountByUser(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockResponseStore) Delete(id uint) error {
	return m.Called(id).Error(0)
}

type mockGenerator struct{ mock.Mock }

func (m *mockGenerator) Generate(ctx context.Context, prompt, modelName string) (*ai.Completion, error) {
	args := m.Called(ctx, prompt, modelName)
	var completion *ai.Completion
	if args.Get(0) != nil {
		completion = args.Get(0).(*ai.Completion)
	}
	return completion, args.Error(1)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, event model.AuditEvent) error {
	return m.Called(ctx, event).Error(0)
}

type mockPostsCache struct{ mock.Mock }

func (m *mockPostsCache) Get(ctx context.Context, authorID uint) ([]model.Post, bool, error) {
	args := m.Called(ctx, authorID)
	var posts []model.Post
	if args.Get(0) != nil {
		posts = args.Get(0).([]model.Post)
	}
	return posts, args.Bool(1), args.Error(2)
}

func (m *mockPostsCache) Set(ctx context.Context, authorID uint, posts []model.Post) error {
	return m.Called(ctx, authorID, posts).Error(0)
}

func (m *mockPostsCache) Delete(ctx context.Context, authorID uint) error {
	return m.Called(ctx, authorID).Error(0)
}

func (m *mockPostsCache) MarkDirty(ctx context.Context, authorID uint) error {
	return m.Called(ctx, authorID).Error(0)
}

func (m *mockPostsCache) IsDirty(ctx context.Context, authorID uint) (bool, error) {
	args := m.Called(ctx, authorID)
	return args.Bool(0), args.Error(1)
}
