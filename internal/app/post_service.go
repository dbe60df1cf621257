package app

import (
	"context"
	"strings"
	"time"

	"gopherblog/internal/model"
)

type PostStore interface {
	Create(post *model.Post) error
	GetByID(id uint) (*model.Post, error)
	GetWithAuthor(id uint) (*model.Post, error)
	List(skip, limit int, publishedOnly bool) ([]model.Post, error)
	ListByAuthor(authorID uint) ([]model.Post, error)
	Update(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

type UserGetter interface {
	GetByID(id uint) (*model.User, error)
}

// AuthorPostsCache caches the per-author post listing. The dirty marker
// shields the short window between a mutation and its read-back.
type AuthorPostsCache interface {
	Get(ctx context.Context, authorID uint) ([]model.Post, bool, error)
	Set(ctx context.Context, authorID uint, posts []model.Post) error
	Delete(ctx context.Context, authorID uint) error
	MarkDirty(ctx context.Context, authorID uint) error
	IsDirty(ctx context.Context, authorID uint) (bool, error)
}

type PostService struct {
	posts     PostStore
	users     UserGetter
	cache     AuthorPostsCache
	publisher EventPublisher
}

type CreatePostInput struct {
	Title    string
	Content  string
	AuthorID uint
}

type UpdatePostInput struct {
	Title       *string
	Content     *string
	IsPublished *bool
}

func NewPostService(posts PostStore, users UserGetter, cache AuthorPostsCache, publisher EventPublisher) *PostService {
	return &PostService{
		posts:     posts,
		users:     users,
		cache:     cache,
		publisher: publisher,
	}
}

// Create checks the author exists before writing; posts start unpublished.
func (s *PostService) Create(input CreatePostInput) (*model.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.Content == "" || input.AuthorID == 0 {
		return nil, ErrInvalidInput
	}

	author, err := s.users.GetByID(input.AuthorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	post := &model.Post{
		Title:    title,
		Content:  input.Content,
		AuthorID: input.AuthorID,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}

	s.invalidateAuthor(input.AuthorID)
	publishAudit(s.publisher, "post", "create", post.ID)
	return post, nil
}

func (s *PostService) List(skip, limit int, publishedOnly bool) ([]model.Post, error) {
	return s.posts.List(skip, limit, publishedOnly)
}

func (s *PostService) GetWithAuthor(id uint) (*model.Post, error) {
	if id == 0 {
		return nil, ErrPostNotFound
	}

	post, err := s.posts.GetWithAuthor(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *PostService) Update(id uint, input UpdatePostInput) (*model.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	fields := map[string]interface{}{}
	if input.Title != nil {
		fields["title"] = strings.TrimSpace(*input.Title)
	}
	if input.Content != nil {
		fields["content"] = *input.Content
	}
	if input.IsPublished != nil {
		fields["is_published"] = *input.IsPublished
	}
	if len(fields) == 0 {
		return post, nil
	}
	fields["updated_at"] = time.Now()

	if err := s.posts.Update(id, fields); err != nil {
		return nil, err
	}

	updated, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.invalidateAuthor(post.AuthorID)
	publishAudit(s.publisher, "post", "update", id)
	return updated, nil
}

func (s *PostService) Delete(id uint) error {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	if err := s.posts.Delete(id); err != nil {
		return err
	}

	s.invalidateAuthor(post.AuthorID)
	publishAudit(s.publisher, "post", "delete", id)
	return nil
}

// ListByAuthor returns the author's posts, an empty slice when the author
// has none or does not exist. Served from the cache when it is clean.
func (s *PostService) ListByAuthor(authorID uint) ([]model.Post, error) {
	ctx := context.Background()
	if s.cache != nil {
		dirty, err := s.cache.IsDirty(ctx, authorID)
		if err == nil && !dirty {
			if cached, hit, cacheErr := s.cache.Get(ctx, authorID); cacheErr == nil && hit {
				return cached, nil
			}
		}
	}

	posts, err := s.posts.ListByAuthor(authorID)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []model.Post{}
	}

	if s.cache != nil {
		if dirty, dirtyErr := s.cache.IsDirty(ctx, authorID); dirtyErr == nil && !dirty {
			_ = s.cache.Set(ctx, authorID, posts)
		}
	}
	return posts, nil
}

func (s *PostService) invalidateAuthor(authorID uint) {
	if s.cache == nil {
		return
	}
	ctx := context.Background()
	_ = s.cache.MarkDirty(ctx, authorID)
	_ = s.cache.Delete(ctx, authorID)
}
