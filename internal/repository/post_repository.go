package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gopherblog/internal/model"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *model.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("create post failed: %w", err)
	}
	return nil
}

func (r *PostRepository) GetByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query post by id failed: %w", err)
	}
	return &post, nil
}

func (r *PostRepository) GetWithAuthor(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.Preload("Author").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query post with author failed: %w", err)
	}
	return &post, nil
}

func (r *PostRepository) List(skip, limit int, publishedOnly bool) ([]model.Post, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 200 {
		limit = 100
	}

	query := r.db.Preload("Author")
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var posts []model.Post
	if err := query.Offset(skip).Limit(limit).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts failed: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) ListByAuthor(authorID uint) ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.Where("author_id = ?", authorID).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts by author failed: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Post{}).Where("author_id = ?", authorID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count posts by author failed: %w", err)
	}
	return count, nil
}

func (r *PostRepository) Update(id uint, fields map[string]interface{}) error {
	if err := r.db.Model(&model.Post{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return fmt.Errorf("update post failed: %w", err)
	}
	return nil
}

func (r *PostRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Post{}, id).Error; err != nil {
		return fmt.Errorf("delete post failed: %w", err)
	}
	return nil
}
