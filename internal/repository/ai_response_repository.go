package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gopherblog/internal/model"
)

type AIResponseRepository struct {
	db *gorm.DB
}

func NewAIResponseRepository(db *gorm.DB) *AIResponseRepository {
	return &AIResponseRepository{db: db}
}

func (r *AIResponseRepository) Create(resp *model.AIResponse) error {
	if err := r.db.Create(resp).Error; err != nil {
		return fmt.Errorf("create ai response failed: %w", err)
	}
	return nil
}

func (r *AIResponseRepository) GetByID(id uint) (*model.AIResponse, error) {
	var resp model.AIResponse
	if err := r.db.First(&resp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query ai response by id failed: %w", err)
	}
	return &resp, nil
}

func (r *AIResponseRepository) List(skip, limit int) ([]model.AIResponse, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 200 {
		limit = 100
	}

	var responses []model.AIResponse
	if err := r.db.Offset(skip).Limit(limit).Find(&responses).Error; err != nil {
		return nil, fmt.Errorf("list ai responses failed: %w", err)
	}
	return responses, nil
}

func (r *AIResponseRepository) ListByUser(userID uint) ([]model.AIResponse, error) {
	var responses []model.AIResponse
	if err := r.db.Where("user_id = ?", userID).Find(&responses).Error; err != nil {
		return nil, fmt.Errorf("list ai responses by user failed: %w", err)
	}
	return responses, nil
}

func (r *AIResponseRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.AIResponse{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count ai responses by user failed: %w", err)
	}
	return count, nil
}

func (r *AIResponseRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.AIResponse{}, id).Error; err != nil {
		return fmt.Errorf("delete ai response failed: %w", err)
	}
	return nil
}
