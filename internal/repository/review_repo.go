package repository

import (
	"context"

	"gorm.io/gorm"

	"stylehub_dev_v1_202601/internal/model"
)

// ReviewRepository 评价仓储接口
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	List(ctx context.Context, limit int) ([]model.Review, error)
	Count(ctx context.Context) (int64, error)
}

type reviewRepo struct {
	db *gorm.DB
}

// NewReviewRepository 创建评价仓储
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepo) List(ctx context.Context, limit int) ([]model.Review, error) {
	query := r.db.WithContext(ctx).Order("id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var reviews []model.Review
	err := query.Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Review{}).Count(&count).Error
	return count, err
}
