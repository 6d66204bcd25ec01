package repository

import (
	"context"

	"artmarket/internal/model"

	"gorm.io/gorm"
)

type PaintingRepository interface {
	Create(ctx context.Context, painting *model.Painting) error
	FindByID(ctx context.Context, id string) (*model.Painting, error)
	List(ctx context.Context) ([]model.Painting, error)
	Update(ctx context.Context, painting *model.Painting) error
	Delete(ctx context.Context, id string) error
	// AddLikes shifts the like counter by delta, clamped so it never goes
	// below zero.
	AddLikes(ctx context.Context, id string, delta int64) error
}

type paintingRepoImpl struct {
	db *gorm.DB
}

func NewPaintingRepository(db *gorm.DB) PaintingRepository {
	return &paintingRepoImpl{
		db: db,
	}
}

func (r *paintingRepoImpl) Create(ctx context.Context, painting *model.Painting) error {
	return r.db.WithContext(ctx).Create(painting).Error
}

func (r *paintingRepoImpl) FindByID(ctx context.Context, id string) (*model.Painting, error) {
	var painting model.Painting
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&painting).Error

	if err != nil {
		return nil, err
	}

	return &painting, nil
}

func (r *paintingRepoImpl) List(ctx context.Context) ([]model.Painting, error) {
	var paintings []model.Painting

	err := r.db.WithContext(ctx).Find(&paintings).Error
	if err != nil {
		return nil, err
	}

	return paintings, nil
}

func (r *paintingRepoImpl) Update(ctx context.Context, painting *model.Painting) error {
	return r.db.WithContext(ctx).Save(painting).Error
}

func (r *paintingRepoImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Painting{}).Error
}

func (r *paintingRepoImpl) AddLikes(ctx context.Context, id string, delta int64) error {
	result := r.db.WithContext(ctx).Model(&model.Painting{}).
		Where("id = ?", id).
		Where("likes + ? >= 0", delta).
		Update("likes", gorm.Expr("likes + ?", delta))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
