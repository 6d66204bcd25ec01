package repository

import (
	"context"

	"artmarket/internal/model"

	"gorm.io/gorm"
)

type ArtistRepository interface {
	Create(ctx context.Context, artist *model.Artist) error
	FindByID(ctx context.Context, id string) (*model.Artist, error)
	List(ctx context.Context) ([]model.Artist, error)
	Update(ctx context.Context, artist *model.Artist) error
	Delete(ctx context.Context, id string) error
}

type artistRepoImpl struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepoImpl{
		db: db,
	}
}

func (r *artistRepoImpl) Create(ctx context.Context, artist *model.Artist) error {
	return r.db.WithContext(ctx).Create(artist).Error
}

func (r *artistRepoImpl) FindByID(ctx context.Context, id string) (*model.Artist, error) {
	var artist model.Artist
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&artist).Error

	if err != nil {
		return nil, err
	}

	return &artist, nil
}

func (r *artistRepoImpl) List(ctx context.Context) ([]model.Artist, error) {
	var artists []model.Artist

	err := r.db.WithContext(ctx).Find(&artists).Error
	if err != nil {
		return nil, err
	}

	return artists, nil
}

func (r *artistRepoImpl) Update(ctx context.Context, artist *model.Artist) error {
	return r.db.WithContext(ctx).Save(artist).Error
}

func (r *artistRepoImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Artist{}).Error
}
