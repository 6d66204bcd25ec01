package repository

import (
	"context"
	"errors"

	"artmarket/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	Add(ctx context.Context, like *model.Like) (created bool, err error)
	Remove(ctx context.Context, subjectID, paintingID string) (removed bool, err error)
	Exists(ctx context.Context, subjectID, paintingID string) (bool, error)
	ListBySubject(ctx context.Context, subjectID string) ([]string, error)
}

type likeRepoImpl struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepoImpl{
		db: db,
	}
}

func (r *likeRepoImpl) Add(ctx context.Context, like *model.Like) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(like)

	if result.Error != nil {
		// sqlite may surface the conflict as a duplicate-key error instead
		// of swallowing it
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *likeRepoImpl) Remove(ctx context.Context, subjectID, paintingID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("subject_id = ? AND painting_id = ?", subjectID, paintingID).
		Delete(&model.Like{})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *likeRepoImpl) Exists(ctx context.Context, subjectID, paintingID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("subject_id = ? AND painting_id = ?", subjectID, paintingID).
		Count(&count).Error

	return count > 0, err
}

func (r *likeRepoImpl) ListBySubject(ctx context.Context, subjectID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("subject_id = ?", subjectID).
		Pluck("painting_id", &ids).Error

	if err != nil {
		return nil, err
	}

	return ids, nil
}
