package repository

import (
	"context"
	"errors"

	"artmarket/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository interface {
	// Get returns the singleton settings row, or a zero-value record when
	// none has been saved yet.
	Get(ctx context.Context) (*model.SiteSettings, error)
	Save(ctx context.Context, settings *model.SiteSettings) error
}

type settingsRepoImpl struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepoImpl{
		db: db,
	}
}

func (r *settingsRepoImpl) Get(ctx context.Context) (*model.SiteSettings, error) {
	var settings model.SiteSettings
	err := r.db.WithContext(ctx).
		Where("id = ?", model.SiteSettingsID).
		First(&settings).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.SiteSettings{ID: model.SiteSettingsID}, nil
	}
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *settingsRepoImpl) Save(ctx context.Context, settings *model.SiteSettings) error {
	settings.ID = model.SiteSettingsID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(settings).Error
}
