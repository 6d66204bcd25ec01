package service

import (
	"context"
	"errors"
	"time"

	"artmarket/internal/model"
	"artmarket/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrArtistNotFound = errors.New("artist not found")

// AdminService is the back-office surface: painting/category/artist CRUD,
// order listing and the site-settings singleton.
type AdminService interface {
	CreatePainting(ctx context.Context, painting *model.Painting) error
	UpdatePainting(ctx context.Context, painting *model.Painting) error
	DeletePainting(ctx context.Context, id string) error
	ListPaintings(ctx context.Context) ([]model.Painting, error)

	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]model.Category, error)

	CreateArtist(ctx context.Context, artist *model.Artist) error
	UpdateArtist(ctx context.Context, artist *model.Artist) error
	DeleteArtist(ctx context.Context, id string) error
	ListArtists(ctx context.Context) ([]model.Artist, error)

	ListOrders(ctx context.Context) ([]model.Order, error)

	GetSettings(ctx context.Context) (*model.SiteSettings, error)
	SaveSettings(ctx context.Context, settings *model.SiteSettings) error
}

type adminServiceImpl struct {
	paintingRepo repository.PaintingRepository
	categoryRepo repository.CategoryRepository
	artistRepo   repository.ArtistRepository
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
	now          func() time.Time
}

func NewAdminService(
	paintingRepo repository.PaintingRepository,
	categoryRepo repository.CategoryRepository,
	artistRepo repository.ArtistRepository,
	orderRepo repository.OrderRepository,
	settingsRepo repository.SettingsRepository,
) AdminService {
	return &adminServiceImpl{
		paintingRepo: paintingRepo,
		categoryRepo: categoryRepo,
		artistRepo:   artistRepo,
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
}

func (s *adminServiceImpl) CreatePainting(ctx context.Context, painting *model.Painting) error {
	if painting.Title == "" {
		return &ValidationError{Field: "title"}
	}
	if painting.Artist == "" {
		return &ValidationError{Field: "artist"}
	}
	if painting.Style == "" {
		return &ValidationError{Field: "style"}
	}
	if painting.Price < 0 {
		return &ValidationError{Field: "price"}
	}

	if painting.ID == "" {
		painting.ID = uuid.NewString()
	}
	painting.Likes = 0
	painting.CreatedAt = s.now().UnixMilli()
	return s.paintingRepo.Create(ctx, painting)
}

func (s *adminServiceImpl) UpdatePainting(ctx context.Context, painting *model.Painting) error {
	existing, err := s.paintingRepo.FindByID(ctx, painting.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPaintingNotFound
	}
	if err != nil {
		return err
	}

	// likes and creation time are not editable from the back office
	painting.Likes = existing.Likes
	painting.CreatedAt = existing.CreatedAt
	return s.paintingRepo.Update(ctx, painting)
}

func (s *adminServiceImpl) DeletePainting(ctx context.Context, id string) error {
	return s.paintingRepo.Delete(ctx, id)
}

func (s *adminServiceImpl) ListPaintings(ctx context.Context) ([]model.Painting, error) {
	return s.paintingRepo.List(ctx)
}

func (s *adminServiceImpl) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name"}
	}

	category := &model.Category{
		ID:   uuid.NewString(),
		Name: name,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *adminServiceImpl) DeleteCategory(ctx context.Context, id string) error {
	return s.categoryRepo.Delete(ctx, id)
}

func (s *adminServiceImpl) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *adminServiceImpl) CreateArtist(ctx context.Context, artist *model.Artist) error {
	if artist.Name == "" {
		return &ValidationError{Field: "name"}
	}
	if artist.ID == "" {
		artist.ID = uuid.NewString()
	}
	return s.artistRepo.Create(ctx, artist)
}

func (s *adminServiceImpl) UpdateArtist(ctx context.Context, artist *model.Artist) error {
	if _, err := s.artistRepo.FindByID(ctx, artist.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArtistNotFound
		}
		return err
	}
	return s.artistRepo.Update(ctx, artist)
}

func (s *adminServiceImpl) DeleteArtist(ctx context.Context, id string) error {
	return s.artistRepo.Delete(ctx, id)
}

func (s *adminServiceImpl) ListArtists(ctx context.Context) ([]model.Artist, error) {
	return s.artistRepo.List(ctx)
}

func (s *adminServiceImpl) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.List(ctx)
}

func (s *adminServiceImpl) GetSettings(ctx context.Context) (*model.SiteSettings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *adminServiceImpl) SaveSettings(ctx context.Context, settings *model.SiteSettings) error {
	return s.settingsRepo.Save(ctx, settings)
}
