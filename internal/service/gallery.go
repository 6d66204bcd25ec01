package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"artmarket/internal/model"
	"artmarket/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sections with fixed behavior in the storefront nav. Anything else passed as
// a section is treated as a category name and filters by style.
const (
	SectionHome        = "Home"
	SectionNewArrivals = "New Arrivals"
	SectionBestSellers = "Best Sellers"
	SectionWallArt     = "Wall Art"
)

const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	StyleAll      = "All"
)

// GalleryQuery is the shopper-selected view state: free-text search, active
// nav section, style filter and sort order.
type GalleryQuery struct {
	Search  string
	Section string
	Style   string
	Sort    string
}

func fixedSection(s string) bool {
	switch s {
	case SectionHome, SectionNewArrivals, SectionBestSellers, SectionWallArt:
		return true
	}
	return false
}

// FilterSort derives the visible ordered gallery from the raw catalog. Pure:
// the input slice is not mutated and identical inputs give identical output.
// The stage order is load-bearing — search, then category, then style, then
// ordering — so a category section still honors the style dropdown.
// Ties keep the input order (stable sort, no secondary key).
func FilterSort(items []model.Painting, q GalleryQuery) []model.Painting {
	out := make([]model.Painting, 0, len(items))

	search := strings.ToLower(q.Search)
	for _, p := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Artist), search) {
			continue
		}
		if q.Section != "" && !fixedSection(q.Section) && p.Style != q.Section {
			continue
		}
		if q.Style != "" && q.Style != StyleAll && p.Style != q.Style {
			continue
		}
		out = append(out, p)
	}

	switch {
	case q.Section == SectionNewArrivals:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt > out[j].CreatedAt
		})
	case q.Section == SectionBestSellers:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Likes > out[j].Likes
		})
	case q.Sort == SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case q.Sort == SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt > out[j].CreatedAt
		})
	}

	return out
}

// DefaultSimilarLimit caps a similar-art suggestion list.
const DefaultSimilarLimit = 4

// SimilarTo picks artworks a shopper looking at reference might also like:
// same style ranks above same artist, likes break ranks within a group, and
// the reference itself is never suggested. Unrelated artworks are not padded
// in — an empty result means the catalog has nothing comparable.
func SimilarTo(reference model.Painting, items []model.Painting, limit int) []model.Painting {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	type scored struct {
		painting model.Painting
		score    int
	}

	candidates := make([]scored, 0, len(items))
	for _, p := range items {
		if p.ID == reference.ID {
			continue
		}
		score := 0
		if p.Style == reference.Style {
			score += 2
		}
		if p.Artist == reference.Artist {
			score++
		}
		if score == 0 {
			continue
		}
		candidates = append(candidates, scored{painting: p, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].painting.Likes > candidates[j].painting.Likes
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]model.Painting, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.painting)
	}
	return out
}

// Styles returns the style-filter choices: "All" followed by each distinct
// style in first-seen order.
func Styles(items []model.Painting) []string {
	styles := []string{StyleAll}
	seen := make(map[string]struct{}, len(items))
	for _, p := range items {
		if _, ok := seen[p.Style]; ok {
			continue
		}
		seen[p.Style] = struct{}{}
		styles = append(styles, p.Style)
	}
	return styles
}

type GalleryView struct {
	Paintings []model.Painting `json:"paintings"`
	Styles    []string         `json:"styles"`
}

type GalleryService interface {
	Browse(ctx context.Context, q GalleryQuery) (*GalleryView, error)
	GetPainting(ctx context.Context, id string) (*model.Painting, error)
	SimilarPaintings(ctx context.Context, id string, limit int) ([]model.Painting, error)
	SubmitPainting(ctx context.Context, painting *model.Painting) error
	Like(ctx context.Context, subjectID, paintingID string) (*model.Painting, error)
	Unlike(ctx context.Context, subjectID, paintingID string) (*model.Painting, error)
	LikedPaintings(ctx context.Context, subjectID string) ([]string, error)
	Categories(ctx context.Context) ([]model.Category, error)
	Artists(ctx context.Context) ([]model.Artist, error)
	Settings(ctx context.Context) (*model.SiteSettings, error)
}

type galleryServiceImpl struct {
	paintingRepo repository.PaintingRepository
	categoryRepo repository.CategoryRepository
	artistRepo   repository.ArtistRepository
	settingsRepo repository.SettingsRepository
	likeRepo     repository.LikeRepository
	now          func() time.Time
}

func NewGalleryService(
	paintingRepo repository.PaintingRepository,
	categoryRepo repository.CategoryRepository,
	artistRepo repository.ArtistRepository,
	settingsRepo repository.SettingsRepository,
	likeRepo repository.LikeRepository,
) GalleryService {
	return &galleryServiceImpl{
		paintingRepo: paintingRepo,
		categoryRepo: categoryRepo,
		artistRepo:   artistRepo,
		settingsRepo: settingsRepo,
		likeRepo:     likeRepo,
		now:          time.Now,
	}
}

// Browse recomputes the gallery from a fresh catalog snapshot on every call;
// there is no cached view state to invalidate.
func (s *galleryServiceImpl) Browse(ctx context.Context, q GalleryQuery) (*GalleryView, error) {
	paintings, err := s.paintingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &GalleryView{
		Paintings: FilterSort(paintings, q),
		Styles:    Styles(paintings),
	}, nil
}

func (s *galleryServiceImpl) GetPainting(ctx context.Context, id string) (*model.Painting, error) {
	painting, err := s.paintingRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaintingNotFound
	}
	if err != nil {
		return nil, err
	}
	return painting, nil
}

// SimilarPaintings suggests catalog artworks close in style to the given one.
func (s *galleryServiceImpl) SimilarPaintings(ctx context.Context, id string, limit int) ([]model.Painting, error) {
	reference, err := s.GetPainting(ctx, id)
	if err != nil {
		return nil, err
	}

	paintings, err := s.paintingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return SimilarTo(*reference, paintings, limit), nil
}

func (s *galleryServiceImpl) SubmitPainting(ctx context.Context, painting *model.Painting) error {
	if painting.ID == "" {
		painting.ID = uuid.NewString()
	}
	painting.Likes = 0
	painting.CreatedAt = s.now().UnixMilli()
	return s.paintingRepo.Create(ctx, painting)
}

// Like records the per-subject relation and bumps the counter only when the
// relation did not exist yet, so a repeated like is a no-op instead of a
// double count.
func (s *galleryServiceImpl) Like(ctx context.Context, subjectID, paintingID string) (*model.Painting, error) {
	if _, err := s.GetPainting(ctx, paintingID); err != nil {
		return nil, err
	}

	created, err := s.likeRepo.Add(ctx, &model.Like{
		SubjectID:  subjectID,
		PaintingID: paintingID,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return nil, err
	}

	if created {
		if err := s.paintingRepo.AddLikes(ctx, paintingID, 1); err != nil {
			return nil, err
		}
	}

	return s.GetPainting(ctx, paintingID)
}

func (s *galleryServiceImpl) Unlike(ctx context.Context, subjectID, paintingID string) (*model.Painting, error) {
	if _, err := s.GetPainting(ctx, paintingID); err != nil {
		return nil, err
	}

	removed, err := s.likeRepo.Remove(ctx, subjectID, paintingID)
	if err != nil {
		return nil, err
	}

	if removed {
		if err := s.paintingRepo.AddLikes(ctx, paintingID, -1); err != nil &&
			!errors.Is(err, gorm.ErrRecordNotFound) {
			// counter already at zero; the relation removal stands
			return nil, err
		}
	}

	return s.GetPainting(ctx, paintingID)
}

func (s *galleryServiceImpl) LikedPaintings(ctx context.Context, subjectID string) ([]string, error) {
	return s.likeRepo.ListBySubject(ctx, subjectID)
}

func (s *galleryServiceImpl) Categories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *galleryServiceImpl) Artists(ctx context.Context) ([]model.Artist, error) {
	return s.artistRepo.List(ctx)
}

func (s *galleryServiceImpl) Settings(ctx context.Context) (*model.SiteSettings, error) {
	return s.settingsRepo.Get(ctx)
}
