package service

import (
	"testing"

	"artmarket/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func galleryFixture() []model.Painting {
	return []model.Painting{
		{ID: "p1", Title: "Starry Night Study", Artist: "Van Gogh", Style: "Impressionism", Price: 100, Likes: 5, CreatedAt: 1000},
		{ID: "p2", Title: "Blue Horizon", Artist: "A. Painter", Style: "Abstract", Price: 50, Likes: 12, CreatedAt: 4000},
		{ID: "p3", Title: "Silent Valley", Artist: "B. Sketcher", Style: "Realism", Price: 200, Likes: 0, CreatedAt: 2000},
		{ID: "p4", Title: "Night Market", Artist: "A. Painter", Style: "Abstract", Price: 75, Likes: 3, CreatedAt: 3000},
	}
}

func ids(paintings []model.Painting) []string {
	out := make([]string, 0, len(paintings))
	for _, p := range paintings {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterSortStyleAllKeepsEverything(t *testing.T) {
	items := galleryFixture()

	out := FilterSort(items, GalleryQuery{Section: SectionHome, Style: StyleAll})

	assert.ElementsMatch(t, ids(items), ids(out))
}

func TestFilterSortPriceAscending(t *testing.T) {
	items := galleryFixture()

	out := FilterSort(items, GalleryQuery{Section: SectionHome, Style: StyleAll, Sort: SortPriceAsc})

	require.Len(t, out, len(items))
	for i := 1; i < len(out); i++ {
		assert.LessOrEqual(t, out[i-1].Price, out[i].Price)
	}
}

func TestFilterSortPriceAscendingWithDuplicatePrices(t *testing.T) {
	items := []model.Painting{
		{ID: "a", Price: 50},
		{ID: "b", Price: 50},
		{ID: "c", Price: 20},
	}

	out := FilterSort(items, GalleryQuery{Sort: SortPriceAsc})

	require.Len(t, out, 3)
	assert.Equal(t, "c", out[0].ID)
	// ties keep input order
	assert.Equal(t, []string{"c", "a", "b"}, ids(out))
}

func TestFilterSortPriceDescending(t *testing.T) {
	out := FilterSort(galleryFixture(), GalleryQuery{Sort: SortPriceDesc})

	assert.Equal(t, []string{"p3", "p1", "p4", "p2"}, ids(out))
}

func TestFilterSortScenarioPriceAsc(t *testing.T) {
	items := []model.Painting{
		{ID: "a", Title: "A", Price: 100},
		{ID: "b", Title: "B", Price: 50},
	}

	out := FilterSort(items, GalleryQuery{
		Section: SectionHome,
		Style:   StyleAll,
		Sort:    SortPriceAsc,
	})

	require.Len(t, out, 2)
	assert.Equal(t, "B", out[0].Title)
	assert.Equal(t, "A", out[1].Title)
}

func TestFilterSortBestSellers(t *testing.T) {
	out := FilterSort(galleryFixture(), GalleryQuery{Section: SectionBestSellers})

	require.Len(t, out, 4)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Likes, out[i].Likes)
	}
	assert.Equal(t, "p2", out[0].ID)
	// an item with no recorded likes sorts with the zeros, at the bottom
	assert.Equal(t, "p3", out[3].ID)
}

func TestFilterSortBestSellersOverridesSortOrder(t *testing.T) {
	out := FilterSort(galleryFixture(), GalleryQuery{Section: SectionBestSellers, Sort: SortPriceAsc})

	assert.Equal(t, "p2", out[0].ID, "section ordering wins over the sort dropdown")
}

func TestFilterSortNewArrivals(t *testing.T) {
	out := FilterSort(galleryFixture(), GalleryQuery{Section: SectionNewArrivals})

	assert.Equal(t, []string{"p2", "p4", "p3", "p1"}, ids(out))
}

func TestFilterSortDefaultsToNewestFirst(t *testing.T) {
	out := FilterSort(galleryFixture(), GalleryQuery{Section: SectionHome, Style: StyleAll})

	assert.Equal(t, []string{"p2", "p4", "p3", "p1"}, ids(out))
}

func TestFilterSortSearchIsCaseInsensitive(t *testing.T) {
	out := FilterSort(galleryFixture(), GalleryQuery{Search: "van gogh"})

	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ID)
}

func TestFilterSortSearchMatchesTitleOrArtist(t *testing.T) {
	out := FilterSort(galleryFixture(), GalleryQuery{Search: "night"})

	// "Starry Night Study" and "Night Market" by title
	assert.ElementsMatch(t, []string{"p1", "p4"}, ids(out))
}

func TestFilterSortCategorySectionFiltersByStyle(t *testing.T) {
	out := FilterSort(galleryFixture(), GalleryQuery{Section: "Abstract"})

	assert.ElementsMatch(t, []string{"p2", "p4"}, ids(out))
}

func TestFilterSortStyleFilterAppliesWithinCategorySection(t *testing.T) {
	// a category section plus a non-matching style filter empties the result
	out := FilterSort(galleryFixture(), GalleryQuery{Section: "Abstract", Style: "Realism"})

	assert.Empty(t, out)
}

func TestFilterSortUnmatchedStyleYieldsEmpty(t *testing.T) {
	out := FilterSort(galleryFixture(), GalleryQuery{Style: "Cubism"})

	assert.Empty(t, out)
}

func TestFilterSortEmptyInput(t *testing.T) {
	out := FilterSort(nil, GalleryQuery{Search: "anything", Section: SectionBestSellers, Style: "Abstract"})

	assert.Empty(t, out)
}

func TestFilterSortDoesNotMutateInput(t *testing.T) {
	items := galleryFixture()
	before := ids(items)

	FilterSort(items, GalleryQuery{Sort: SortPriceAsc})

	assert.Equal(t, before, ids(items))
}

func TestSimilarToRanksStyleAboveArtist(t *testing.T) {
	reference := model.Painting{ID: "ref", Style: "Impressionism", Artist: "Van Gogh"}
	items := []model.Painting{
		reference,
		{ID: "artist-only", Style: "Realism", Artist: "Van Gogh", Likes: 50},
		{ID: "style-only", Style: "Impressionism", Artist: "Other", Likes: 1},
		{ID: "style-and-artist", Style: "Impressionism", Artist: "Van Gogh", Likes: 0},
		{ID: "unrelated", Style: "Cubism", Artist: "Nobody", Likes: 99},
	}

	out := SimilarTo(reference, items, 0)

	assert.Equal(t, []string{"style-and-artist", "style-only", "artist-only"}, ids(out))
}

func TestSimilarToExcludesReferenceAndUnrelated(t *testing.T) {
	reference := model.Painting{ID: "ref", Style: "Impressionism", Artist: "Van Gogh"}
	items := []model.Painting{
		reference,
		{ID: "unrelated", Style: "Cubism", Artist: "Nobody"},
	}

	assert.Empty(t, SimilarTo(reference, items, 0))
}

func TestSimilarToLikesBreakTiesWithinGroup(t *testing.T) {
	reference := model.Painting{ID: "ref", Style: "Abstract", Artist: "X"}
	items := []model.Painting{
		{ID: "quiet", Style: "Abstract", Artist: "A", Likes: 1},
		{ID: "popular", Style: "Abstract", Artist: "B", Likes: 10},
	}

	out := SimilarTo(reference, items, 0)

	assert.Equal(t, []string{"popular", "quiet"}, ids(out))
}

func TestSimilarToHonorsLimit(t *testing.T) {
	reference := model.Painting{ID: "ref", Style: "Abstract"}
	items := make([]model.Painting, 0, 6)
	for i := 0; i < 6; i++ {
		items = append(items, model.Painting{ID: string(rune('a' + i)), Style: "Abstract"})
	}

	assert.Len(t, SimilarTo(reference, items, 2), 2)
	// zero limit falls back to the default cap
	assert.Len(t, SimilarTo(reference, items, 0), DefaultSimilarLimit)
}

func TestStylesFirstSeenOrder(t *testing.T) {
	styles := Styles(galleryFixture())

	assert.Equal(t, []string{"All", "Impressionism", "Abstract", "Realism"}, styles)
}

func TestStylesEmptyCatalog(t *testing.T) {
	assert.Equal(t, []string{"All"}, Styles(nil))
}
