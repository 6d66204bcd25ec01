package repository

import (
	"context"
	"testing"

	"artmarket/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// one shared in-memory database per test, kept alive across pooled
	// connections
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Painting{},
		&model.Category{},
		&model.Artist{},
		&model.Order{},
		&model.SiteSettings{},
		&model.User{},
		&model.Like{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestOrderAddressRoundTripsVerbatim(t *testing.T) {
	repo := NewOrderRepository(openTestDB(t))
	ctx := context.Background()

	// odd casing and stray whitespace must survive the round trip untouched
	address := model.ShippingAddress{
		Name:   "  jANE dOE ",
		Line1:  "123 artistic AVE,  apt 4b",
		City:   " artville",
		State:  "ca ",
		Zip:    " 90210",
		Mobile: "123-456-7890 ",
	}

	order := &model.Order{
		ID:                "o1",
		PaintingID:        "p1",
		PaintingTitle:     "Starry Night Study",
		PaintingImageURL:  "https://img/p1.jpg",
		Price:             4500,
		ShippingAddress:   address,
		Status:            model.OrderStatusPaid,
		CreatedAt:         1700000000000,
		UserID:            "u1",
		PaymentID:         "pay_1",
		ProviderOrderID:   "order_1",
		ProviderSignature: "sig_1",
	}
	require.NoError(t, repo.Create(ctx, order))

	got, err := repo.FindByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, address, got.ShippingAddress)
	assert.Equal(t, model.OrderStatusPaid, got.Status)
	assert.Equal(t, int64(4500), got.Price)
}

func TestOrderListNewestFirst(t *testing.T) {
	repo := NewOrderRepository(openTestDB(t))
	ctx := context.Background()

	for _, o := range []model.Order{
		{ID: "old", Status: model.OrderStatusPaid, CreatedAt: 1000, UserID: "u1"},
		{ID: "new", Status: model.OrderStatusPaid, CreatedAt: 3000, UserID: "u2"},
		{ID: "mid", Status: model.OrderStatusPaid, CreatedAt: 2000, UserID: "u1"},
	} {
		order := o
		require.NoError(t, repo.Create(ctx, &order))
	}

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "new", orders[0].ID)
	assert.Equal(t, "old", orders[2].ID)

	mine, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "mid", mine[0].ID)
}
