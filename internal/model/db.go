package model

import "time"

// Painting is a catalog artwork. Price is a whole amount in the display
// currency; the payment client converts to minor units at checkout.
// CreatedAt is epoch millis so the gallery can sort newest-first without
// timezone handling.
type Painting struct {
	ID             string   `gorm:"primaryKey;size:64;not null" json:"id"`
	Title          string   `gorm:"size:255;not null" json:"title"`
	Artist         string   `gorm:"size:255;not null" json:"artist"`
	Style          string   `gorm:"size:64;index;not null" json:"style"`
	Description    string   `gorm:"type:text" json:"description"`
	Price          int64    `gorm:"not null" json:"price"`
	ImageURL       string   `gorm:"size:512" json:"imageUrl"`
	Likes          int64    `gorm:"not null;default:0" json:"likes"`
	CreatedAt      int64    `gorm:"index;not null" json:"createdAt"`
	AvailableSizes []string `gorm:"serializer:json" json:"availableSizes,omitempty"`
}

type Category struct {
	ID   string `gorm:"primaryKey;size:64;not null" json:"id"`
	Name string `gorm:"size:128;not null" json:"name"`
}

type Artist struct {
	ID       string `gorm:"primaryKey;size:64;not null" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Bio      string `gorm:"type:text" json:"bio"`
	ImageURL string `gorm:"size:512" json:"imageUrl"`
}

// ShippingAddress is stored verbatim on the order: no trimming or casing is
// applied, what the shopper typed is what ships.
type ShippingAddress struct {
	Name   string `gorm:"size:255;not null" json:"name"`
	Line1  string `gorm:"size:255;not null" json:"line1"`
	City   string `gorm:"size:128;not null" json:"city"`
	State  string `gorm:"size:128;not null" json:"state"`
	Zip    string `gorm:"size:32;not null" json:"zip"`
	Mobile string `gorm:"size:32;not null" json:"mobile"`
}

// Order is a purchase record. The painting fields are a snapshot taken at
// purchase time, not a live reference; later edits to the painting do not
// rewrite history. The three provider fields are recorded verbatim from the
// confirmation callback and never verified here.
type Order struct {
	ID                string          `gorm:"primaryKey;size:64;not null" json:"id"`
	PaintingID        string          `gorm:"size:64;index;not null" json:"paintingId"`
	PaintingTitle     string          `gorm:"size:255;not null" json:"paintingTitle"`
	PaintingImageURL  string          `gorm:"size:512" json:"paintingImageUrl"`
	Price             int64           `gorm:"not null" json:"price"`
	ShippingAddress   ShippingAddress `gorm:"embedded;embeddedPrefix:ship_" json:"shippingAddress"`
	Status            string          `gorm:"size:32;index;not null" json:"status"` // only "paid" is written by checkout
	CreatedAt         int64           `gorm:"index;not null" json:"createdAt"`
	UserID            string          `gorm:"size:64;index;not null" json:"userId"` // "guest" when unauthenticated
	PaymentID         string          `gorm:"size:128" json:"paymentId"`
	ProviderOrderID   string          `gorm:"size:128" json:"providerOrderId"`
	ProviderSignature string          `gorm:"size:256" json:"providerSignature"`
}

const OrderStatusPaid = "paid"

// GuestUserID is written on orders placed without a signed-in user.
const GuestUserID = "guest"

// SiteSettings is a singleton row with fixed primary key SiteSettingsID.
type SiteSettings struct {
	ID              uint   `gorm:"primaryKey" json:"-"`
	LogoURL         string `gorm:"size:512" json:"logoUrl"`
	SiteDescription string `gorm:"type:text" json:"siteDescription"`
	FacebookURL     string `gorm:"size:512" json:"facebookUrl"`
	InstagramURL    string `gorm:"size:512" json:"instagramUrl"`
	TwitterURL      string `gorm:"size:512" json:"twitterUrl"`
	Address         string `gorm:"size:512" json:"address"`
	Email           string `gorm:"size:255" json:"email"`
	Phone           string `gorm:"size:32" json:"phone"`
}

const SiteSettingsID uint = 1

type User struct {
	ID           string `gorm:"primaryKey;size:64;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:128;not null"`
	Role         string `gorm:"size:32;index;not null"` // "admin" or "customer"
	CreatedAt    time.Time
}

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Like is the authoritative per-subject like relation. SubjectID is the user
// id for signed-in shoppers or a caller-supplied device id for guests, so the
// "have I liked this" flag follows the subject instead of one browser's
// local storage.
type Like struct {
	SubjectID  string `gorm:"primaryKey;size:64;not null"`
	PaintingID string `gorm:"primaryKey;size:64;not null"`
	CreatedAt  time.Time
}
