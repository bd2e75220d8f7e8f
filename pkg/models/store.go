package models

// Translation is one localized text value.
type Translation struct {
	Lang string `json:"lang"`
	Text string `json:"text"`
}

// ModerationStatus of a store or base product.
type ModerationStatus string

const (
	StatusDraft      ModerationStatus = "draft"
	StatusModeration ModerationStatus = "moderation"
	StatusDecline    ModerationStatus = "decline"
	StatusBlocked    ModerationStatus = "blocked"
	StatusPublished  ModerationStatus = "published"
)

// NewStore is the ingress body of the store creation workflow, forwarded
// verbatim to the stores service. The engine reads only UserID.
type NewStore struct {
	Name             []Translation  `json:"name"`
	UserID           UserID         `json:"user_id"`
	ShortDescription []Translation  `json:"short_description"`
	LongDescription  *[]Translation `json:"long_description,omitempty"`
	Slug             string         `json:"slug"`
	Phone            *string        `json:"phone,omitempty"`
	Email            *string        `json:"email,omitempty"`
	DefaultLanguage  string         `json:"default_language"`
	Country          *string        `json:"country,omitempty"`
	Address          *string        `json:"address,omitempty"`
}

// Store as returned by the stores service.
type Store struct {
	ID               StoreID          `json:"id"`
	UserID           UserID           `json:"user_id"`
	Name             []Translation    `json:"name"`
	ShortDescription []Translation    `json:"short_description"`
	LongDescription  *[]Translation   `json:"long_description,omitempty"`
	Slug             string           `json:"slug"`
	Phone            *string          `json:"phone,omitempty"`
	Email            *string          `json:"email,omitempty"`
	DefaultLanguage  string           `json:"default_language"`
	Status           ModerationStatus `json:"status"`
	Country          *string          `json:"country,omitempty"`
	Address          *string          `json:"address,omitempty"`
}

// BaseProduct as returned by the stores service.
type BaseProduct struct {
	ID        BaseProductID    `json:"id"`
	StoreID   StoreID          `json:"store_id"`
	Name      []Translation    `json:"name"`
	Slug      string           `json:"slug"`
	Status    ModerationStatus `json:"status"`
	IsActive  bool             `json:"is_active"`
	Currency  CurrencyCode     `json:"currency"`
	Rating    float64          `json:"rating"`
	Views     int64            `json:"views"`
	StoreSlug string           `json:"store_slug,omitempty"`
}

// StoreModerate asks the stores service to move a store to a new status.
type StoreModerate struct {
	StoreID StoreID          `json:"store_id"`
	Status  ModerationStatus `json:"status"`
}

// BaseProductModerate asks the stores service to move a base product to a
// new status.
type BaseProductModerate struct {
	BaseProductID BaseProductID    `json:"base_product_id"`
	Status        ModerationStatus `json:"status"`
}
