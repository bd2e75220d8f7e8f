package models

// NewCRMContact is the best-effort account-created notification sent to
// the CRM gateway after a successful account saga.
type NewCRMContact struct {
	UserID UserID `json:"user_id"`
	Email  string `json:"email"`
}

// OrderCreatedForUser notifies a customer that their order was placed.
// URL points at the order page in the storefront.
type OrderCreatedForUser struct {
	UserID    UserID    `json:"user_id"`
	OrderSlug OrderSlug `json:"order_slug"`
	URL       string    `json:"url"`
}

// OrderCreatedForStore notifies a store that it received an order.
// URL points at the order page in the store management console.
type OrderCreatedForStore struct {
	StoreID   StoreID   `json:"store_id"`
	OrderSlug OrderSlug `json:"order_slug"`
	URL       string    `json:"url"`
}
