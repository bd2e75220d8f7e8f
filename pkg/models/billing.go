package models

import "time"

// MerchantType distinguishes user wallets from store wallets.
type MerchantType string

const (
	MerchantUser  MerchantType = "user"
	MerchantStore MerchantType = "store"
)

// Merchant as returned by the billing service.
type Merchant struct {
	MerchantID   string       `json:"merchant_id"`
	UserID       *UserID      `json:"user_id,omitempty"`
	StoreID      *StoreID     `json:"store_id,omitempty"`
	MerchantType MerchantType `json:"merchant_type"`
}

// CreateUserMerchant asks billing to open a merchant account for a user.
type CreateUserMerchant struct {
	ID UserID `json:"id"`
}

// CreateStoreMerchant asks billing to open a merchant account for a store.
type CreateStoreMerchant struct {
	ID StoreID `json:"id"`
}

// CreateInvoice asks billing to invoice a set of freshly created orders.
// SagaID keys the invoice so the compensation can revert it without
// knowing the invoice id.
type CreateInvoice struct {
	Orders     []Order      `json:"orders"`
	CustomerID UserID       `json:"customer_id"`
	SagaID     SagaID       `json:"saga_id"`
	Currency   CurrencyCode `json:"currency"`
}

// Invoice as returned by the billing service.
type Invoice struct {
	ID                       InvoiceID     `json:"id"`
	Amount                   float64       `json:"amount"`
	AmountCaptured           float64       `json:"amount_captured"`
	Currency                 CurrencyCode  `json:"currency"`
	PriceReservedDueDateTime time.Time     `json:"price_reserved_due_date_time"`
	State                    PaymentState  `json:"state"`
	Wallet                   *string       `json:"wallet,omitempty"`
	Transactions             []Transaction `json:"transactions,omitempty"`
}

// Transaction is one payment transaction attached to an invoice.
type Transaction struct {
	ID             string  `json:"id"`
	AmountCaptured float64 `json:"amount_captured"`
}

// BillingOrders is the result of the order workflows: the created orders
// plus the payment page URL for their invoice.
type BillingOrders struct {
	Orders []Order `json:"orders"`
	URL    string  `json:"url"`
}
