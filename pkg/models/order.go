package models

import "time"

// CurrencyCode of a price or invoice.
type CurrencyCode string

const (
	CurrencySTQ CurrencyCode = "STQ"
	CurrencyBTC CurrencyCode = "BTC"
	CurrencyETH CurrencyCode = "ETH"
	CurrencyEUR CurrencyCode = "EUR"
	CurrencyUSD CurrencyCode = "USD"
)

// OrderState at the orders service.
type OrderState string

const (
	OrderStateNew                OrderState = "new"
	OrderStatePaymentAwaited     OrderState = "payment_awaited"
	OrderStateTransactionPending OrderState = "transaction_pending"
	OrderStatePaid               OrderState = "paid"
	OrderStateInProcessing       OrderState = "in_processing"
	OrderStateSent               OrderState = "sent"
	OrderStateDelivered          OrderState = "delivered"
	OrderStateReceived           OrderState = "received"
	OrderStateCancelled          OrderState = "cancelled"
	OrderStateComplete           OrderState = "complete"
)

// PaymentState at the billing service.
type PaymentState string

const (
	PaymentStateInitial               PaymentState = "initial"
	PaymentStateDeclined              PaymentState = "declined"
	PaymentStatePaid                  PaymentState = "paid"
	PaymentStateAmountExpired         PaymentState = "amount_expired"
	PaymentStateWaitingForPayment     PaymentState = "waiting_for_payment"
	PaymentStatePaymentToSellerNeeded PaymentState = "payment_to_seller_needed"
)

// Coupon is a coupon reference inside a cart.
type Coupon struct {
	ID   CouponID `json:"id"`
	Code string   `json:"code"`
}

// Address of an order receiver.
type Address struct {
	Country       string  `json:"country"`
	Locality      *string `json:"locality,omitempty"`
	PostalCode    *string `json:"postal_code,omitempty"`
	Route         *string `json:"route,omitempty"`
	StreetNumber  *string `json:"street_number,omitempty"`
	AddressString *string `json:"address,omitempty"`
}

// ConvertCart is the ingress body of the order creation workflow; the
// orders service turns the customer's cart into orders. The engine reads
// only CustomerID, Currency and Coupons.
type ConvertCart struct {
	CustomerID    UserID       `json:"customer_id"`
	ReceiverName  string       `json:"receiver_name"`
	ReceiverPhone string       `json:"receiver_phone"`
	ReceiverEmail string       `json:"receiver_email"`
	Address       Address      `json:"address"`
	Currency      CurrencyCode `json:"currency"`
	Coupons       []Coupon     `json:"coupons,omitempty"`
}

// BuyNow is the ingress body of the buy-now workflow: a single-product
// purchase that bypasses the cart.
type BuyNow struct {
	ProductID     ProductID    `json:"product_id"`
	CustomerID    UserID       `json:"customer_id"`
	Quantity      int          `json:"quantity"`
	ReceiverName  string       `json:"receiver_name"`
	ReceiverPhone string       `json:"receiver_phone"`
	ReceiverEmail string       `json:"receiver_email"`
	Address       Address      `json:"address"`
	Currency      CurrencyCode `json:"currency"`
	Coupon        *Coupon      `json:"coupon,omitempty"`
}

// CreateBuyNow is what the orders service receives for a buy-now
// conversion. The conversion id is minted by the coordinator and is the
// handle for the revert compensation.
type CreateBuyNow struct {
	ConversionID ConversionID `json:"conversion_id"`
	BuyNow       BuyNow       `json:"buy_now"`
}

// Order as returned by the orders service.
type Order struct {
	ID         OrderID      `json:"id"`
	Slug       OrderSlug    `json:"slug"`
	StoreID    StoreID      `json:"store_id"`
	CustomerID UserID       `json:"customer_id"`
	Product    ProductID    `json:"product"`
	Quantity   int          `json:"quantity"`
	Price      float64      `json:"price"`
	Currency   CurrencyCode `json:"currency"`
	State      OrderState   `json:"state"`
	CouponID   *CouponID    `json:"coupon_id,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// OrdersUpdateState is the billing callback that moves a set of orders to
// a new payment state.
type OrdersUpdateState struct {
	Orders []OrderID    `json:"orders"`
	State  PaymentState `json:"state"`
}

// OrderStateUpdate moves a single order, addressed by slug, to a new state.
type OrderStateUpdate struct {
	State   OrderState `json:"state"`
	TrackID *string    `json:"track_id,omitempty"`
	Comment *string    `json:"comment,omitempty"`
}

// OrderPaymentStateUpdate moves a single order, addressed by id, to a new
// payment state.
type OrderPaymentStateUpdate struct {
	State PaymentState `json:"state"`
}
