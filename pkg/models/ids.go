// Package models holds the wire types exchanged with the downstream
// microservices and the identifiers the sagas mint and track.
package models

import (
	"strconv"

	"github.com/google/uuid"
)

// UserID identifies a user across all services.
type UserID int64

// String renders the id in decimal, the form used in URLs and headers.
func (id UserID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// StoreID identifies a store.
type StoreID int64

func (id StoreID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// BaseProductID identifies a base product.
type BaseProductID int64

func (id BaseProductID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ProductID identifies a concrete product variant.
type ProductID int64

// CouponID identifies a coupon.
type CouponID int64

func (id CouponID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// OrderID identifies an order.
type OrderID string

// OrderSlug is the human-facing sequential order number.
type OrderSlug int64

func (s OrderSlug) String() string {
	return strconv.FormatInt(int64(s), 10)
}

// SagaID identifies one saga run. Downstream services key resources
// created on behalf of a saga by this id, which is what makes the
// compensations targeted deletes instead of searches.
type SagaID string

// NewSagaID mints a fresh saga id.
func NewSagaID() SagaID {
	return SagaID(uuid.NewString())
}

func (id SagaID) String() string { return string(id) }

// RoleEntryID identifies a single role grant. The coordinator mints it
// client-side so the compensation can delete exactly the grant it created.
type RoleEntryID string

// NewRoleEntryID mints a fresh role entry id.
func NewRoleEntryID() RoleEntryID {
	return RoleEntryID(uuid.NewString())
}

func (id RoleEntryID) String() string { return string(id) }

// ConversionID identifies a cart conversion at the orders service.
type ConversionID string

// NewConversionID mints a fresh conversion id.
func NewConversionID() ConversionID {
	return ConversionID(uuid.NewString())
}

func (id ConversionID) String() string { return string(id) }

// InvoiceID identifies an invoice at the billing service.
type InvoiceID string

func (id InvoiceID) String() string { return string(id) }
