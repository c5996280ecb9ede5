package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is order lifecycle state as reported by the backend
type OrderStatus string

// order status
const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusReturned   OrderStatus = "returned"
)

// ParseOrderStatus normalizes backend status string
func ParseOrderStatus(s string) OrderStatus {
	return OrderStatus(strings.ToLower(strings.TrimSpace(s)))
}

// PaymentMethod is how customer pays for order
type PaymentMethod string

const (
	PaymentMethodCOD      PaymentMethod = "cod"
	PaymentMethodUPI      PaymentMethod = "upi"
	PaymentMethodRazorpay PaymentMethod = "razorpay"
	PaymentMethodGPay     PaymentMethod = "gpay"
	PaymentMethodPhonePe  PaymentMethod = "phonepe"
)

// PaymentStatus is settlement state of order payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// Product is order line
type Product struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// Order is order entity
type Order struct {
	ID              string          `json:"id"`
	OrderID         string          `json:"orderId"`
	StoreID         string          `json:"storeId,omitempty"`
	Status          OrderStatus     `json:"status"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	Products        []Product       `json:"products"`
	CustomerName    string          `json:"customerName"`
	PhoneNumber     string          `json:"phoneNumber"`
	DeliveryAddress string          `json:"deliveryAddress"`
	OrderDate       time.Time       `json:"orderDate"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	OTP             string          `json:"otp,omitempty"`

	// Version is local sequence of the last applied change
	Version uint64 `json:"-"`
}

// UnmarshalJSON decodes order and normalizes enum casing
func (o *Order) UnmarshalJSON(data []byte) error {
	type alias Order
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	a.Status = ParseOrderStatus(string(a.Status))
	a.PaymentMethod = PaymentMethod(strings.ToLower(strings.TrimSpace(string(a.PaymentMethod))))
	a.PaymentStatus = PaymentStatus(strings.ToLower(strings.TrimSpace(string(a.PaymentStatus))))
	*o = Order(a)
	return nil
}

// MarshalJSON encodes order without delivery OTP, it is only read from backend
func (o Order) MarshalJSON() ([]byte, error) {
	type alias Order
	a := alias(o)
	a.OTP = ""
	return json.Marshal(a)
}

// ProductsTotal returns sum of product line totals
func (o *Order) ProductsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range o.Products {
		sum = sum.Add(p.TotalPrice)
	}
	return sum
}

// Store is store context
type Store struct {
	ID       string
	Category string
}

// IsRestaurant reports whether store category uses restaurant transitions
func IsRestaurant(category string) bool {
	c := strings.ToLower(category)
	return strings.Contains(c, "hotel") || strings.Contains(c, "restaurant")
}

// IsRestaurant reports whether store uses restaurant transitions
func (s Store) IsRestaurant() bool {
	return IsRestaurant(s.Category)
}
