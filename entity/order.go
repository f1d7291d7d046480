package entity

import "time"

// Order statuses, strictly forward-only. The backend is the source of
// truth; clients only display and never transition backward.
const (
	OrderPending    = "pending"
	OrderConfirmed  = "confirmed"
	OrderPreparing  = "preparing"
	OrderReady      = "ready"
	OrderDelivering = "delivering"
	OrderDelivered  = "delivered"
)

// Order is an immutable snapshot of items, prices and selected
// address/payment taken at placement time. Only Status and Rating change
// afterwards.
type Order struct {
	Base
	UserID         string `json:"userId"`
	RestaurantID   string `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`

	Items []CartItem `json:"items"`

	Subtotal    int64  `json:"subtotal"`
	DeliveryFee int64  `json:"deliveryFee"`
	Tax         int64  `json:"tax"`
	Discount    int64  `json:"discount"`
	Total       int64  `json:"total"`
	PromoCode   string `json:"promoCode,omitempty"`

	Address       Address       `json:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`

	Status    string    `json:"status"`
	Rating    *int      `json:"rating,omitempty"` // 1-5, set once after delivery
	CreatedAt time.Time `json:"createdAt"`
}
