package entity

type Restaurant struct {
	Base
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	CategoryID  string `json:"categoryId"`

	// DeliveryFee is in centavos; 0 means the checkout fallback applies.
	DeliveryFee  int64   `json:"deliveryFee"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"deliveryTime"` // e.g. "30-45 min"
	IsOpen       bool    `json:"isOpen"`
}
