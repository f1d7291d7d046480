package entity

// PaymentMethod is a stored payment option. No gateway integration; the
// record is snapshotted into the order at checkout.
type PaymentMethod struct {
	Base
	UserID    string `json:"userId"`
	Kind      string `json:"kind"` // card | pix | cash
	Label     string `json:"label"`
	Last4     string `json:"last4,omitempty"`
	IsDefault bool   `json:"isDefault"`
}
