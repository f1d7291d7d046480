package entity

import "time"

type User struct {
	Base
	Email string `json:"email"` // unique, stored lowercase

	// Serialized because records persist as JSON; controllers shape API
	// payloads explicitly and never expose it.
	PasswordHash string `json:"passwordHash,omitempty"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	PhoneNumber  string `json:"phoneNumber"`
	Role         string `json:"role"` // customer | admin
	Avatar       string `json:"avatar"`

	EmailConfirmedAt *time.Time `json:"emailConfirmedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}
