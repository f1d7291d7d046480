package entity

type Favorite struct {
	Base
	UserID       string `json:"userId"`
	RestaurantID string `json:"restaurantId"`
}
