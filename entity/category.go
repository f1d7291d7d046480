package entity

type Category struct {
	Base
	Name  string `json:"name"`
	Image string `json:"image"`
}
