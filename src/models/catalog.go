package models

// Category and City are flat lookup tables seeded at boot. Neither has
// an update path.

type Category struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	IconBgColor string `json:"icon_bg_color"`
}

type City struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `json:"name"`
}
