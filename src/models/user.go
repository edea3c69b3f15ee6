package models

type User struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Username string `gorm:"uniqueIndex" json:"username"`
	Password string `json:"-"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	FullName string `json:"full_name"`

	Orders []Order `gorm:"foreignKey:UserID" json:"orders,omitempty"`
}
