package model

import "time"

type PostModel struct {
	ID        uint      `gorm:"primaryKey"`
	ImageURL  string    `gorm:"column:image_url;not null"`
	Title     string    `gorm:"not null"`
	Content   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UserID    uint      `gorm:"not null;index"`

	User UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (PostModel) TableName() string {
	return "posts"
}
