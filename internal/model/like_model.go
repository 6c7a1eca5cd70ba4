package model

// LikeModel has no surrogate key: the (user_id, post_id) composite primary
// key is the invariant that a user likes a post at most once, and the
// backstop against racing double toggles.
type LikeModel struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false"`
	PostID uint `gorm:"primaryKey;autoIncrement:false"`

	User UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Post PostModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (LikeModel) TableName() string {
	return "likes"
}
