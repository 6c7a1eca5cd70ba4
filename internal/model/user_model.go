package model

type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
	Email     string `gorm:"column:email"`
}

func (UserModel) TableName() string {
	return "users"
}
