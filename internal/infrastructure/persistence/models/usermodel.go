package models

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Gender       string `gorm:"size:20;not null"`
	Email        string `gorm:"uniqueIndex:idx_users_email;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Category     string `gorm:"size:100;not null"`
	Role         string `gorm:"size:20;not null;default:end-user;index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
