package models

type UpgradeRequestModel struct {
	ID            uint   `gorm:"primaryKey"`
	UserID        uint   `gorm:"not null;index"`
	CurrentRole   string `gorm:"size:20;not null"`
	RequestedRole string `gorm:"size:20;not null"`
	Status        string `gorm:"size:20;not null;default:pending;index"`
	ResolvedBy    *uint
	CreatedAt     int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (UpgradeRequestModel) TableName() string {
	return "upgrade_requests"
}

// UpgradeRequestRow is a request joined with the requesting user.
type UpgradeRequestRow struct {
	UpgradeRequestModel `gorm:"embedded"`
	RequesterName       string
	RequesterEmail      string
}

// All lists every model for AutoMigrate, in dependency order.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&CategoryModel{},
		&TicketModel{},
		&CommentModel{},
		&UpvoteModel{},
		&UpgradeRequestModel{},
	}
}
