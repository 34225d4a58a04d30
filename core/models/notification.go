package models

import "time"

// Notification records that TargetUser was told TargetItem is offered by SourceUser.
type Notification struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	TargetUserID string    `gorm:"column:target_user_id;type:varchar(36);index" json:"targetUserId"`
	SourceUserID string    `gorm:"column:source_user_id;type:varchar(36)" json:"sourceUserId"`
	TargetItemID string    `gorm:"column:target_item_id;type:varchar(64);index" json:"targetItemId"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`

	SourceUser *User `gorm:"foreignKey:SourceUserID" json:"sourceUser,omitempty"`
	TargetItem *Item `gorm:"foreignKey:TargetItemID" json:"targetItem,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
