package domain

import "time"

type UserSegment struct {
	UserID    uint      `gorm:"column:user_id;primaryKey" json:"user_id"`
	Segment   string    `gorm:"column:segment;not null" json:"segment"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserSegment) TableName() string {
	return "user_segments"
}
