package model

import "time"

// EventModel mirrors the 'events' table.
type EventModel struct {
	ID          int64  `gorm:"primary_key;autoIncrement"`
	Title       string `gorm:"type:varchar(255);not null"`
	Artist      string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	StartDate   string `gorm:"type:varchar(32);not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
