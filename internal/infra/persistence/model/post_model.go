package model

import "time"

// PostModel mirrors the 'posts' table.
type PostModel struct {
	ID        int64  `gorm:"primary_key;autoIncrement"`
	Title     string `gorm:"type:varchar(255);not null"`
	Slug      string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Author    string `gorm:"type:varchar(255);not null"`
	Body      string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
