package model

import (
	"time"

	"github.com/google/uuid"
)

// LoginTokenModel mirrors the 'login_tokens' table. The email column is not a
// foreign key: tokens are routinely issued for addresses that have no account
// yet. Rows are insert-and-delete only.
type LoginTokenModel struct {
	Token     string `gorm:"type:char(16);primary_key"`
	Email     string `gorm:"type:varchar(255);not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoginTokenModel) TableName() string {
	return "login_tokens"
}

// SessionTokenModel mirrors the 'session_tokens' table. The foreign key to
// users is engine-enforced so an orphaned session row cannot exist.
type SessionTokenModel struct {
	Token     string    `gorm:"type:char(16);primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SessionTokenModel) TableName() string {
	return "session_tokens"
}
