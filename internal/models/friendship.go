package models

import "time"

// Friendship is a directed friendship edge between two users. The relation is
// made symmetric at the application level: creating a friendship always
// inserts both directions, removing it deletes both.
type Friendship struct {
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	FriendID  uint      `gorm:"primaryKey" json:"friend_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Friendship) TableName() string {
	return "friendship"
}
