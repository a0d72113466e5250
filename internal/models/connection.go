package models

import "time"

// ConnectionStatus represents the status of a connection between two users.
type ConnectionStatus string

const (
	// ConnectionStatusPending indicates a connection request awaiting a response.
	ConnectionStatusPending ConnectionStatus = "pending"
	// ConnectionStatusAccepted indicates an established connection.
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	// ConnectionStatusBlocked indicates a blocked connection.
	ConnectionStatusBlocked ConnectionStatus = "blocked"
)

// Valid reports whether the status is one of the three allowed values.
func (s ConnectionStatus) Valid() bool {
	switch s {
	case ConnectionStatusPending, ConnectionStatusAccepted, ConnectionStatusBlocked:
		return true
	}
	return false
}

// Connection is a friendship-style relationship between two users.
//
// The pair is stored canonically: user1_id holds the strictly smaller id,
// enforced by a check constraint, and the pair is unique. This keeps exactly
// one row per unordered pair regardless of who initiated the request, at the
// cost of user1 not necessarily being the requester.
type Connection struct {
	ID      uint `gorm:"column:connection_id;primaryKey" json:"id"`
	User1ID uint `gorm:"not null;index;uniqueIndex:idx_connections_pair;check:chk_connections_user_order,user1_id < user2_id" json:"user1_id"`
	User2ID uint `gorm:"not null;index;uniqueIndex:idx_connections_pair" json:"user2_id"`

	Status ConnectionStatus `gorm:"type:varchar(20);not null;default:'pending';index;check:chk_connections_status,status IN ('pending','accepted','blocked')" json:"status"`

	CreatedAt time.Time `gorm:"<-:create" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Connection) TableName() string {
	return "connections"
}

// Involves reports whether the given user is either participant.
func (c *Connection) Involves(userID uint) bool {
	return c.User1ID == userID || c.User2ID == userID
}

// OtherUser returns the participant that is not the given user.
// Returns 0 if the user is not a participant.
func (c *Connection) OtherUser(userID uint) uint {
	switch userID {
	case c.User1ID:
		return c.User2ID
	case c.User2ID:
		return c.User1ID
	}
	return 0
}

// CanonicalPair orders two user ids smaller-first for storage in the
// user1_id/user2_id columns.
func CanonicalPair(a, b uint) (uint, uint) {
	if a < b {
		return a, b
	}
	return b, a
}
