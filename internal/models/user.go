// Package models contains the persisted domain entities and their
// schema constraints.
package models

import "time"

// User is a registered account. Deleting a user cascades to every
// connection the user participates in, plus all owned travel plans
// and notifications.
type User struct {
	ID                uint       `gorm:"column:user_id;primaryKey" json:"id"`
	Email             string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash      string     `gorm:"size:255;not null" json:"-"`
	Username          string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	DisplayName       string     `gorm:"size:100;not null" json:"display_name"`
	Bio               string     `gorm:"size:500" json:"bio,omitempty"`
	ProfilePictureURL string     `gorm:"size:500" json:"profile_picture_url,omitempty"`
	HomeCity          string     `gorm:"size:100" json:"home_city,omitempty"`
	CreatedAt         time.Time  `gorm:"<-:create" json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	LastLogin         *time.Time `json:"last_login,omitempty"`
	// No default tag; see TravelPlan.IsPublic. A deactivated account must
	// persist as inactive.
	IsActive bool `gorm:"not null" json:"is_active"`

	// Relationships. Connections split into the two navigational roles:
	// rows where this user holds the user1 column vs. the user2 column.
	// At the storage level both live in the connections table. The cascade
	// constraints are declared here, on the parent side, so AutoMigrate
	// emits the foreign keys on the child tables pointing at users.
	ConnectionsInitiated []Connection   `gorm:"foreignKey:User1ID;constraint:OnDelete:CASCADE" json:"-"`
	ConnectionsReceived  []Connection   `gorm:"foreignKey:User2ID;constraint:OnDelete:CASCADE" json:"-"`
	TravelPlans          []TravelPlan   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Notifications        []Notification `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
