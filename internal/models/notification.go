package models

import "time"

// NotificationType tags a notification. Advisory: not enforced by the schema.
type NotificationType string

const (
	// NotificationConnectionRequest is sent when a user requests a connection.
	NotificationConnectionRequest NotificationType = "connection_request"
	// NotificationTravelMatch is sent when travel plans overlap.
	NotificationTravelMatch NotificationType = "travel_match"
	// NotificationProfileUpdate is sent when a connected user updates their profile.
	NotificationProfileUpdate NotificationType = "profile_update"
)

// EntityKind identifies the kind of entity an EntityRef points at.
type EntityKind string

const (
	EntityKindUser       EntityKind = "user"
	EntityKindConnection EntityKind = "connection"
	EntityKindTravelPlan EntityKind = "travel_plan"
)

// Valid reports whether the kind names a known entity.
func (k EntityKind) Valid() bool {
	switch k {
	case EntityKindUser, EntityKindConnection, EntityKindTravelPlan:
		return true
	}
	return false
}

// EntityRef is a soft reference to another entity: a (kind, id) pair with no
// foreign key behind it. The referenced row may no longer exist.
type EntityRef struct {
	Kind EntityKind `json:"kind"`
	ID   uint       `json:"id"`
}

// Notification is an alert delivered to a single recipient user.
type Notification struct {
	ID     uint `gorm:"column:notification_id;primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	Type    NotificationType `gorm:"type:varchar(50);not null;index" json:"type"`
	Title   string           `gorm:"size:200;not null" json:"title"`
	Message string           `gorm:"size:1000;not null" json:"message"`
	IsRead  bool             `gorm:"not null;default:false;index" json:"is_read"`

	CreatedAt time.Time `gorm:"<-:create" json:"created_at"`

	// Soft reference columns; both nil when the notification points at nothing.
	RelatedEntityType *EntityKind `gorm:"type:varchar(50)" json:"related_entity_type,omitempty"`
	RelatedEntityID   *uint       `json:"related_entity_id,omitempty"`
}

// TableName specifies the table name for GORM.
func (Notification) TableName() string {
	return "notifications"
}

// RelatedEntity returns the soft reference as a tagged value, if set.
func (n *Notification) RelatedEntity() (EntityRef, bool) {
	if n.RelatedEntityType == nil || n.RelatedEntityID == nil {
		return EntityRef{}, false
	}
	return EntityRef{Kind: *n.RelatedEntityType, ID: *n.RelatedEntityID}, true
}

// SetRelatedEntity stores the soft reference columns from a tagged value.
func (n *Notification) SetRelatedEntity(ref EntityRef) {
	kind := ref.Kind
	id := ref.ID
	n.RelatedEntityType = &kind
	n.RelatedEntityID = &id
}

// ClearRelatedEntity removes the soft reference.
func (n *Notification) ClearRelatedEntity() {
	n.RelatedEntityType = nil
	n.RelatedEntityID = nil
}
