package models

import "time"

// Trip purpose tags. Advisory only: the column is a free string and the
// database does not enforce the set.
const (
	PurposeVacation = "vacation"
	PurposeBusiness = "business"
	PurposeVisiting = "visiting"
	PurposeOther    = "other"
)

// KnownPurpose reports whether the purpose is one of the advisory tags.
// An empty purpose is allowed.
func KnownPurpose(p string) bool {
	switch p {
	case "", PurposeVacation, PurposeBusiness, PurposeVisiting, PurposeOther:
		return true
	}
	return false
}

// TravelPlan is a trip a user intends to take. The schema does not order
// start_date against end_date; new writes are validated in the service layer.
type TravelPlan struct {
	ID     uint `gorm:"column:plan_id;primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	City    string `gorm:"size:100;not null;index" json:"city"`
	Country string `gorm:"size:100;not null" json:"country"`

	StartDate time.Time `gorm:"type:date;not null;index" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null;index" json:"end_date"`

	Purpose string `gorm:"size:50" json:"purpose,omitempty"`
	Notes   string `gorm:"size:1000" json:"notes,omitempty"`

	// No default tag: GORM omits zero-valued fields that carry one, which
	// would silently turn a private plan public on insert.
	IsPublic bool `gorm:"not null" json:"is_public"`

	CreatedAt time.Time `gorm:"<-:create" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (TravelPlan) TableName() string {
	return "travel_plans"
}

// Overlaps reports whether two date ranges share at least one day.
func (p *TravelPlan) Overlaps(start, end time.Time) bool {
	return !p.StartDate.After(end) && !p.EndDate.Before(start)
}
