package models

import "time"

const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// ValidReviewStatus reports whether s is one of the known review statuses.
func ValidReviewStatus(s string) bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

type Review struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Author          string    `gorm:"size:255;not null" json:"author"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	ModifiedContent *string   `gorm:"type:text" json:"modifiedContent"`
	Status          string    `gorm:"size:20;not null;index;default:pending" json:"status"`
	CreatedAt       time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
