package models

import (
	"time"

	"gorm.io/datatypes"
)

// AvailabilityDate is one bookable calendar day.
// No gorm default on IsAvailable: a false value must reach the insert.
type AvailabilityDate struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Date        datatypes.Date `gorm:"column:date;uniqueIndex;not null" json:"date"`
	IsAvailable bool           `gorm:"not null" json:"isAvailable"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`

	TimeSlots []AvailabilityTimeSlot `gorm:"foreignKey:DateID;constraint:OnDelete:CASCADE" json:"timeSlots"`
}

// AvailabilityTimeSlot is a bookable window inside a date. Times are "HH:MM"
// strings so they sort lexically.
type AvailabilityTimeSlot struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DateID      uint      `gorm:"index;not null" json:"dateId"`
	StartTime   string    `gorm:"size:5;not null" json:"startTime"`
	EndTime     string    `gorm:"size:5;not null" json:"endTime"`
	IsAvailable bool      `gorm:"not null" json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
