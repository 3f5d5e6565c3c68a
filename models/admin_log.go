package models

import (
	"time"

	"gorm.io/datatypes"
)

// AdminLog is an append-only audit record of an administrative action.
type AdminLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	AdminID   uint           `gorm:"index;not null" json:"adminId"`
	Action    string         `gorm:"size:100;not null;index" json:"action"`
	Details   datatypes.JSON `gorm:"not null" json:"details"`
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
}
