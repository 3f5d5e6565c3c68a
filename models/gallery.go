package models

import "time"

// Gallery is a private photo set. The access code is the only public lookup key.
type Gallery struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	AccessCode string    `gorm:"uniqueIndex;size:64;not null" json:"accessCode"`
	Title      string    `gorm:"size:255" json:"title,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`

	Photos []Photo `gorm:"foreignKey:GalleryID;constraint:OnDelete:CASCADE" json:"photos,omitempty"`
}

type Photo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GalleryID uint      `gorm:"index;not null" json:"galleryId"`
	URL       string    `gorm:"column:url;size:1024;not null" json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}
