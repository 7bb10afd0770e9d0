package models

import "time"

type Image struct {
	ID        uint       `json:"id" gorm:"primarykey"`
	ImageURL  string     `json:"image_url" gorm:"not null"`
	Title     string     `json:"title" gorm:"not null"`
	Author    string     `json:"author" gorm:"not null"`
	CreatedAt time.Time  `json:"created_at"`
	Tags      []ImageTag `json:"tags" gorm:"foreignKey:ImageID;constraint:OnDelete:CASCADE"`
}

type ImageTag struct {
	ID      uint   `json:"id" gorm:"primarykey"`
	ImageID uint   `json:"image_id" gorm:"not null"`
	Tag     string `json:"tag" gorm:"not null"`
}
