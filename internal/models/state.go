package models

import "time"

type State struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:120;unique;not null"`
	Code      string    `json:"code" gorm:"size:10;unique;not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Branches []Branch `json:"branches,omitempty"`
}
