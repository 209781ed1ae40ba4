package models

import "time"

type Branch struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StateID   uint      `json:"state_id" gorm:"not null;index;uniqueIndex:idx_branches_state_name"`
	State     State     `json:"state,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Name      string    `json:"name" gorm:"size:150;not null;uniqueIndex:idx_branches_state_name"`
	Address   string    `json:"address" gorm:"type:text"`
	Phone     string    `json:"phone" gorm:"size:30"`
	IsActive  bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
