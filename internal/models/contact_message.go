package models

import "time"

// ContactMessage is written once by the public contact form and only ever
// read afterwards.
type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:200;not null"`
	Email     string    `json:"email" gorm:"not null;index"`
	Subject   string    `json:"subject" gorm:"size:200;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
