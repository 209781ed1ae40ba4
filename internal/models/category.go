package models

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Category struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"size:120;unique;not null"`
	SortOrder int    `json:"sort_order" gorm:"default:0"`
	IsActive  bool   `json:"is_active" gorm:"default:true;index"`
	SEOFields
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Products []Product `json:"products,omitempty"`
}

func (c *Category) BeforeSave(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = truncateSlug(slug.Make(c.Name))
	}
	return nil
}

// truncateSlug keeps slugs within the column size.
func truncateSlug(s string) string {
	if len(s) > 220 {
		return s[:220]
	}
	return s
}
