package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID             uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	CategoryID     uint            `json:"category_id" gorm:"not null;index"`
	Category       Category        `json:"category,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Name           string          `json:"name" gorm:"size:200;not null"`
	SKU            string          `json:"sku" gorm:"column:sku;size:50;unique;not null"`
	BadgeText      string          `json:"badge_text" gorm:"size:50"`
	Description    string          `json:"description" gorm:"type:text"`
	Price          decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	TrackInventory bool            `json:"track_inventory" gorm:"default:false"`
	StockQty       int             `json:"stock_qty" gorm:"default:0;not null;check:stock_qty >= 0"`
	SortOrder      int             `json:"sort_order" gorm:"default:0"`
	IsActive       bool            `json:"is_active" gorm:"default:true;index"`
	SEOFields
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`

	Images []ProductImage `json:"images,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = truncateSlug(slug.Make(p.Name))
	}
	return nil
}

// EffectiveImageURL picks the image shown for the product: the one flagged
// primary, else the first by insertion order, else nil. Images must be
// loaded ordered by (is_primary desc, id asc).
func (p *Product) EffectiveImageURL() *string {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return &p.Images[i].ImageURL
		}
	}
	if len(p.Images) > 0 {
		return &p.Images[0].ImageURL
	}
	return nil
}

type ProductImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index:idx_product_images_primary"`
	ImageURL  string    `json:"image_url" gorm:"not null"`
	AltText   string    `json:"alt_text" gorm:"size:150"`
	IsPrimary bool      `json:"is_primary" gorm:"default:false;index:idx_product_images_primary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
