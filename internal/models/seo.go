package models

// SEOFields is a field group embedded by value into the catalog entities.
// Slug is derived from the entity name when left blank.
type SEOFields struct {
	Slug           string `json:"slug" gorm:"size:220;uniqueIndex"`
	SeoTitle       string `json:"seo_title" gorm:"size:70"`
	SeoDescription string `json:"seo_description" gorm:"size:160"`
	SeoKeywords    string `json:"seo_keywords" gorm:"size:255"`
	CanonicalURL   string `json:"canonical_url"`
	NoIndex        bool   `json:"no_index" gorm:"default:false"`
}
