package repository

import (
	"water_store/internal/models"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(message *models.ContactMessage) error
	GetByID(id uint) (*models.ContactMessage, error)
	GetAll(limit, offset int) ([]models.ContactMessage, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

func (r *contactRepository) GetByID(id uint) (*models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.First(&message, id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *contactRepository) GetAll(limit, offset int) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := r.db.Order("created_at desc").
		Limit(limit).Offset(offset).Find(&messages).Error
	return messages, err
}
