package repository

import (
	"water_store/internal/models"

	"gorm.io/gorm"
)

type AdminUserRepository interface {
	Create(user *models.AdminUser) error
	GetByID(id uint) (*models.AdminUser, error)
	GetByUsername(username string) (*models.AdminUser, error)
	CountByRole(role models.AdminRole) (int64, error)
	Update(user *models.AdminUser) error
}

type adminUserRepository struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) AdminUserRepository {
	return &adminUserRepository{db: db}
}

func (r *adminUserRepository) Create(user *models.AdminUser) error {
	return r.db.Create(user).Error
}

func (r *adminUserRepository) GetByID(id uint) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *adminUserRepository) GetByUsername(username string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *adminUserRepository) CountByRole(role models.AdminRole) (int64, error) {
	var count int64
	err := r.db.Model(&models.AdminUser{}).
		Where("role = ?", string(role)).Count(&count).Error
	return count, err
}

func (r *adminUserRepository) Update(user *models.AdminUser) error {
	return r.db.Save(user).Error
}
